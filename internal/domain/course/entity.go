package course

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is a course difficulty level. The catalog seed data only uses
// the first three values; Expert still participates in the proficiency
// mapping and the sort order.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// Rank returns the ordinal used for difficulty ordering. Unknown values
// sort last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	case DifficultyExpert:
		return 4
	default:
		return 5
	}
}

func (d Difficulty) Valid() bool {
	return d.Rank() < 5
}

func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(s)
	return d, d.Valid()
}

type Course struct {
	ID          uuid.UUID
	Title       string
	Description string
	Provider    string
	URL         string
	Difficulty  Difficulty
	Duration    string
	Price       float64
	CreatedAt   time.Time
}
