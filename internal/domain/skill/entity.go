package skill

import (
	"time"

	"github.com/google/uuid"
)

// Proficiency is a self-declared skill level.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
)

var proficiencyRanks = map[Proficiency]int{
	ProficiencyBeginner:     1,
	ProficiencyIntermediate: 2,
	ProficiencyAdvanced:     3,
	ProficiencyExpert:       4,
}

// Rank returns the ordinal for a proficiency, 0 for an unknown value.
func (p Proficiency) Rank() int {
	return proficiencyRanks[p]
}

func (p Proficiency) Valid() bool {
	_, ok := proficiencyRanks[p]
	return ok
}

func ParseProficiency(s string) (Proficiency, bool) {
	p := Proficiency(s)
	return p, p.Valid()
}

type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

type UserSkill struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	Category        string
	Proficiency     Proficiency
	YearsExperience int
	CreatedAt       time.Time
}
