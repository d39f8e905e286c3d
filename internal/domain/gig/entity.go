package gig

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
)

type Gig struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OwnerName   string
	Title       string
	Description string
	PriceMin    float64
	PriceMax    float64
	Duration    string
	Status      string
	CreatedAt   time.Time
}
