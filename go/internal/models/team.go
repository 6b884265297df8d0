package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a franchise in a league.
type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// Season represents one league year.
type Season struct {
	ID        uuid.UUID `json:"id"`
	Year      int       `json:"year"`
	Weeks     int       `json:"weeks"`
	CreatedAt time.Time `json:"created_at"`
}
