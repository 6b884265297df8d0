package rosters

import (
	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
)

// CreateTeamRequest carries the fields needed to create a team
type CreateTeamRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
	Code string `json:"code"`
}

// CreateSeasonRequest carries the fields needed to create a season
type CreateSeasonRequest struct {
	Year  int `json:"year"`
	Weeks int `json:"weeks"`
}

// CreatePlayerRequest carries the fields needed to create a player
type CreatePlayerRequest struct {
	FullName   string                   `json:"full_name"`
	Position   models.Position          `json:"position"`
	Rating     int                      `json:"rating"`
	TeamID     *uuid.UUID               `json:"team_id,omitempty"`
	Attributes *models.PlayerAttributes `json:"attributes,omitempty"`
}

// UpdatePlayerAttributeRequest sets one attribute on one player
type UpdatePlayerAttributeRequest struct {
	PlayerID uuid.UUID            `json:"player_id"`
	Kind     models.AttributeKind `json:"kind"`
	Value    int                  `json:"value"`
}
