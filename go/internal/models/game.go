package models

import (
	"time"

	"github.com/google/uuid"
)

// GameStatus tracks a game through its lifecycle. InProgress exists in the
// enum for completeness but the simulation transitions Scheduled -> Final
// atomically.
type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusFinal      GameStatus = "final"
)

// Game is one scheduled or finalized matchup. Once Played is true the scores
// and status are immutable; re-simulation is a no-op.
type Game struct {
	ID         uuid.UUID  `json:"id"`
	SeasonID   uuid.UUID  `json:"season_id"`
	Week       int        `json:"week"`
	HomeTeamID uuid.UUID  `json:"home_team_id"`
	AwayTeamID uuid.UUID  `json:"away_team_id"`
	HomeScore  int        `json:"home_score"`
	AwayScore  int        `json:"away_score"`
	Played     bool       `json:"played"`
	Status     GameStatus `json:"status"`
	GameDate   *time.Time `json:"game_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
