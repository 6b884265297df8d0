package games

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
)

// EventTypeGameFinalized is the outbox event type written when a game's
// result commits.
const EventTypeGameFinalized = "game.finalized"

// CreateGameRequest schedules one matchup.
type CreateGameRequest struct {
	SeasonID   uuid.UUID  `json:"season_id"`
	Week       int        `json:"week"`
	HomeTeamID uuid.UUID  `json:"home_team_id"`
	AwayTeamID uuid.UUID  `json:"away_team_id"`
	GameDate   *time.Time `json:"game_date,omitempty"`
}

// StatLineInput is one player's stat delta from a simulated game.
type StatLineInput struct {
	TeamID   uuid.UUID
	PlayerID uuid.UUID
	Stats    models.StatLine
}

// GameAnalytics is the latent simulation signal persisted alongside the score.
type GameAnalytics struct {
	Pace               float64   `json:"pace"`
	Possessions        int       `json:"possessions"`
	HomeOpened         bool      `json:"home_opened"`
	HomeYardsEstimates []float64 `json:"home_yards_estimates"`
	AwayYardsEstimates []float64 `json:"away_yards_estimates"`
}

// FinalizeGameRequest carries everything the single finalize transaction
// writes: score, per-player stat lines, analytics, and the outbox event.
type FinalizeGameRequest struct {
	GameID    uuid.UUID
	HomeScore int
	AwayScore int
	StatLines []StatLineInput
	Analytics GameAnalytics
}

// GameFinalizedPayload is the outbox event body for EventTypeGameFinalized.
type GameFinalizedPayload struct {
	GameID     uuid.UUID `json:"game_id"`
	SeasonID   uuid.UUID `json:"season_id"`
	Week       int       `json:"week"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
}
