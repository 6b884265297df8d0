package models

import (
	"time"

	"github.com/google/uuid"
)

// StatLine is the set of counting stats the simulation accrues. It is used
// both as a per-game delta and inside season totals; Add folds one into another.
type StatLine struct {
	PassAttempts    int `json:"pass_attempts"`
	PassCompletions int `json:"pass_completions"`
	PassYards       int `json:"pass_yards"`
	PassTDs         int `json:"pass_tds"`
	Interceptions   int `json:"interceptions"`
	RushAttempts    int `json:"rush_attempts"`
	RushYards       int `json:"rush_yards"`
	RushTDs         int `json:"rush_tds"`
	Receptions      int `json:"receptions"`
	ReceivingYards  int `json:"receiving_yards"`
	ReceivingTDs    int `json:"receiving_tds"`
}

// Add accumulates other into s.
func (s *StatLine) Add(other StatLine) {
	s.PassAttempts += other.PassAttempts
	s.PassCompletions += other.PassCompletions
	s.PassYards += other.PassYards
	s.PassTDs += other.PassTDs
	s.Interceptions += other.Interceptions
	s.RushAttempts += other.RushAttempts
	s.RushYards += other.RushYards
	s.RushTDs += other.RushTDs
	s.Receptions += other.Receptions
	s.ReceivingYards += other.ReceivingYards
	s.ReceivingTDs += other.ReceivingTDs
}

// IsZero reports whether the line carries no stats at all.
func (s StatLine) IsZero() bool {
	return s == StatLine{}
}

// GameStatLine is one row per (game, player) that accrued any statistic.
type GameStatLine struct {
	ID       uuid.UUID `json:"id"`
	GameID   uuid.UUID `json:"game_id"`
	SeasonID uuid.UUID `json:"season_id"`
	TeamID   uuid.UUID `json:"team_id"`
	PlayerID uuid.UUID `json:"player_id"`
	StatLine
	CreatedAt time.Time `json:"created_at"`
}

// SeasonStatTotals is the per-(player, season) cumulative row, unique on
// (player_id, season_id) and maintained by additive upsert.
type SeasonStatTotals struct {
	PlayerID    uuid.UUID `json:"player_id"`
	SeasonID    uuid.UUID `json:"season_id"`
	GamesPlayed int       `json:"games_played"`
	StatLine
	UpdatedAt time.Time `json:"updated_at"`
}
