package models

import "github.com/google/uuid"

// StandingsRow is one row per (season, team). Rows are created lazily when a
// team enters a season's schedule and must exist before any of its games
// finalize.
type StandingsRow struct {
	SeasonID      uuid.UUID `json:"season_id"`
	TeamID        uuid.UUID `json:"team_id"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	Ties          int       `json:"ties"`
	PointsFor     int       `json:"points_for"`
	PointsAgainst int       `json:"points_against"`
}

// GamesPlayed is the number of finalized games reflected in the row.
func (r StandingsRow) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}
