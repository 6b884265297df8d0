package db

import (
	"context"

	"github.com/google/uuid"
)

type StandingsRow struct {
	SeasonID      uuid.UUID
	TeamID        uuid.UUID
	Wins          int32
	Losses        int32
	Ties          int32
	PointsFor     int32
	PointsAgainst int32
}

const ensureStandingsRow = `
INSERT INTO standings (season_id, team_id)
VALUES ($1, $2)
ON CONFLICT (season_id, team_id) DO NOTHING`

type EnsureStandingsRowParams struct {
	SeasonID uuid.UUID
	TeamID   uuid.UUID
}

// EnsureStandingsRow lazily creates the (season, team) row; re-running it is
// harmless.
func (q *Queries) EnsureStandingsRow(ctx context.Context, arg EnsureStandingsRowParams) error {
	_, err := q.db.ExecContext(ctx, ensureStandingsRow, arg.SeasonID, arg.TeamID)
	return err
}

// applyGameResult uses atomic in-place increments so concurrent finalizations
// of different games never lose updates.
const applyGameResult = `
UPDATE standings
SET wins = wins + $3,
    losses = losses + $4,
    ties = ties + $5,
    points_for = points_for + $6,
    points_against = points_against + $7
WHERE season_id = $1 AND team_id = $2`

type ApplyGameResultParams struct {
	SeasonID      uuid.UUID
	TeamID        uuid.UUID
	Wins          int32
	Losses        int32
	Ties          int32
	PointsFor     int32
	PointsAgainst int32
}

// ApplyGameResult returns the number of rows updated; zero means the
// standings row was never created, which callers treat as a setup defect.
func (q *Queries) ApplyGameResult(ctx context.Context, arg ApplyGameResultParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, applyGameResult,
		arg.SeasonID, arg.TeamID, arg.Wins, arg.Losses, arg.Ties,
		arg.PointsFor, arg.PointsAgainst)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const getStandingsRow = `
SELECT season_id, team_id, wins, losses, ties, points_for, points_against
FROM standings
WHERE season_id = $1 AND team_id = $2`

type GetStandingsRowParams struct {
	SeasonID uuid.UUID
	TeamID   uuid.UUID
}

func (q *Queries) GetStandingsRow(ctx context.Context, arg GetStandingsRowParams) (StandingsRow, error) {
	var r StandingsRow
	err := q.db.QueryRowContext(ctx, getStandingsRow, arg.SeasonID, arg.TeamID).
		Scan(&r.SeasonID, &r.TeamID, &r.Wins, &r.Losses, &r.Ties, &r.PointsFor, &r.PointsAgainst)
	return r, err
}

const listStandingsBySeason = `
SELECT season_id, team_id, wins, losses, ties, points_for, points_against
FROM standings
WHERE season_id = $1
ORDER BY wins DESC, ties DESC, points_for - points_against DESC, team_id ASC`

func (q *Queries) ListStandingsBySeason(ctx context.Context, seasonID uuid.UUID) ([]StandingsRow, error) {
	rows, err := q.db.QueryContext(ctx, listStandingsBySeason, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StandingsRow
	for rows.Next() {
		var r StandingsRow
		if err := rows.Scan(&r.SeasonID, &r.TeamID, &r.Wins, &r.Losses, &r.Ties,
			&r.PointsFor, &r.PointsAgainst); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
