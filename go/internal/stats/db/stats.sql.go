package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type GameStatLine struct {
	ID              uuid.UUID
	GameID          uuid.UUID
	SeasonID        uuid.UUID
	TeamID          uuid.UUID
	PlayerID        uuid.UUID
	PassAttempts    int32
	PassCompletions int32
	PassYards       int32
	PassTDs         int32
	Interceptions   int32
	RushAttempts    int32
	RushYards       int32
	RushTDs         int32
	Receptions      int32
	ReceivingYards  int32
	ReceivingTDs    int32
	CreatedAt       time.Time
}

type SeasonStatTotal struct {
	PlayerID        uuid.UUID
	SeasonID        uuid.UUID
	GamesPlayed     int32
	PassAttempts    int32
	PassCompletions int32
	PassYards       int32
	PassTDs         int32
	Interceptions   int32
	RushAttempts    int32
	RushYards       int32
	RushTDs         int32
	Receptions      int32
	ReceivingYards  int32
	ReceivingTDs    int32
	UpdatedAt       time.Time
}

const insertGameStatLine = `
INSERT INTO game_stat_lines (id, game_id, season_id, team_id, player_id,
    pass_attempts, pass_completions, pass_yards, pass_tds, interceptions,
    rush_attempts, rush_yards, rush_tds, receptions, receiving_yards, receiving_tds)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

type InsertGameStatLineParams struct {
	ID              uuid.UUID
	GameID          uuid.UUID
	SeasonID        uuid.UUID
	TeamID          uuid.UUID
	PlayerID        uuid.UUID
	PassAttempts    int32
	PassCompletions int32
	PassYards       int32
	PassTDs         int32
	Interceptions   int32
	RushAttempts    int32
	RushYards       int32
	RushTDs         int32
	Receptions      int32
	ReceivingYards  int32
	ReceivingTDs    int32
}

func (q *Queries) InsertGameStatLine(ctx context.Context, arg InsertGameStatLineParams) error {
	_, err := q.db.ExecContext(ctx, insertGameStatLine,
		arg.ID, arg.GameID, arg.SeasonID, arg.TeamID, arg.PlayerID,
		arg.PassAttempts, arg.PassCompletions, arg.PassYards, arg.PassTDs, arg.Interceptions,
		arg.RushAttempts, arg.RushYards, arg.RushTDs, arg.Receptions,
		arg.ReceivingYards, arg.ReceivingTDs)
	return err
}

// upsertSeasonTotals is an additive merge keyed on (player_id, season_id):
// insert seeds the row from the line with games_played = 1, conflict adds each
// counting stat and increments games_played. There is intentionally no
// deduplication by game_id; accumulating the same line twice double-counts.
const upsertSeasonTotals = `
INSERT INTO season_stat_totals (player_id, season_id, games_played,
    pass_attempts, pass_completions, pass_yards, pass_tds, interceptions,
    rush_attempts, rush_yards, rush_tds, receptions, receiving_yards, receiving_tds)
VALUES ($1, $2, 1, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (player_id, season_id) DO UPDATE SET
    games_played = season_stat_totals.games_played + 1,
    pass_attempts = season_stat_totals.pass_attempts + EXCLUDED.pass_attempts,
    pass_completions = season_stat_totals.pass_completions + EXCLUDED.pass_completions,
    pass_yards = season_stat_totals.pass_yards + EXCLUDED.pass_yards,
    pass_tds = season_stat_totals.pass_tds + EXCLUDED.pass_tds,
    interceptions = season_stat_totals.interceptions + EXCLUDED.interceptions,
    rush_attempts = season_stat_totals.rush_attempts + EXCLUDED.rush_attempts,
    rush_yards = season_stat_totals.rush_yards + EXCLUDED.rush_yards,
    rush_tds = season_stat_totals.rush_tds + EXCLUDED.rush_tds,
    receptions = season_stat_totals.receptions + EXCLUDED.receptions,
    receiving_yards = season_stat_totals.receiving_yards + EXCLUDED.receiving_yards,
    receiving_tds = season_stat_totals.receiving_tds + EXCLUDED.receiving_tds,
    updated_at = now()
RETURNING player_id, season_id, games_played, pass_attempts, pass_completions,
    pass_yards, pass_tds, interceptions, rush_attempts, rush_yards, rush_tds,
    receptions, receiving_yards, receiving_tds, updated_at`

type UpsertSeasonTotalsParams struct {
	PlayerID        uuid.UUID
	SeasonID        uuid.UUID
	PassAttempts    int32
	PassCompletions int32
	PassYards       int32
	PassTDs         int32
	Interceptions   int32
	RushAttempts    int32
	RushYards       int32
	RushTDs         int32
	Receptions      int32
	ReceivingYards  int32
	ReceivingTDs    int32
}

func (q *Queries) UpsertSeasonTotals(ctx context.Context, arg UpsertSeasonTotalsParams) (SeasonStatTotal, error) {
	row := q.db.QueryRowContext(ctx, upsertSeasonTotals,
		arg.PlayerID, arg.SeasonID,
		arg.PassAttempts, arg.PassCompletions, arg.PassYards, arg.PassTDs, arg.Interceptions,
		arg.RushAttempts, arg.RushYards, arg.RushTDs, arg.Receptions,
		arg.ReceivingYards, arg.ReceivingTDs)
	var t SeasonStatTotal
	err := row.Scan(&t.PlayerID, &t.SeasonID, &t.GamesPlayed,
		&t.PassAttempts, &t.PassCompletions, &t.PassYards, &t.PassTDs, &t.Interceptions,
		&t.RushAttempts, &t.RushYards, &t.RushTDs, &t.Receptions,
		&t.ReceivingYards, &t.ReceivingTDs, &t.UpdatedAt)
	return t, err
}

const getSeasonTotals = `
SELECT player_id, season_id, games_played, pass_attempts, pass_completions,
    pass_yards, pass_tds, interceptions, rush_attempts, rush_yards, rush_tds,
    receptions, receiving_yards, receiving_tds, updated_at
FROM season_stat_totals
WHERE player_id = $1 AND season_id = $2`

type GetSeasonTotalsParams struct {
	PlayerID uuid.UUID
	SeasonID uuid.UUID
}

func (q *Queries) GetSeasonTotals(ctx context.Context, arg GetSeasonTotalsParams) (SeasonStatTotal, error) {
	row := q.db.QueryRowContext(ctx, getSeasonTotals, arg.PlayerID, arg.SeasonID)
	var t SeasonStatTotal
	err := row.Scan(&t.PlayerID, &t.SeasonID, &t.GamesPlayed,
		&t.PassAttempts, &t.PassCompletions, &t.PassYards, &t.PassTDs, &t.Interceptions,
		&t.RushAttempts, &t.RushYards, &t.RushTDs, &t.Receptions,
		&t.ReceivingYards, &t.ReceivingTDs, &t.UpdatedAt)
	return t, err
}

const listSeasonTotals = `
SELECT player_id, season_id, games_played, pass_attempts, pass_completions,
    pass_yards, pass_tds, interceptions, rush_attempts, rush_yards, rush_tds,
    receptions, receiving_yards, receiving_tds, updated_at
FROM season_stat_totals
WHERE season_id = $1`

func (q *Queries) ListSeasonTotals(ctx context.Context, seasonID uuid.UUID) ([]SeasonStatTotal, error) {
	rows, err := q.db.QueryContext(ctx, listSeasonTotals, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var totals []SeasonStatTotal
	for rows.Next() {
		var t SeasonStatTotal
		if err := rows.Scan(&t.PlayerID, &t.SeasonID, &t.GamesPlayed,
			&t.PassAttempts, &t.PassCompletions, &t.PassYards, &t.PassTDs, &t.Interceptions,
			&t.RushAttempts, &t.RushYards, &t.RushTDs, &t.Receptions,
			&t.ReceivingYards, &t.ReceivingTDs, &t.UpdatedAt); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

const listGameStatLines = `
SELECT id, game_id, season_id, team_id, player_id, pass_attempts,
    pass_completions, pass_yards, pass_tds, interceptions, rush_attempts,
    rush_yards, rush_tds, receptions, receiving_yards, receiving_tds, created_at
FROM game_stat_lines
WHERE game_id = $1
ORDER BY team_id, player_id`

func (q *Queries) ListGameStatLines(ctx context.Context, gameID uuid.UUID) ([]GameStatLine, error) {
	rows, err := q.db.QueryContext(ctx, listGameStatLines, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lines []GameStatLine
	for rows.Next() {
		var l GameStatLine
		if err := rows.Scan(&l.ID, &l.GameID, &l.SeasonID, &l.TeamID, &l.PlayerID,
			&l.PassAttempts, &l.PassCompletions, &l.PassYards, &l.PassTDs, &l.Interceptions,
			&l.RushAttempts, &l.RushYards, &l.RushTDs, &l.Receptions,
			&l.ReceivingYards, &l.ReceivingTDs, &l.CreatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
