package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

const gameColumns = `id, season_id, week, home_team_id, away_team_id,
home_score, away_score, played, status, game_date, analytics, created_at`

const createGame = `
INSERT INTO games (id, season_id, week, home_team_id, away_team_id, game_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + gameColumns

type CreateGameParams struct {
	ID         uuid.UUID
	SeasonID   uuid.UUID
	Week       int32
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	GameDate   sql.NullTime
}

func (q *Queries) CreateGame(ctx context.Context, arg CreateGameParams) (Game, error) {
	row := q.db.QueryRowContext(ctx, createGame,
		arg.ID, arg.SeasonID, arg.Week, arg.HomeTeamID, arg.AwayTeamID, arg.GameDate)
	return scanGame(row)
}

const getGame = `
SELECT ` + gameColumns + ` FROM games WHERE id = $1`

func (q *Queries) GetGame(ctx context.Context, id uuid.UUID) (Game, error) {
	return scanGame(q.db.QueryRowContext(ctx, getGame, id))
}

const getGameForUpdate = `
SELECT ` + gameColumns + ` FROM games WHERE id = $1 FOR UPDATE`

// GetGameForUpdate locks the game row for the duration of the enclosing
// transaction, serializing concurrent finalize attempts on the same game.
func (q *Queries) GetGameForUpdate(ctx context.Context, id uuid.UUID) (Game, error) {
	return scanGame(q.db.QueryRowContext(ctx, getGameForUpdate, id))
}

const listUnplayedBySeasonWeek = `
SELECT ` + gameColumns + ` FROM games
WHERE season_id = $1 AND week = $2 AND NOT played
ORDER BY game_date ASC NULLS LAST, id ASC`

type ListUnplayedBySeasonWeekParams struct {
	SeasonID uuid.UUID
	Week     int32
}

func (q *Queries) ListUnplayedBySeasonWeek(ctx context.Context, arg ListUnplayedBySeasonWeekParams) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx, listUnplayedBySeasonWeek, arg.SeasonID, arg.Week)
	if err != nil {
		return nil, err
	}
	return scanGames(rows)
}

const listUnplayedBySeason = `
SELECT ` + gameColumns + ` FROM games
WHERE season_id = $1 AND NOT played
ORDER BY game_date ASC NULLS LAST, id ASC`

func (q *Queries) ListUnplayedBySeason(ctx context.Context, seasonID uuid.UUID) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx, listUnplayedBySeason, seasonID)
	if err != nil {
		return nil, err
	}
	return scanGames(rows)
}

const listGamesBySeason = `
SELECT ` + gameColumns + ` FROM games
WHERE season_id = $1
ORDER BY week ASC, game_date ASC NULLS LAST, id ASC`

func (q *Queries) ListGamesBySeason(ctx context.Context, seasonID uuid.UUID) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx, listGamesBySeason, seasonID)
	if err != nil {
		return nil, err
	}
	return scanGames(rows)
}

const finalizeGame = `
UPDATE games
SET home_score = $2, away_score = $3, played = TRUE, status = 'final', analytics = $4
WHERE id = $1 AND NOT played`

type FinalizeGameParams struct {
	ID        uuid.UUID
	HomeScore int32
	AwayScore int32
	Analytics pqtype.NullRawMessage
}

// FinalizeGame writes the terminal score and flips played. The NOT played
// guard makes the write a no-op for an already-final game; callers check the
// affected-row count.
func (q *Queries) FinalizeGame(ctx context.Context, arg FinalizeGameParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, finalizeGame,
		arg.ID, arg.HomeScore, arg.AwayScore, arg.Analytics)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanGame(row *sql.Row) (Game, error) {
	var g Game
	err := row.Scan(&g.ID, &g.SeasonID, &g.Week, &g.HomeTeamID, &g.AwayTeamID,
		&g.HomeScore, &g.AwayScore, &g.Played, &g.Status, &g.GameDate,
		&g.Analytics, &g.CreatedAt)
	return g, err
}

func scanGames(rows *sql.Rows) ([]Game, error) {
	defer rows.Close()
	var games []Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.SeasonID, &g.Week, &g.HomeTeamID, &g.AwayTeamID,
			&g.HomeScore, &g.AwayScore, &g.Played, &g.Status, &g.GameDate,
			&g.Analytics, &g.CreatedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
