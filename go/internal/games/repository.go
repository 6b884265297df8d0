package games

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	gamesdb "github.com/mcdev12/gridiron/go/internal/games/db"
	"github.com/mcdev12/gridiron/go/internal/models"
	outboxdb "github.com/mcdev12/gridiron/go/internal/outbox/db"
	standingsdb "github.com/mcdev12/gridiron/go/internal/standings/db"
	statsdb "github.com/mcdev12/gridiron/go/internal/stats/db"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
)

// Repository implements game data access. Finalization spans the games,
// stats, standings, and outbox tables, so unlike the single-table
// repositories it holds the *sql.DB and binds each domain's queries to one
// transaction.
type Repository struct {
	db        *sql.DB
	games     *gamesdb.Queries
	stats     *statsdb.Queries
	standings *standingsdb.Queries
	outbox    *outboxdb.Queries
}

// NewRepository creates a new games repository
func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		db:        sqlDB,
		games:     gamesdb.New(sqlDB),
		stats:     statsdb.New(sqlDB),
		standings: standingsdb.New(sqlDB),
		outbox:    outboxdb.New(sqlDB),
	}
}

// CreateGame schedules a new game
func (r *Repository) CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error) {
	dbGame, err := r.games.CreateGame(ctx, gamesdb.CreateGameParams{
		ID:         uuid.New(),
		SeasonID:   req.SeasonID,
		Week:       int32(req.Week),
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		GameDate:   sqlutil.ToSqlTime(req.GameDate),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return dbGameToModel(dbGame), nil
}

// GetGame retrieves a game by ID
func (r *Repository) GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	dbGame, err := r.games.GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return dbGameToModel(dbGame), nil
}

// ListUnplayedBySeasonWeek retrieves the unplayed games of one week in a
// deterministic order.
func (r *Repository) ListUnplayedBySeasonWeek(ctx context.Context, seasonID uuid.UUID, week int) ([]models.Game, error) {
	dbGames, err := r.games.ListUnplayedBySeasonWeek(ctx, gamesdb.ListUnplayedBySeasonWeekParams{
		SeasonID: seasonID,
		Week:     int32(week),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list unplayed games for week %d: %w", week, err)
	}

	return dbGamesToModels(dbGames), nil
}

// ListUnplayedBySeason retrieves every unplayed game of a season in a
// deterministic order.
func (r *Repository) ListUnplayedBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error) {
	dbGames, err := r.games.ListUnplayedBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unplayed games: %w", err)
	}

	return dbGamesToModels(dbGames), nil
}

// ListGamesBySeason retrieves a season's full schedule
func (r *Repository) ListGamesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error) {
	dbGames, err := r.games.ListGamesBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return dbGamesToModels(dbGames), nil
}

// EnsureStandingsRow creates the (season, team) standings row if it does not
// exist yet.
func (r *Repository) EnsureStandingsRow(ctx context.Context, seasonID, teamID uuid.UUID) error {
	err := r.standings.EnsureStandingsRow(ctx, standingsdb.EnsureStandingsRowParams{
		SeasonID: seasonID,
		TeamID:   teamID,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure standings row: %w", err)
	}
	return nil
}

// FinalizeGame commits a simulation result in one transaction: the score, the
// per-player stat lines, the season total merges, both standings updates, and
// the outbox event. The game row lock serializes concurrent finalize attempts;
// the loser of the race gets ErrGameAlreadyFinal and nothing is written.
func (r *Repository) FinalizeGame(ctx context.Context, req FinalizeGameRequest) (*models.Game, error) {
	var finalized *models.Game

	err := sqlutil.RunTx(ctx, r.db, func(tx *sql.Tx) error {
		gamesQ := r.games.WithTx(tx)
		statsQ := r.stats.WithTx(tx)
		standingsQ := r.standings.WithTx(tx)
		outboxQ := r.outbox.WithTx(tx)

		locked, err := gamesQ.GetGameForUpdate(ctx, req.GameID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrGameNotFound
			}
			return fmt.Errorf("failed to lock game: %w", err)
		}
		if locked.Played {
			return ErrGameAlreadyFinal
		}

		for _, line := range req.StatLines {
			if err := statsQ.InsertGameStatLine(ctx, statLineToInsertParams(locked, line)); err != nil {
				return fmt.Errorf("failed to insert stat line for player %s: %w", line.PlayerID, err)
			}
			if _, err := statsQ.UpsertSeasonTotals(ctx, statLineToUpsertParams(locked.SeasonID, line)); err != nil {
				return fmt.Errorf("failed to upsert season totals for player %s: %w", line.PlayerID, err)
			}
		}

		homeParams, awayParams := standingsDeltas(locked, req.HomeScore, req.AwayScore)
		for _, params := range []standingsdb.ApplyGameResultParams{homeParams, awayParams} {
			affected, err := standingsQ.ApplyGameResult(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to apply standings for team %s: %w", params.TeamID, err)
			}
			if affected == 0 {
				return fmt.Errorf("%w: team %s season %s", ErrStandingsRowMissing, params.TeamID, locked.SeasonID)
			}
		}

		analytics, err := json.Marshal(req.Analytics)
		if err != nil {
			return fmt.Errorf("failed to marshal analytics: %w", err)
		}

		affected, err := gamesQ.FinalizeGame(ctx, gamesdb.FinalizeGameParams{
			ID:        req.GameID,
			HomeScore: int32(req.HomeScore),
			AwayScore: int32(req.AwayScore),
			Analytics: pqtype.NullRawMessage{RawMessage: analytics, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("failed to finalize game: %w", err)
		}
		if affected == 0 {
			// Unreachable while the row lock is held, but fail loudly rather
			// than commit a partial result.
			return ErrGameAlreadyFinal
		}

		payload, err := json.Marshal(GameFinalizedPayload{
			GameID:     locked.ID,
			SeasonID:   locked.SeasonID,
			Week:       int(locked.Week),
			HomeTeamID: locked.HomeTeamID,
			AwayTeamID: locked.AwayTeamID,
			HomeScore:  req.HomeScore,
			AwayScore:  req.AwayScore,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal outbox payload: %w", err)
		}
		err = outboxQ.InsertOutboxEvent(ctx, outboxdb.InsertOutboxEventParams{
			ID:        uuid.New(),
			GameID:    locked.ID,
			EventType: EventTypeGameFinalized,
			Payload:   pqtype.NullRawMessage{RawMessage: payload, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("failed to insert outbox event: %w", err)
		}

		game := dbGameToModel(locked)
		game.HomeScore = req.HomeScore
		game.AwayScore = req.AwayScore
		game.Played = true
		game.Status = models.GameStatusFinal
		finalized = game
		return nil
	})
	if err != nil {
		return nil, err
	}

	return finalized, nil
}

// standingsDeltas maps the final score onto per-team standings increments.
// A tie increments ties on both sides.
func standingsDeltas(g gamesdb.Game, homeScore, awayScore int) (home, away standingsdb.ApplyGameResultParams) {
	home = standingsdb.ApplyGameResultParams{
		SeasonID:      g.SeasonID,
		TeamID:        g.HomeTeamID,
		PointsFor:     int32(homeScore),
		PointsAgainst: int32(awayScore),
	}
	away = standingsdb.ApplyGameResultParams{
		SeasonID:      g.SeasonID,
		TeamID:        g.AwayTeamID,
		PointsFor:     int32(awayScore),
		PointsAgainst: int32(homeScore),
	}

	switch {
	case homeScore > awayScore:
		home.Wins = 1
		away.Losses = 1
	case homeScore < awayScore:
		home.Losses = 1
		away.Wins = 1
	default:
		home.Ties = 1
		away.Ties = 1
	}

	return home, away
}

func statLineToInsertParams(g gamesdb.Game, line StatLineInput) statsdb.InsertGameStatLineParams {
	return statsdb.InsertGameStatLineParams{
		ID:              uuid.New(),
		GameID:          g.ID,
		SeasonID:        g.SeasonID,
		TeamID:          line.TeamID,
		PlayerID:        line.PlayerID,
		PassAttempts:    int32(line.Stats.PassAttempts),
		PassCompletions: int32(line.Stats.PassCompletions),
		PassYards:       int32(line.Stats.PassYards),
		PassTDs:         int32(line.Stats.PassTDs),
		Interceptions:   int32(line.Stats.Interceptions),
		RushAttempts:    int32(line.Stats.RushAttempts),
		RushYards:       int32(line.Stats.RushYards),
		RushTDs:         int32(line.Stats.RushTDs),
		Receptions:      int32(line.Stats.Receptions),
		ReceivingYards:  int32(line.Stats.ReceivingYards),
		ReceivingTDs:    int32(line.Stats.ReceivingTDs),
	}
}

func statLineToUpsertParams(seasonID uuid.UUID, line StatLineInput) statsdb.UpsertSeasonTotalsParams {
	return statsdb.UpsertSeasonTotalsParams{
		PlayerID:        line.PlayerID,
		SeasonID:        seasonID,
		PassAttempts:    int32(line.Stats.PassAttempts),
		PassCompletions: int32(line.Stats.PassCompletions),
		PassYards:       int32(line.Stats.PassYards),
		PassTDs:         int32(line.Stats.PassTDs),
		Interceptions:   int32(line.Stats.Interceptions),
		RushAttempts:    int32(line.Stats.RushAttempts),
		RushYards:       int32(line.Stats.RushYards),
		RushTDs:         int32(line.Stats.RushTDs),
		Receptions:      int32(line.Stats.Receptions),
		ReceivingYards:  int32(line.Stats.ReceivingYards),
		ReceivingTDs:    int32(line.Stats.ReceivingTDs),
	}
}

func dbGameToModel(g gamesdb.Game) *models.Game {
	return &models.Game{
		ID:         g.ID,
		SeasonID:   g.SeasonID,
		Week:       int(g.Week),
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		HomeScore:  int(g.HomeScore),
		AwayScore:  int(g.AwayScore),
		Played:     g.Played,
		Status:     models.GameStatus(g.Status),
		GameDate:   sqlutil.FromSqlTime(g.GameDate),
		CreatedAt:  g.CreatedAt,
	}
}

func dbGamesToModels(dbGames []gamesdb.Game) []models.Game {
	games := make([]models.Game, len(dbGames))
	for i, g := range dbGames {
		games[i] = *dbGameToModel(g)
	}
	return games
}
