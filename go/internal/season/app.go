package season

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/gridiron/go/internal/models"
)

// GamesApp defines what the season runner needs from the games domain
type GamesApp interface {
	SimulateGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error)
	ListUnplayedBySeasonWeek(ctx context.Context, seasonID uuid.UUID, week int) ([]models.Game, error)
	ListUnplayedBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Game, error)
}

// BatchResult reports one batch run: how many games were actually simulated
// in this call. Games that were already final before the batch started are
// not listed and not counted.
type BatchResult struct {
	Simulated int           `json:"simulated"`
	Games     []models.Game `json:"games"`
}

// App runs week and season batches. Games run sequentially within a batch;
// each game commits independently, so a cancelled batch keeps everything
// already finalized.
type App struct {
	games GamesApp
}

// NewApp creates a new season App
func NewApp(games GamesApp) *App {
	return &App{
		games: games,
	}
}

// SimulateWeek simulates every unplayed game of one week
func (a *App) SimulateWeek(ctx context.Context, seasonID uuid.UUID, week int) (*BatchResult, error) {
	if week <= 0 {
		return nil, fmt.Errorf("week must be positive")
	}

	pending, err := a.games.ListUnplayedBySeasonWeek(ctx, seasonID, week)
	if err != nil {
		return nil, fmt.Errorf("failed to list week %d games: %w", week, err)
	}

	result, err := a.runBatch(ctx, pending)
	if err != nil {
		return result, err
	}

	log.Info().
		Str("season_id", seasonID.String()).
		Int("week", week).
		Int("simulated", result.Simulated).
		Msg("week simulation complete")
	return result, nil
}

// SimulateSeason simulates every remaining unplayed game of the season
func (a *App) SimulateSeason(ctx context.Context, seasonID uuid.UUID) (*BatchResult, error) {
	pending, err := a.games.ListUnplayedBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unplayed games: %w", err)
	}

	result, err := a.runBatch(ctx, pending)
	if err != nil {
		return result, err
	}

	log.Info().
		Str("season_id", seasonID.String()).
		Int("simulated", result.Simulated).
		Msg("season simulation complete")
	return result, nil
}

// runBatch plays the pending games in order, checking for cancellation
// between games. On error the partial result is returned alongside it so the
// caller can see what committed.
func (a *App) runBatch(ctx context.Context, pending []models.Game) (*BatchResult, error) {
	result := &BatchResult{}

	for _, g := range pending {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("batch cancelled after %d games: %w", result.Simulated, err)
		}

		finalized, err := a.games.SimulateGame(ctx, g.ID)
		if err != nil {
			return result, fmt.Errorf("failed to simulate game %s: %w", g.ID, err)
		}
		result.Simulated++
		result.Games = append(result.Games, *finalized)
	}

	return result, nil
}
