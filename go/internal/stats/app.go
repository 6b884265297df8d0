package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
)

// StatsRepository defines what the app layer needs from the repository
type StatsRepository interface {
	AccumulateSeasonTotals(ctx context.Context, playerID, seasonID uuid.UUID, line models.StatLine) (*models.SeasonStatTotals, error)
	GetSeasonTotals(ctx context.Context, playerID, seasonID uuid.UUID) (*models.SeasonStatTotals, error)
	ListSeasonTotals(ctx context.Context, seasonID uuid.UUID) ([]models.SeasonStatTotals, error)
	ListGameStatLines(ctx context.Context, gameID uuid.UUID) ([]models.GameStatLine, error)
}

// App handles stat aggregation business logic. Game finalization writes its
// stat rows inside its own transaction; this app serves reads and the
// standalone accumulate path.
type App struct {
	repo StatsRepository
}

// NewApp creates a new stats App
func NewApp(repo StatsRepository) *App {
	return &App{
		repo: repo,
	}
}

// Accumulate merges a stat line into a player's season totals. The operation
// is additive, not idempotent; callers own not re-submitting the same game.
func (a *App) Accumulate(ctx context.Context, playerID, seasonID uuid.UUID, line models.StatLine) (*models.SeasonStatTotals, error) {
	if line.IsZero() {
		return nil, fmt.Errorf("refusing to accumulate an empty stat line")
	}

	totals, err := a.repo.AccumulateSeasonTotals(ctx, playerID, seasonID, line)
	if err != nil {
		return nil, fmt.Errorf("failed to accumulate stats for player %s: %w", playerID, err)
	}
	return totals, nil
}

// GetSeasonTotals retrieves one player's totals for a season
func (a *App) GetSeasonTotals(ctx context.Context, playerID, seasonID uuid.UUID) (*models.SeasonStatTotals, error) {
	return a.repo.GetSeasonTotals(ctx, playerID, seasonID)
}

// ListSeasonTotals retrieves every player's totals for a season
func (a *App) ListSeasonTotals(ctx context.Context, seasonID uuid.UUID) ([]models.SeasonStatTotals, error) {
	return a.repo.ListSeasonTotals(ctx, seasonID)
}

// ListGameStatLines retrieves the stat lines recorded for a game
func (a *App) ListGameStatLines(ctx context.Context, gameID uuid.UUID) ([]models.GameStatLine, error) {
	return a.repo.ListGameStatLines(ctx, gameID)
}
