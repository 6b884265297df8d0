package standings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
)

// StandingsRepository defines what the app layer needs from the repository
type StandingsRepository interface {
	EnsureRow(ctx context.Context, seasonID, teamID uuid.UUID) error
	ApplyGameResult(ctx context.Context, seasonID, teamID uuid.UUID, wins, losses, ties, pointsFor, pointsAgainst int) error
	GetRow(ctx context.Context, seasonID, teamID uuid.UUID) (*models.StandingsRow, error)
	ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.StandingsRow, error)
}

// App handles standings business logic. Game finalization applies its
// increments inside its own transaction; this app serves reads and the
// standalone record path.
type App struct {
	repo StandingsRepository
}

// NewApp creates a new standings App
func NewApp(repo StandingsRepository) *App {
	return &App{
		repo: repo,
	}
}

// EnsureRow creates a team's standings row for a season if missing
func (a *App) EnsureRow(ctx context.Context, seasonID, teamID uuid.UUID) error {
	return a.repo.EnsureRow(ctx, seasonID, teamID)
}

// RecordResult folds one final score into both teams' rows. Each team's
// update is atomic; a tie credits both sides.
func (a *App) RecordResult(ctx context.Context, seasonID, homeTeamID, awayTeamID uuid.UUID, homeScore, awayScore int) error {
	if homeScore < 0 || awayScore < 0 {
		return fmt.Errorf("scores cannot be negative")
	}

	var homeW, homeL, homeT, awayW, awayL, awayT int
	switch {
	case homeScore > awayScore:
		homeW, awayL = 1, 1
	case homeScore < awayScore:
		homeL, awayW = 1, 1
	default:
		homeT, awayT = 1, 1
	}

	if err := a.repo.ApplyGameResult(ctx, seasonID, homeTeamID, homeW, homeL, homeT, homeScore, awayScore); err != nil {
		return fmt.Errorf("failed to record result for home team: %w", err)
	}
	if err := a.repo.ApplyGameResult(ctx, seasonID, awayTeamID, awayW, awayL, awayT, awayScore, homeScore); err != nil {
		return fmt.Errorf("failed to record result for away team: %w", err)
	}
	return nil
}

// GetRow retrieves one team's standings row
func (a *App) GetRow(ctx context.Context, seasonID, teamID uuid.UUID) (*models.StandingsRow, error) {
	return a.repo.GetRow(ctx, seasonID, teamID)
}

// ListBySeason retrieves the season table ordered best-first
func (a *App) ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.StandingsRow, error) {
	return a.repo.ListBySeason(ctx, seasonID)
}
