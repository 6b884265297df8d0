package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/stats/db"
)

// ErrTotalsNotFound means the player has no accumulated totals for the season.
var ErrTotalsNotFound = errors.New("season totals not found")

// Querier defines what the repository needs from the database layer
type Querier interface {
	UpsertSeasonTotals(ctx context.Context, arg db.UpsertSeasonTotalsParams) (db.SeasonStatTotal, error)
	GetSeasonTotals(ctx context.Context, arg db.GetSeasonTotalsParams) (db.SeasonStatTotal, error)
	ListSeasonTotals(ctx context.Context, seasonID uuid.UUID) ([]db.SeasonStatTotal, error)
	ListGameStatLines(ctx context.Context, gameID uuid.UUID) ([]db.GameStatLine, error)
}

// Repository implements stat data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new stats repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// AccumulateSeasonTotals merges one game's stat line into the player's season
// totals and returns the resulting row. The merge is purely additive: calling
// it twice with the same line counts the line twice.
func (r *Repository) AccumulateSeasonTotals(ctx context.Context, playerID, seasonID uuid.UUID, line models.StatLine) (*models.SeasonStatTotals, error) {
	dbTotal, err := r.queries.UpsertSeasonTotals(ctx, db.UpsertSeasonTotalsParams{
		PlayerID:        playerID,
		SeasonID:        seasonID,
		PassAttempts:    int32(line.PassAttempts),
		PassCompletions: int32(line.PassCompletions),
		PassYards:       int32(line.PassYards),
		PassTDs:         int32(line.PassTDs),
		Interceptions:   int32(line.Interceptions),
		RushAttempts:    int32(line.RushAttempts),
		RushYards:       int32(line.RushYards),
		RushTDs:         int32(line.RushTDs),
		Receptions:      int32(line.Receptions),
		ReceivingYards:  int32(line.ReceivingYards),
		ReceivingTDs:    int32(line.ReceivingTDs),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to accumulate season totals: %w", err)
	}

	return dbTotalToModel(dbTotal), nil
}

// GetSeasonTotals retrieves one player's season totals
func (r *Repository) GetSeasonTotals(ctx context.Context, playerID, seasonID uuid.UUID) (*models.SeasonStatTotals, error) {
	dbTotal, err := r.queries.GetSeasonTotals(ctx, db.GetSeasonTotalsParams{
		PlayerID: playerID,
		SeasonID: seasonID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTotalsNotFound
		}
		return nil, fmt.Errorf("failed to get season totals: %w", err)
	}

	return dbTotalToModel(dbTotal), nil
}

// ListSeasonTotals retrieves every player's totals for a season
func (r *Repository) ListSeasonTotals(ctx context.Context, seasonID uuid.UUID) ([]models.SeasonStatTotals, error) {
	dbTotals, err := r.queries.ListSeasonTotals(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list season totals: %w", err)
	}

	totals := make([]models.SeasonStatTotals, len(dbTotals))
	for i, t := range dbTotals {
		totals[i] = *dbTotalToModel(t)
	}

	return totals, nil
}

// ListGameStatLines retrieves the stat lines recorded for a game
func (r *Repository) ListGameStatLines(ctx context.Context, gameID uuid.UUID) ([]models.GameStatLine, error) {
	dbLines, err := r.queries.ListGameStatLines(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game stat lines: %w", err)
	}

	lines := make([]models.GameStatLine, len(dbLines))
	for i, l := range dbLines {
		lines[i] = models.GameStatLine{
			ID:        l.ID,
			GameID:    l.GameID,
			SeasonID:  l.SeasonID,
			TeamID:    l.TeamID,
			PlayerID:  l.PlayerID,
			StatLine:  dbLineToStatLine(l),
			CreatedAt: l.CreatedAt,
		}
	}

	return lines, nil
}

func dbTotalToModel(t db.SeasonStatTotal) *models.SeasonStatTotals {
	return &models.SeasonStatTotals{
		PlayerID:    t.PlayerID,
		SeasonID:    t.SeasonID,
		GamesPlayed: int(t.GamesPlayed),
		StatLine: models.StatLine{
			PassAttempts:    int(t.PassAttempts),
			PassCompletions: int(t.PassCompletions),
			PassYards:       int(t.PassYards),
			PassTDs:         int(t.PassTDs),
			Interceptions:   int(t.Interceptions),
			RushAttempts:    int(t.RushAttempts),
			RushYards:       int(t.RushYards),
			RushTDs:         int(t.RushTDs),
			Receptions:      int(t.Receptions),
			ReceivingYards:  int(t.ReceivingYards),
			ReceivingTDs:    int(t.ReceivingTDs),
		},
		UpdatedAt: t.UpdatedAt,
	}
}

func dbLineToStatLine(l db.GameStatLine) models.StatLine {
	return models.StatLine{
		PassAttempts:    int(l.PassAttempts),
		PassCompletions: int(l.PassCompletions),
		PassYards:       int(l.PassYards),
		PassTDs:         int(l.PassTDs),
		Interceptions:   int(l.Interceptions),
		RushAttempts:    int(l.RushAttempts),
		RushYards:       int(l.RushYards),
		RushTDs:         int(l.RushTDs),
		Receptions:      int(l.Receptions),
		ReceivingYards:  int(l.ReceivingYards),
		ReceivingTDs:    int(l.ReceivingTDs),
	}
}
