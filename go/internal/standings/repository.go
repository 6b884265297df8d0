package standings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/standings/db"
)

// ErrRowNotFound means no standings row exists for the (season, team) pair.
var ErrRowNotFound = errors.New("standings row not found")

// Querier defines what the repository needs from the database layer
type Querier interface {
	EnsureStandingsRow(ctx context.Context, arg db.EnsureStandingsRowParams) error
	ApplyGameResult(ctx context.Context, arg db.ApplyGameResultParams) (int64, error)
	GetStandingsRow(ctx context.Context, arg db.GetStandingsRowParams) (db.StandingsRow, error)
	ListStandingsBySeason(ctx context.Context, seasonID uuid.UUID) ([]db.StandingsRow, error)
}

// Repository implements standings data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new standings repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// EnsureRow creates the (season, team) row if missing; safe to repeat.
func (r *Repository) EnsureRow(ctx context.Context, seasonID, teamID uuid.UUID) error {
	err := r.queries.EnsureStandingsRow(ctx, db.EnsureStandingsRowParams{
		SeasonID: seasonID,
		TeamID:   teamID,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure standings row: %w", err)
	}
	return nil
}

// ApplyGameResult folds one team's result into its standings row with atomic
// increments. A missing row is ErrRowNotFound, never a silent no-op.
func (r *Repository) ApplyGameResult(ctx context.Context, seasonID, teamID uuid.UUID, wins, losses, ties, pointsFor, pointsAgainst int) error {
	affected, err := r.queries.ApplyGameResult(ctx, db.ApplyGameResultParams{
		SeasonID:      seasonID,
		TeamID:        teamID,
		Wins:          int32(wins),
		Losses:        int32(losses),
		Ties:          int32(ties),
		PointsFor:     int32(pointsFor),
		PointsAgainst: int32(pointsAgainst),
	})
	if err != nil {
		return fmt.Errorf("failed to apply game result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: team %s season %s", ErrRowNotFound, teamID, seasonID)
	}
	return nil
}

// GetRow retrieves one team's standings row
func (r *Repository) GetRow(ctx context.Context, seasonID, teamID uuid.UUID) (*models.StandingsRow, error) {
	dbRow, err := r.queries.GetStandingsRow(ctx, db.GetStandingsRowParams{
		SeasonID: seasonID,
		TeamID:   teamID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to get standings row: %w", err)
	}

	row := dbRowToModel(dbRow)
	return &row, nil
}

// ListBySeason retrieves the season table ordered best-first.
func (r *Repository) ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.StandingsRow, error) {
	dbRows, err := r.queries.ListStandingsBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings: %w", err)
	}

	rows := make([]models.StandingsRow, len(dbRows))
	for i, dbRow := range dbRows {
		rows[i] = dbRowToModel(dbRow)
	}

	return rows, nil
}

func dbRowToModel(r db.StandingsRow) models.StandingsRow {
	return models.StandingsRow{
		SeasonID:      r.SeasonID,
		TeamID:        r.TeamID,
		Wins:          int(r.Wins),
		Losses:        int(r.Losses),
		Ties:          int(r.Ties),
		PointsFor:     int(r.PointsFor),
		PointsAgainst: int(r.PointsAgainst),
	}
}
