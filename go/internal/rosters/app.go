package rosters

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/rating"
)

// RostersRepository defines what the app layer needs from the repository
type RostersRepository interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error)
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	SetPlayerAttribute(ctx context.Context, playerID uuid.UUID, kind models.AttributeKind, value int) error
}

// App handles roster business logic
type App struct {
	repo RostersRepository
}

// NewApp creates a new rosters App
func NewApp(repo RostersRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateTeam creates a new team with validation
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.City == "" {
		return nil, fmt.Errorf("city is required")
	}
	if req.Code == "" {
		return nil, fmt.Errorf("code is required")
	}

	team, err := a.repo.CreateTeam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Printf("Created team: %s %s (%s)", team.City, team.Name, team.Code)
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams retrieves all teams
func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// CreateSeason creates a new season with validation
func (a *App) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	if req.Year < 1900 {
		return nil, fmt.Errorf("year %d is not a valid season year", req.Year)
	}
	if req.Weeks <= 0 {
		return nil, fmt.Errorf("weeks must be positive")
	}

	season, err := a.repo.CreateSeason(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	log.Printf("Created season %d with %d weeks", season.Year, season.Weeks)
	return season, nil
}

// CreatePlayer creates a new player with validation
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	if !req.Position.IsValid() {
		return nil, fmt.Errorf("unknown position %q", req.Position)
	}
	if req.Rating < 40 || req.Rating > 99 {
		return nil, fmt.Errorf("rating %d out of range [40, 99]", req.Rating)
	}

	player, err := a.repo.CreatePlayer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetTeamRoster retrieves every player on a team, attributes included
func (a *App) GetTeamRoster(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	players, err := a.repo.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team roster: %w", err)
	}
	return players, nil
}

// ComputeTeamRating aggregates the current roster into overall, defense, and
// per-unit ratings. An empty roster still produces a usable rating.
func (a *App) ComputeTeamRating(ctx context.Context, teamID uuid.UUID) (*rating.TeamRating, error) {
	players, err := a.repo.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for rating: %w", err)
	}

	tr := rating.Compute(players)
	return &tr, nil
}

// UpdatePlayerAttribute sets a single attribute on a player with validation
func (a *App) UpdatePlayerAttribute(ctx context.Context, req UpdatePlayerAttributeRequest) error {
	if req.Value < 0 || req.Value > 100 {
		return fmt.Errorf("attribute value %d out of range [0, 100]", req.Value)
	}

	// Verify player exists
	player, err := a.repo.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return fmt.Errorf("player not found: %w", err)
	}

	if err := a.repo.SetPlayerAttribute(ctx, req.PlayerID, req.Kind, req.Value); err != nil {
		return fmt.Errorf("failed to update attribute: %w", err)
	}

	log.Printf("Updated %s=%d for player %s", req.Kind, req.Value, player.FullName)
	return nil
}
