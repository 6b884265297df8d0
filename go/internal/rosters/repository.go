package rosters

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/rosters/db"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	ListTeams(ctx context.Context) ([]db.Team, error)
	CreateSeason(ctx context.Context, arg db.CreateSeasonParams) (db.Season, error)
	CreatePlayer(ctx context.Context, arg db.CreatePlayerParams) (db.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]db.ListPlayersByTeamRow, error)
	UpsertPlayerAttributes(ctx context.Context, arg db.UpsertPlayerAttributesParams) error
	SetPlayerSpeed(ctx context.Context, arg db.SetPlayerAttributeParams) error
	SetPlayerStrength(ctx context.Context, arg db.SetPlayerAttributeParams) error
	SetPlayerAgility(ctx context.Context, arg db.SetPlayerAttributeParams) error
	SetPlayerThrowPower(ctx context.Context, arg db.SetPlayerAttributeParams) error
	SetPlayerThrowAccuracy(ctx context.Context, arg db.SetPlayerAttributeParams) error
	SetPlayerCatching(ctx context.Context, arg db.SetPlayerAttributeParams) error
	SetPlayerTackling(ctx context.Context, arg db.SetPlayerAttributeParams) error
	SetPlayerAwareness(ctx context.Context, arg db.SetPlayerAttributeParams) error
	SetPlayerStamina(ctx context.Context, arg db.SetPlayerAttributeParams) error
}

// Repository implements roster data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new rosters repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		ID:   uuid.New(),
		Name: req.Name,
		City: req.City,
		Code: req.Code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// ListTeams retrieves all teams
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *r.dbTeamToModel(dbTeam)
	}

	return teams, nil
}

// CreateSeason creates a new season
func (r *Repository) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	dbSeason, err := r.queries.CreateSeason(ctx, db.CreateSeasonParams{
		ID:    uuid.New(),
		Year:  int32(req.Year),
		Weeks: int32(req.Weeks),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	return &models.Season{
		ID:        dbSeason.ID,
		Year:      int(dbSeason.Year),
		Weeks:     int(dbSeason.Weeks),
		CreatedAt: dbSeason.CreatedAt,
	}, nil
}

// CreatePlayer creates a new player, including their attribute row when provided
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	dbPlayer, err := r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		ID:       uuid.New(),
		FullName: req.FullName,
		Position: string(req.Position),
		Rating:   int32(req.Rating),
		TeamID:   sqlutil.ToNullUUID(req.TeamID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	player := r.dbPlayerToModel(dbPlayer, nil)

	if req.Attributes != nil {
		attrs := *req.Attributes
		attrs.PlayerID = dbPlayer.ID
		if err := r.queries.UpsertPlayerAttributes(ctx, attributesToParams(attrs)); err != nil {
			return nil, fmt.Errorf("failed to upsert player attributes: %w", err)
		}
		player.Attributes = &attrs
	}

	return player, nil
}

// GetPlayer retrieves a player by ID (without attributes)
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	dbPlayer, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return r.dbPlayerToModel(dbPlayer, nil), nil
}

// ListPlayersByTeam retrieves the full roster for a team, attributes included.
// Players with no attribute row come back with nil Attributes.
func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	rows, err := r.queries.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}

	players := make([]models.Player, len(rows))
	for i, row := range rows {
		var attrs *models.PlayerAttributes
		if row.HasAttributes {
			attrs = dbAttributesToModel(row.Attribute)
		}
		players[i] = *r.dbPlayerToModel(row.Player, attrs)
	}

	return players, nil
}

// SetPlayerAttribute writes one attribute column for a player. The dispatch is
// a switch over the closed enum so an unknown kind can never reach SQL.
func (r *Repository) SetPlayerAttribute(ctx context.Context, playerID uuid.UUID, kind models.AttributeKind, value int) error {
	arg := db.SetPlayerAttributeParams{
		PlayerID: playerID,
		Value:    int32(value),
	}

	var err error
	switch kind {
	case models.AttrSpeed:
		err = r.queries.SetPlayerSpeed(ctx, arg)
	case models.AttrStrength:
		err = r.queries.SetPlayerStrength(ctx, arg)
	case models.AttrAgility:
		err = r.queries.SetPlayerAgility(ctx, arg)
	case models.AttrThrowPower:
		err = r.queries.SetPlayerThrowPower(ctx, arg)
	case models.AttrThrowAccuracy:
		err = r.queries.SetPlayerThrowAccuracy(ctx, arg)
	case models.AttrCatching:
		err = r.queries.SetPlayerCatching(ctx, arg)
	case models.AttrTackling:
		err = r.queries.SetPlayerTackling(ctx, arg)
	case models.AttrAwareness:
		err = r.queries.SetPlayerAwareness(ctx, arg)
	case models.AttrStamina:
		err = r.queries.SetPlayerStamina(ctx, arg)
	default:
		return fmt.Errorf("unknown attribute kind %q", kind)
	}

	if err != nil {
		return fmt.Errorf("failed to set %s for player %s: %w", kind, playerID, err)
	}
	return nil
}

// dbTeamToModel converts a database team to domain model
func (r *Repository) dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:        dbTeam.ID,
		Name:      dbTeam.Name,
		City:      dbTeam.City,
		Code:      dbTeam.Code,
		CreatedAt: dbTeam.CreatedAt,
	}
}

// dbPlayerToModel converts a database player to domain model
func (r *Repository) dbPlayerToModel(dbPlayer db.Player, attrs *models.PlayerAttributes) *models.Player {
	return &models.Player{
		ID:         dbPlayer.ID,
		FullName:   dbPlayer.FullName,
		Position:   models.Position(dbPlayer.Position),
		Rating:     int(dbPlayer.Rating),
		TeamID:     sqlutil.FromNullUUID(dbPlayer.TeamID),
		Attributes: attrs,
		CreatedAt:  dbPlayer.CreatedAt,
	}
}

func dbAttributesToModel(a db.PlayerAttribute) *models.PlayerAttributes {
	return &models.PlayerAttributes{
		PlayerID:      a.PlayerID,
		Speed:         sqlutil.FromSqlInt32(a.Speed),
		Strength:      sqlutil.FromSqlInt32(a.Strength),
		Agility:       sqlutil.FromSqlInt32(a.Agility),
		ThrowPower:    sqlutil.FromSqlInt32(a.ThrowPower),
		ThrowAccuracy: sqlutil.FromSqlInt32(a.ThrowAccuracy),
		Catching:      sqlutil.FromSqlInt32(a.Catching),
		Tackling:      sqlutil.FromSqlInt32(a.Tackling),
		Awareness:     sqlutil.FromSqlInt32(a.Awareness),
		Stamina:       sqlutil.FromSqlInt32(a.Stamina),
	}
}

func attributesToParams(a models.PlayerAttributes) db.UpsertPlayerAttributesParams {
	return db.UpsertPlayerAttributesParams{
		PlayerID:      a.PlayerID,
		Speed:         sqlutil.ToSqlInt32(a.Speed),
		Strength:      sqlutil.ToSqlInt32(a.Strength),
		Agility:       sqlutil.ToSqlInt32(a.Agility),
		ThrowPower:    sqlutil.ToSqlInt32(a.ThrowPower),
		ThrowAccuracy: sqlutil.ToSqlInt32(a.ThrowAccuracy),
		Catching:      sqlutil.ToSqlInt32(a.Catching),
		Tackling:      sqlutil.ToSqlInt32(a.Tackling),
		Awareness:     sqlutil.ToSqlInt32(a.Awareness),
		Stamina:       sqlutil.ToSqlInt32(a.Stamina),
	}
}
