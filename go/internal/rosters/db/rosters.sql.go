package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createTeam = `
INSERT INTO teams (id, name, city, code)
VALUES ($1, $2, $3, $4)
RETURNING id, name, city, code, created_at`

type CreateTeamParams struct {
	ID   uuid.UUID
	Name string
	City string
	Code string
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam, arg.ID, arg.Name, arg.City, arg.Code)
	var t Team
	err := row.Scan(&t.ID, &t.Name, &t.City, &t.Code, &t.CreatedAt)
	return t, err
}

const getTeam = `
SELECT id, name, city, code, created_at FROM teams WHERE id = $1`

func (q *Queries) GetTeam(ctx context.Context, id uuid.UUID) (Team, error) {
	var t Team
	err := q.db.QueryRowContext(ctx, getTeam, id).
		Scan(&t.ID, &t.Name, &t.City, &t.Code, &t.CreatedAt)
	return t, err
}

const listTeams = `
SELECT id, name, city, code, created_at FROM teams ORDER BY name ASC`

func (q *Queries) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listTeams)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &t.Code, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

const createSeason = `
INSERT INTO seasons (id, year, weeks)
VALUES ($1, $2, $3)
RETURNING id, year, weeks, created_at`

type CreateSeasonParams struct {
	ID    uuid.UUID
	Year  int32
	Weeks int32
}

func (q *Queries) CreateSeason(ctx context.Context, arg CreateSeasonParams) (Season, error) {
	row := q.db.QueryRowContext(ctx, createSeason, arg.ID, arg.Year, arg.Weeks)
	var s Season
	err := row.Scan(&s.ID, &s.Year, &s.Weeks, &s.CreatedAt)
	return s, err
}

const createPlayer = `
INSERT INTO players (id, full_name, position, rating, team_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, full_name, position, rating, team_id, created_at`

type CreatePlayerParams struct {
	ID       uuid.UUID
	FullName string
	Position string
	Rating   int32
	TeamID   uuid.NullUUID
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, createPlayer,
		arg.ID, arg.FullName, arg.Position, arg.Rating, arg.TeamID)
	var p Player
	err := row.Scan(&p.ID, &p.FullName, &p.Position, &p.Rating, &p.TeamID, &p.CreatedAt)
	return p, err
}

const getPlayer = `
SELECT id, full_name, position, rating, team_id, created_at
FROM players WHERE id = $1`

func (q *Queries) GetPlayer(ctx context.Context, id uuid.UUID) (Player, error) {
	var p Player
	err := q.db.QueryRowContext(ctx, getPlayer, id).
		Scan(&p.ID, &p.FullName, &p.Position, &p.Rating, &p.TeamID, &p.CreatedAt)
	return p, err
}

const listPlayersByTeam = `
SELECT p.id, p.full_name, p.position, p.rating, p.team_id, p.created_at,
       a.player_id, a.speed, a.strength, a.agility, a.throw_power,
       a.throw_accuracy, a.catching, a.tackling, a.awareness, a.stamina
FROM players p
LEFT JOIN player_attributes a ON a.player_id = p.id
WHERE p.team_id = $1
ORDER BY p.rating DESC, p.id ASC`

type ListPlayersByTeamRow struct {
	Player    Player
	Attribute PlayerAttribute
	// HasAttributes is false when the player has no attribute row at all.
	HasAttributes bool
}

func (q *Queries) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]ListPlayersByTeamRow, error) {
	rows, err := q.db.QueryContext(ctx, listPlayersByTeam, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ListPlayersByTeamRow
	for rows.Next() {
		var r ListPlayersByTeamRow
		var attrPlayerID uuid.NullUUID
		if err := rows.Scan(
			&r.Player.ID, &r.Player.FullName, &r.Player.Position, &r.Player.Rating,
			&r.Player.TeamID, &r.Player.CreatedAt,
			&attrPlayerID, &r.Attribute.Speed, &r.Attribute.Strength, &r.Attribute.Agility,
			&r.Attribute.ThrowPower, &r.Attribute.ThrowAccuracy, &r.Attribute.Catching,
			&r.Attribute.Tackling, &r.Attribute.Awareness, &r.Attribute.Stamina,
		); err != nil {
			return nil, err
		}
		r.HasAttributes = attrPlayerID.Valid
		r.Attribute.PlayerID = attrPlayerID.UUID
		out = append(out, r)
	}
	return out, rows.Err()
}

const upsertPlayerAttributes = `
INSERT INTO player_attributes (player_id, speed, strength, agility, throw_power,
    throw_accuracy, catching, tackling, awareness, stamina)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (player_id) DO UPDATE SET
    speed = EXCLUDED.speed,
    strength = EXCLUDED.strength,
    agility = EXCLUDED.agility,
    throw_power = EXCLUDED.throw_power,
    throw_accuracy = EXCLUDED.throw_accuracy,
    catching = EXCLUDED.catching,
    tackling = EXCLUDED.tackling,
    awareness = EXCLUDED.awareness,
    stamina = EXCLUDED.stamina`

type UpsertPlayerAttributesParams struct {
	PlayerID      uuid.UUID
	Speed         sql.NullInt32
	Strength      sql.NullInt32
	Agility       sql.NullInt32
	ThrowPower    sql.NullInt32
	ThrowAccuracy sql.NullInt32
	Catching      sql.NullInt32
	Tackling      sql.NullInt32
	Awareness     sql.NullInt32
	Stamina       sql.NullInt32
}

func (q *Queries) UpsertPlayerAttributes(ctx context.Context, arg UpsertPlayerAttributesParams) error {
	_, err := q.db.ExecContext(ctx, upsertPlayerAttributes,
		arg.PlayerID, arg.Speed, arg.Strength, arg.Agility, arg.ThrowPower,
		arg.ThrowAccuracy, arg.Catching, arg.Tackling, arg.Awareness, arg.Stamina)
	return err
}

// One statement per attribute column. The repository dispatches over the
// closed AttributeKind enum; there is deliberately no dynamic column name path.
const (
	updateSpeed         = `INSERT INTO player_attributes (player_id, speed) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET speed = EXCLUDED.speed`
	updateStrength      = `INSERT INTO player_attributes (player_id, strength) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET strength = EXCLUDED.strength`
	updateAgility       = `INSERT INTO player_attributes (player_id, agility) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET agility = EXCLUDED.agility`
	updateThrowPower    = `INSERT INTO player_attributes (player_id, throw_power) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET throw_power = EXCLUDED.throw_power`
	updateThrowAccuracy = `INSERT INTO player_attributes (player_id, throw_accuracy) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET throw_accuracy = EXCLUDED.throw_accuracy`
	updateCatching      = `INSERT INTO player_attributes (player_id, catching) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET catching = EXCLUDED.catching`
	updateTackling      = `INSERT INTO player_attributes (player_id, tackling) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET tackling = EXCLUDED.tackling`
	updateAwareness     = `INSERT INTO player_attributes (player_id, awareness) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET awareness = EXCLUDED.awareness`
	updateStamina       = `INSERT INTO player_attributes (player_id, stamina) VALUES ($1, $2) ON CONFLICT (player_id) DO UPDATE SET stamina = EXCLUDED.stamina`
)

type SetPlayerAttributeParams struct {
	PlayerID uuid.UUID
	Value    int32
}

func (q *Queries) SetPlayerSpeed(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateSpeed, arg.PlayerID, arg.Value)
	return err
}

func (q *Queries) SetPlayerStrength(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateStrength, arg.PlayerID, arg.Value)
	return err
}

func (q *Queries) SetPlayerAgility(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateAgility, arg.PlayerID, arg.Value)
	return err
}

func (q *Queries) SetPlayerThrowPower(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateThrowPower, arg.PlayerID, arg.Value)
	return err
}

func (q *Queries) SetPlayerThrowAccuracy(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateThrowAccuracy, arg.PlayerID, arg.Value)
	return err
}

func (q *Queries) SetPlayerCatching(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateCatching, arg.PlayerID, arg.Value)
	return err
}

func (q *Queries) SetPlayerTackling(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateTackling, arg.PlayerID, arg.Value)
	return err
}

func (q *Queries) SetPlayerAwareness(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateAwareness, arg.PlayerID, arg.Value)
	return err
}

func (q *Queries) SetPlayerStamina(ctx context.Context, arg SetPlayerAttributeParams) error {
	_, err := q.db.ExecContext(ctx, updateStamina, arg.PlayerID, arg.Value)
	return err
}
