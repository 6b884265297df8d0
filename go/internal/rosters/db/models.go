package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID        uuid.UUID
	Name      string
	City      string
	Code      string
	CreatedAt time.Time
}

type Season struct {
	ID        uuid.UUID
	Year      int32
	Weeks     int32
	CreatedAt time.Time
}

type Player struct {
	ID        uuid.UUID
	FullName  string
	Position  string
	Rating    int32
	TeamID    uuid.NullUUID
	CreatedAt time.Time
}

type PlayerAttribute struct {
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
