package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

type Game struct {
	ID         uuid.UUID
	SeasonID   uuid.UUID
	Week       int32
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	HomeScore  int32
	AwayScore  int32
	Played     bool
	Status     string
	GameDate   sql.NullTime
	Analytics  pqtype.NullRawMessage
	CreatedAt  time.Time
}
