package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"
)

type GameOutbox struct {
	ID        uuid.UUID
	GameID    uuid.UUID
	EventType string
	Payload   pqtype.NullRawMessage
	SentAt    sql.NullTime
	CreatedAt time.Time
}

const insertOutboxEvent = `
INSERT INTO game_outbox (id, game_id, event_type, payload)
VALUES ($1, $2, $3, $4)`

type InsertOutboxEventParams struct {
	ID        uuid.UUID
	GameID    uuid.UUID
	EventType string
	Payload   pqtype.NullRawMessage
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, arg InsertOutboxEventParams) error {
	_, err := q.db.ExecContext(ctx, insertOutboxEvent,
		arg.ID, arg.GameID, arg.EventType, arg.Payload)
	return err
}

const fetchUnsentOutbox = `
SELECT id, game_id, event_type, payload, sent_at, created_at
FROM game_outbox
WHERE sent_at IS NULL
ORDER BY created_at ASC
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) FetchUnsentOutbox(ctx context.Context, limit int32) ([]GameOutbox, error) {
	rows, err := q.db.QueryContext(ctx, fetchUnsentOutbox, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var events []GameOutbox
	for rows.Next() {
		var e GameOutbox
		if err := rows.Scan(&e.ID, &e.GameID, &e.EventType, &e.Payload,
			&e.SentAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

const fetchOutboxByID = `
SELECT id, game_id, event_type, payload, sent_at, created_at
FROM game_outbox
WHERE id = $1 AND sent_at IS NULL`

func (q *Queries) FetchOutboxByID(ctx context.Context, id uuid.UUID) (GameOutbox, error) {
	var e GameOutbox
	err := q.db.QueryRowContext(ctx, fetchOutboxByID, id).
		Scan(&e.ID, &e.GameID, &e.EventType, &e.Payload, &e.SentAt, &e.CreatedAt)
	return e, err
}

const markOutboxSent = `
UPDATE game_outbox SET sent_at = now() WHERE id = ANY($1::uuid[])`

func (q *Queries) MarkOutboxSent(ctx context.Context, ids []uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, markOutboxSent, pq.Array(ids))
	return err
}
