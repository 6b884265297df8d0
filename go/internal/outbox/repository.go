package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/outbox/db"
	"github.com/sqlc-dev/pqtype"
)

type Repository struct {
	queries *db.Queries
}

func NewRepository(queries *db.Queries) *Repository {
	return &Repository{
		queries: queries,
	}
}

// InsertEvent enqueues an event. Game finalization writes its event inside
// its own transaction; this path exists for out-of-band producers.
func (r *Repository) InsertEvent(ctx context.Context, gameID uuid.UUID, eventType string, payload []byte) error {
	err := r.queries.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:        uuid.New(),
		GameID:    gameID,
		EventType: eventType,
		Payload:   pqtype.NullRawMessage{RawMessage: payload, Valid: payload != nil},
	})
	if err != nil {
		return fmt.Errorf("failed to insert %s outbox event: %w", eventType, err)
	}
	return nil
}

func (r *Repository) FetchUnsent(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	rows, err := r.queries.FetchUnsentOutbox(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	events := make([]OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = rowToEvent(row)
	}

	return events, nil
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	row, err := r.queries.FetchOutboxByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("outbox event not found or already sent")
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}

	event := rowToEvent(row)
	return &event, nil
}

func (r *Repository) MarkSent(ctx context.Context, ids []uuid.UUID) error {
	if err := r.queries.MarkOutboxSent(ctx, ids); err != nil {
		return fmt.Errorf("failed to mark outbox events as sent: %w", err)
	}
	return nil
}

func rowToEvent(row db.GameOutbox) OutboxEvent {
	var payload []byte
	if row.Payload.Valid {
		payload = row.Payload.RawMessage
	}
	return OutboxEvent{
		ID:        row.ID,
		GameID:    row.GameID,
		EventType: row.EventType,
		Payload:   payload,
	}
}
