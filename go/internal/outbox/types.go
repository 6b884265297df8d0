package outbox

import (
	"context"

	"github.com/google/uuid"
)

// OutboxEvent is one row of the game outbox queue in transport form.
type OutboxEvent struct {
	ID        uuid.UUID
	GameID    uuid.UUID
	EventType string
	Payload   []byte
}

// Publisher delivers outbox events to the message bus.
type Publisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}
