package outbox

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is a pending event row waiting to be relayed to the broker.
type OutboxEvent struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	EventType string
	Payload   []byte
	CreatedAt time.Time
	SentAt    *time.Time
}

// EventPublisher relays outbox events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}
