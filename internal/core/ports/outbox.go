package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is an event stored next to the data it describes, waiting to
// be delivered to the broker.
type OutboxMessage struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// Outbox is the relay side of a transactional outbox.
type Outbox interface {
	// FetchPending returns up to limit undelivered messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, id uuid.UUID) error
}

// MessageWriter delivers an already encoded payload to a topic.
type MessageWriter interface {
	Write(ctx context.Context, topic, key string, payload []byte) error
}
