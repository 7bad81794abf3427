package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
)

// Outbox row states. A row is pending until the relay has published it.
const (
	OutboxStatusPending   = "pending"
	OutboxStatusProcessed = "processed"
)

// OutboxRepo is the write-side repository for the transactional outbox.
// It returns Spanner mutations; it does not apply them.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation

	// MarkProcessedMut flips a pending row to processed and stamps processed_at.
	MarkProcessedMut(eventID string, at time.Time) *spanner.Mutation
}

// OutboxSource is the relay's read side: pending rows, oldest first.
type OutboxSource interface {
	FindPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
}

// EventPublisher hands outbox events to the message bus. Delivery is
// at-least-once; consumers deduplicate on EventID.
type EventPublisher interface {
	Publish(ctx context.Context, events []OutboxEvent) error
}

// OutboxEvent is a domain event enriched for persistence in the outbox table.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
