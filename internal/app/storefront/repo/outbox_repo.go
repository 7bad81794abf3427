package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_outbox.InsertMutation(e.EventID, e.EventType, e.AggregateID, e.PayloadJSON, e.Status, e.CreatedAtUTC)
}

func (r *OutboxRepo) MarkProcessedMut(eventID string, at time.Time) *spanner.Mutation {
	if eventID == "" {
		return nil
	}
	return m_outbox.StatusMutation(eventID, contracts.OutboxStatusProcessed, at.UTC())
}
