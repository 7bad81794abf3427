package pending_outbox

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/models/m_outbox"
)

// SpannerPendingOutboxQuery feeds the outbox relay.
type SpannerPendingOutboxQuery struct {
	Client *spanner.Client
}

func NewSpannerPendingOutboxQuery(client *spanner.Client) *SpannerPendingOutboxQuery {
	return &SpannerPendingOutboxQuery{Client: client}
}

// FindPendingEvents returns up to limit pending rows, oldest first.
func (q *SpannerPendingOutboxQuery) FindPendingEvents(ctx context.Context, limit int) ([]contracts.OutboxEvent, error) {
	if limit <= 0 {
		return nil, nil
	}

	iter := q.Client.Single().Query(ctx, m_outbox.ByStatusStatement(contracts.OutboxStatusPending, limit))
	defer iter.Stop()

	out := make([]contracts.OutboxEvent, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var r m_outbox.Row
		if err := row.ToStruct(&r); err != nil {
			return nil, fmt.Errorf("scan outbox row: %w", err)
		}
		out = append(out, contracts.OutboxEvent{
			EventID:      r.EventID,
			EventType:    r.EventType,
			AggregateID:  r.AggregateID,
			PayloadJSON:  r.Payload,
			Status:       r.Status,
			CreatedAtUTC: r.CreatedAt,
		})
	}
}

var _ contracts.OutboxSource = (*SpannerPendingOutboxQuery)(nil)
