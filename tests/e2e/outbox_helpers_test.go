package e2e

import (
	"context"
	"encoding/json"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-service/internal/models/m_outbox"
)

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, client *spanner.Client, aggregateID string) []m_outbox.Row {
	t.Helper()
	rows, err := fetchOutboxEvents(ctx, client, aggregateID)
	require.NoError(t, err)
	return rows
}

func fetchOutboxEvents(ctx context.Context, client *spanner.Client, aggregateID string) ([]m_outbox.Row, error) {
	iter := client.Single().Query(ctx, m_outbox.ByAggregateStatement(aggregateID))
	defer iter.Stop()

	out := make([]m_outbox.Row, 0)
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
			return nil, err
		}
		out = append(out, r)
	}
}

// payloadOf decodes an outbox payload; numbers come back as float64.
func payloadOf(t *testing.T, r m_outbox.Row) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(r.Payload), &out))
	return out
}
