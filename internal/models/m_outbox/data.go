package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

var insertColumns = []string{ColEventID, ColEventType, ColAggregateID, ColPayload, ColStatus, ColCreatedAt}

// Row is the scanned shape of one outbox row.
type Row struct {
	EventID     string           `spanner:"event_id"`
	EventType   string           `spanner:"event_type"`
	AggregateID string           `spanner:"aggregate_id"`
	Payload     string           `spanner:"payload"`
	Status      string           `spanner:"status"`
	CreatedAt   time.Time        `spanner:"created_at"`
	ProcessedAt spanner.NullTime `spanner:"processed_at"`
}

// InsertMutation builds the outbox row insert. processed_at is left NULL.
func InsertMutation(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName, insertColumns,
		[]interface{}{eventID, eventType, aggregateID, payload, status, createdAt})
}

// StatusMutation moves a row to status and stamps processed_at.
func StatusMutation(eventID, status string, processedAt time.Time) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{ColEventID, ColStatus, ColProcessedAt},
		[]interface{}{eventID, status, processedAt},
	)
}

const selectColumns = "event_id, event_type, aggregate_id, payload, status, created_at, processed_at"

// ByAggregateStatement selects every row announced for aggregateID in write order.
func ByAggregateStatement(aggregateID string) spanner.Statement {
	return spanner.Statement{
		SQL: `SELECT ` + selectColumns + `
		FROM outbox_events
		WHERE aggregate_id = @id
		ORDER BY created_at, event_id`,
		Params: map[string]interface{}{"id": aggregateID},
	}
}

// ByStatusStatement selects up to limit rows in status, oldest first. It is
// served by the outbox_by_status index.
func ByStatusStatement(status string, limit int) spanner.Statement {
	return spanner.Statement{
		SQL: `SELECT ` + selectColumns + `
		FROM outbox_events@{FORCE_INDEX=outbox_by_status}
		WHERE status = @status
		ORDER BY created_at, event_id
		LIMIT @limit`,
		Params: map[string]interface{}{"status": status, "limit": int64(limit)},
	}
}
