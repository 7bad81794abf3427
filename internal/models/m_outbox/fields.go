package m_outbox

// Field constants for the outbox_events table. A row is written in the same
// commit as the change it announces; processed_at stays NULL until a relay
// publishes it.
const (
	TableName = "outbox_events"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)
