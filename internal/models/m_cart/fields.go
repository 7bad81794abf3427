package m_cart

// Field constants for the carts table. One row per user; entries is the
// JSON-encoded ordered entry list.
const (
	TableName = "carts"

	ColUserID    = "user_id"
	ColEntries   = "entries"
	ColUpdatedAt = "updated_at"
)
