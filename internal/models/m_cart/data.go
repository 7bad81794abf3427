package m_cart

import (
	"time"

	"cloud.google.com/go/spanner"
)

// SaveMutation replaces the cart document for userID.
func SaveMutation(userID, entriesJSON string, updatedAt time.Time) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName,
		[]string{ColUserID, ColEntries, ColUpdatedAt},
		[]interface{}{userID, entriesJSON, updatedAt},
	)
}

// Key is the primary key of userID's cart row.
func Key(userID string) spanner.Key {
	return spanner.Key{userID}
}
