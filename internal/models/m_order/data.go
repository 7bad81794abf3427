package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation inserts an order header row.
func InsertMutation(orderID, userID string, totalCents int64, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColOrderID, ColUserID, ColTotalCents, ColCreatedAt},
		[]interface{}{orderID, userID, totalCents, createdAt},
	)
}

// InsertItemMutation inserts one line item. position keeps snapshot order.
func InsertItemMutation(orderID string, position int64, productID, name string, unitPriceCents, quantity int64) *spanner.Mutation {
	return spanner.Insert(ItemsTableName,
		[]string{ColItemOrderID, ColItemPosition, ColItemProductID, ColItemName, ColItemUnitPriceCents, ColItemQuantity},
		[]interface{}{orderID, position, productID, name, unitPriceCents, quantity},
	)
}
