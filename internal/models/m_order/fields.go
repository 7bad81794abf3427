package m_order

// Field constants for the orders table.
const (
	TableName = "orders"

	ColOrderID    = "order_id"
	ColUserID     = "user_id"
	ColTotalCents = "total_cents"
	ColCreatedAt  = "created_at"
)

// Field constants for the order_items table, interleaved in orders.
const (
	ItemsTableName = "order_items"

	ColItemOrderID        = "order_id"
	ColItemPosition       = "position"
	ColItemProductID      = "product_id"
	ColItemName           = "name"
	ColItemUnitPriceCents = "unit_price_cents"
	ColItemQuantity       = "quantity"
)
