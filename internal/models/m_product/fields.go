package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID   = "product_id"
	ColOwnerID     = "owner_id"
	ColName        = "name"
	ColDescription = "description"
	ColPriceCents  = "price_cents"
	ColImageURL    = "image_url"
	ColCreatedAt   = "created_at"
	ColUpdatedAt   = "updated_at"
)

// SelectColumns is the column list read queries scan, in scan order.
const SelectColumns = "product_id, owner_id, name, description, price_cents, image_url, created_at, updated_at"
