package storefront

// Wire messages of storefront.v1.StorefrontService. Money travels both as the
// formatted two-decimal string and as integer cents.

type Product struct {
	ProductID   string `json:"product_id"`
	OwnerID     string `json:"owner_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	PriceCents  int64  `json:"price_cents"`
	ImageURL    string `json:"image_url"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type ListProductsRequest struct {
	// Page is the raw page number; anything unparsable means page 1.
	Page string `json:"page,omitempty"`
}

type ListProductsReply struct {
	Products        []*Product `json:"products"`
	CurrentPage     int        `json:"current_page"`
	LastPage        int        `json:"last_page"`
	TotalItems      int        `json:"total_items"`
	HasNextPage     bool       `json:"has_next_page"`
	HasPreviousPage bool       `json:"has_previous_page"`
	NextPage        int        `json:"next_page"`
	PreviousPage    int        `json:"previous_page"`
}

type GetProductRequest struct {
	ProductID string `json:"product_id"`
}

type GetProductReply struct {
	Product *Product `json:"product"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

type CreateProductReply struct {
	ProductID string `json:"product_id"`
}

type UpdateProductRequest struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	// ImageURL replaces the image when set.
	ImageURL string `json:"image_url,omitempty"`
}

type DeleteProductRequest struct {
	ProductID string `json:"product_id"`
}

type CartItemRequest struct {
	ProductID string `json:"product_id"`
}

type Empty struct{}

type CartLine struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	UnitPrice  string `json:"unit_price,omitempty"`
	PriceCents int64  `json:"unit_price_cents,omitempty"`
	Quantity   int    `json:"quantity"`
	Available  bool   `json:"available"`
}

type GetCartReply struct {
	Lines      []*CartLine `json:"lines"`
	Total      string      `json:"total"`
	TotalCents int64       `json:"total_cents"`
}

type OrderItem struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPrice      string `json:"unit_price"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type Order struct {
	OrderID    string       `json:"order_id"`
	Items      []*OrderItem `json:"items"`
	Total      string       `json:"total"`
	TotalCents int64        `json:"total_cents"`
	CreatedAt  string       `json:"created_at"`
}

type CheckoutReply struct {
	Order *Order `json:"order"`
}

type ListOrdersReply struct {
	Orders []*Order `json:"orders"`
}

type GetOrderRequest struct {
	OrderID string `json:"order_id"`
}

type GetOrderReply struct {
	Order *Order `json:"order"`
}

type GetInvoiceRequest struct {
	OrderID string `json:"order_id"`
}

// InvoiceChunk is one piece of a streamed invoice. Name and ContentType are
// set on the first chunk only.
type InvoiceChunk struct {
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data"`
}
