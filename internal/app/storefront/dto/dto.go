package dto

import (
	"time"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

// ProductDTO is the read shape of a catalog product. Price is the formatted
// two-decimal amount; PriceCents is the stored integer.
type ProductDTO struct {
	ProductID   string
	OwnerID     string
	Name        string
	Description string
	Price       string
	PriceCents  int64
	ImageURL    string
	CreatedAt   string
	UpdatedAt   string
}

// ProductPageDTO is one catalog page with its navigation state.
type ProductPageDTO struct {
	Products        []*ProductDTO
	CurrentPage     int
	LastPage        int
	TotalItems      int
	HasNextPage     bool
	HasPreviousPage bool
	NextPage        int
	PreviousPage    int
}

// CartLineDTO is a cart entry joined with live catalog data. Unavailable
// lines reference a product that no longer exists and carry no price.
type CartLineDTO struct {
	ProductID      string
	Name           string
	ImageURL       string
	UnitPrice      string
	UnitPriceCents int64
	Quantity       int
	Available      bool
}

// CartDTO is the display view of a cart. Total is informational; checkout
// recomputes it from the line items it snapshots.
type CartDTO struct {
	UserID     string
	Lines      []*CartLineDTO
	Total      string
	TotalCents int64
}

type OrderItemDTO struct {
	ProductID      string
	Name           string
	UnitPrice      string
	UnitPriceCents int64
	Quantity       int
}

type OrderDTO struct {
	OrderID    string
	UserID     string
	Items      []*OrderItemDTO
	Total      string
	TotalCents int64
	CreatedAt  string
}

// FromProduct maps a product aggregate to its read shape.
func FromProduct(p *domain.Product) *ProductDTO {
	return &ProductDTO{
		ProductID:   p.ID(),
		OwnerID:     p.OwnerID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().String(),
		PriceCents:  p.Price().Int64(),
		ImageURL:    p.ImageURL(),
		CreatedAt:   formatTime(p.CreatedAt()),
		UpdatedAt:   formatTime(p.UpdatedAt()),
	}
}

// FromOrder maps an order to its read shape, keeping snapshot item order.
func FromOrder(o *domain.Order) *OrderDTO {
	items := o.Items()
	out := &OrderDTO{
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		Items:      make([]*OrderItemDTO, 0, len(items)),
		Total:      o.Total().String(),
		TotalCents: o.Total().Int64(),
		CreatedAt:  formatTime(o.CreatedAt()),
	}
	for _, it := range items {
		out.Items = append(out.Items, &OrderItemDTO{
			ProductID:      it.ProductID,
			Name:           it.Name,
			UnitPrice:      it.UnitPrice.String(),
			UnitPriceCents: it.UnitPrice.Int64(),
			Quantity:       it.Quantity,
		})
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
