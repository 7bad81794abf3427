package services

import (
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

// CheckoutPricer is a domain service that prices a cart against the catalog.
// It sits outside both aggregates because it needs the cart and the products.
type CheckoutPricer struct{}

func NewCheckoutPricer() *CheckoutPricer {
	return &CheckoutPricer{}
}

// Snapshot builds order line items from the cart, in cart order, using the
// current catalog name and price. Entries whose product is absent from
// catalog are returned in missing and produce no line item.
func (cp *CheckoutPricer) Snapshot(cart *domain.Cart, catalog map[string]*domain.Product) (items []domain.LineItem, missing []string) {
	entries := cart.Entries()
	items = make([]domain.LineItem, 0, len(entries))
	for _, e := range entries {
		p, ok := catalog[e.ProductID]
		if !ok || p == nil {
			missing = append(missing, e.ProductID)
			continue
		}
		items = append(items, domain.LineItem{
			ProductID: p.ID(),
			Name:      p.Name(),
			UnitPrice: p.Price(),
			Quantity:  e.Quantity,
		})
	}
	return items, missing
}

// DisplayTotal sums price*quantity over the cart entries that still resolve.
// The result is informational only; orders compute their own total.
func (cp *CheckoutPricer) DisplayTotal(cart *domain.Cart, catalog map[string]*domain.Product) (domain.Cents, error) {
	total := domain.Cents(0)
	for _, e := range cart.Entries() {
		p, ok := catalog[e.ProductID]
		if !ok || p == nil {
			continue
		}
		sub, err := p.Price().Mul(e.Quantity)
		if err != nil {
			return 0, err
		}
		if total, err = total.Add(sub); err != nil {
			return 0, err
		}
	}
	return total, nil
}
