package get_cart

import (
	"context"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain/services"
	"github.com/murkotick/storefront-service/internal/app/storefront/dto"
)

// Handler joins the cart document with the live catalog.
type Handler struct {
	readModel contracts.ReadModel
	pricer    *services.CheckoutPricer
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r, pricer: services.NewCheckoutPricer()}
}

// Execute returns the user's cart in insertion order. Entries whose product
// was deleted are kept with Available=false and left out of the total.
func (h *Handler) Execute(ctx context.Context, userID string) (*dto.CartDTO, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	cart, err := h.readModel.GetCart(ctx, userID)
	if err != nil {
		return nil, domain.NewPersistenceError("get cart", err)
	}

	catalog, err := h.readModel.FindProductsByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, domain.NewPersistenceError("resolve cart products", err)
	}

	total, err := h.pricer.DisplayTotal(cart, catalog)
	if err != nil {
		return nil, err
	}

	out := &dto.CartDTO{
		UserID:     userID,
		Lines:      make([]*dto.CartLineDTO, 0, cart.Len()),
		Total:      total.String(),
		TotalCents: total.Int64(),
	}
	for _, e := range cart.Entries() {
		line := &dto.CartLineDTO{ProductID: e.ProductID, Quantity: e.Quantity}
		if p, ok := catalog[e.ProductID]; ok {
			line.Name = p.Name()
			line.ImageURL = p.ImageURL()
			line.UnitPrice = p.Price().String()
			line.UnitPriceCents = p.Price().Int64()
			line.Available = true
		}
		out.Lines = append(out.Lines, line)
	}
	return out, nil
}
