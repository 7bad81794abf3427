package get_order

import (
	"context"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns the order when userID placed it.
func (h *Handler) Execute(ctx context.Context, userID, orderID string) (*dto.OrderDTO, error) {
	o, err := h.readModel.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, domain.NewPersistenceError("get order", err)
	}
	if !o.PlacedBy(userID) {
		return nil, domain.ErrNotOrderOwner
	}
	return dto.FromOrder(o), nil
}
