package list_orders

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

func (h *Handler) Execute(ctx context.Context, userID string) ([]*dto.OrderDTO, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	orders, err := h.readModel.FindOrders(ctx, userID)
	if err != nil {
		return nil, domain.NewPersistenceError("list orders", err)
	}
	out := make([]*dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.FromOrder(o))
	}
	return out, nil
}
