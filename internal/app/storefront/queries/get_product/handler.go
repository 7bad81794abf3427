package get_product

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

func (h *Handler) Execute(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	p, err := h.readModel.FindProductByID(ctx, productID)
	if err != nil {
		return nil, domain.NewPersistenceError("get product", err)
	}
	return dto.FromProduct(p), nil
}
