package list_products

import (
	"context"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/dto"
)

// Request selects a catalog page. OwnerID restricts the listing to one
// administrator's products; Page is the raw requested page number.
type Request struct {
	OwnerID string
	Page    string
}

type Handler struct {
	readModel contracts.ReadModel
	pageSize  int
}

// NewHandler builds the handler. A non-positive pageSize falls back to
// domain.ItemsPerPage.
func NewHandler(r contracts.ReadModel, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = domain.ItemsPerPage
	}
	return &Handler{readModel: r, pageSize: pageSize}
}

func (h *Handler) Execute(ctx context.Context, req Request) (*dto.ProductPageDTO, error) {
	filter := contracts.ProductFilter{OwnerID: req.OwnerID}

	total, err := h.readModel.CountProducts(ctx, filter)
	if err != nil {
		return nil, domain.NewPersistenceError("count products", err)
	}

	page := domain.PaginateRaw(total, req.Page, h.pageSize)

	products, err := h.readModel.FindProducts(ctx, filter, page.Offset, page.Limit())
	if err != nil {
		return nil, domain.NewPersistenceError("list products", err)
	}

	out := &dto.ProductPageDTO{
		Products:        make([]*dto.ProductDTO, 0, len(products)),
		CurrentPage:     page.Number,
		LastPage:        page.LastPage,
		TotalItems:      page.TotalItems,
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
		NextPage:        page.NextPage(),
		PreviousPage:    page.PreviousPage(),
	}
	for _, p := range products {
		out.Products = append(out.Products, dto.FromProduct(p))
	}
	return out, nil
}
