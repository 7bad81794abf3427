package storefront

import (
	"strings"

	"github.com/murkotick/storefront-service/internal/app/storefront/dto"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/create_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/update_product"
)

func mapCreateProductRequest(ownerID string, req *CreateProductRequest) create_product.Request {
	return create_product.Request{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       strings.TrimSpace(req.Price),
		ImageURL:    req.ImageURL,
	}
}

func mapUpdateProductRequest(actorID string, req *UpdateProductRequest) update_product.Request {
	return update_product.Request{
		ActorID:     actorID,
		ProductID:   strings.TrimSpace(req.ProductID),
		Name:        req.Name,
		Description: req.Description,
		Price:       strings.TrimSpace(req.Price),
		ImageURL:    req.ImageURL,
	}
}

func mapProduct(p *dto.ProductDTO) *Product {
	return &Product{
		ProductID:   p.ProductID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PriceCents:  p.PriceCents,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func mapProductPage(page *dto.ProductPageDTO) *ListProductsReply {
	out := &ListProductsReply{
		Products:        make([]*Product, 0, len(page.Products)),
		CurrentPage:     page.CurrentPage,
		LastPage:        page.LastPage,
		TotalItems:      page.TotalItems,
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
		NextPage:        page.NextPage,
		PreviousPage:    page.PreviousPage,
	}
	for _, p := range page.Products {
		out.Products = append(out.Products, mapProduct(p))
	}
	return out
}

func mapCart(c *dto.CartDTO) *GetCartReply {
	out := &GetCartReply{
		Lines:      make([]*CartLine, 0, len(c.Lines)),
		Total:      c.Total,
		TotalCents: c.TotalCents,
	}
	for _, l := range c.Lines {
		out.Lines = append(out.Lines, &CartLine{
			ProductID:  l.ProductID,
			Name:       l.Name,
			ImageURL:   l.ImageURL,
			UnitPrice:  l.UnitPrice,
			PriceCents: l.UnitPriceCents,
			Quantity:   l.Quantity,
			Available:  l.Available,
		})
	}
	return out
}

func mapOrder(o *dto.OrderDTO) *Order {
	out := &Order{
		OrderID:    o.OrderID,
		Items:      make([]*OrderItem, 0, len(o.Items)),
		Total:      o.Total,
		TotalCents: o.TotalCents,
		CreatedAt:  o.CreatedAt,
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, &OrderItem{
			ProductID:      it.ProductID,
			Name:           it.Name,
			UnitPrice:      it.UnitPrice,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		})
	}
	return out
}
