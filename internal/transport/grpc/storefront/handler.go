package storefront

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/storefront-service/internal/app/storefront/dto"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_cart"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_order"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/list_orders"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/list_products"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/checkout"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/create_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/delete_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/manage_cart"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/render_invoice"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/update_product"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Create   *create_product.Interactor
	Update   *update_product.Interactor
	Delete   *delete_product.Interactor
	Cart     *manage_cart.Interactor
	Checkout *checkout.Interactor
	Invoice  *render_invoice.Interactor
}

// Queries groups read handlers.
type Queries struct {
	GetProduct   *get_product.Handler
	ListProducts *list_products.Handler
	GetCart      *get_cart.Handler
	ListOrders   *list_orders.Handler
	GetOrder     *get_order.Handler
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps wire messages <-> application DTOs and delegates to CQRS handlers.
type Handler struct {
	commands Commands
	queries  Queries
	logger   *zap.Logger
}

func NewHandler(cmd Commands, qry Queries, logger *zap.Logger) *Handler {
	return &Handler{commands: cmd, queries: qry, logger: logger}
}

func invalid(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}

func (h *Handler) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsReply, error) {
	page, err := h.queries.ListProducts.Execute(ctx, list_products.Request{Page: req.Page})
	if err != nil {
		return nil, h.fail("ListProducts", err)
	}
	return mapProductPage(page), nil
}

// ListAdminProducts pages through the products created by the caller.
func (h *Handler) ListAdminProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsReply, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	page, err := h.queries.ListProducts.Execute(ctx, list_products.Request{OwnerID: actor, Page: req.Page})
	if err != nil {
		return nil, h.fail("ListAdminProducts", err)
	}
	return mapProductPage(page), nil
}

func (h *Handler) GetProduct(ctx context.Context, req *GetProductRequest) (*GetProductReply, error) {
	if err := validateGetProduct(req); err != nil {
		return nil, invalid(err)
	}
	p, err := h.queries.GetProduct.Execute(ctx, req.ProductID)
	if err != nil {
		return nil, h.fail("GetProduct", err)
	}
	return &GetProductReply{Product: mapProduct(p)}, nil
}

func (h *Handler) CreateProduct(ctx context.Context, req *CreateProductRequest) (*CreateProductReply, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := h.commands.Create.Execute(ctx, mapCreateProductRequest(actor, req))
	if err != nil {
		return nil, h.fail("CreateProduct", err)
	}
	return &CreateProductReply{ProductID: id}, nil
}

func (h *Handler) UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateUpdateProduct(req); err != nil {
		return nil, invalid(err)
	}
	if err := h.commands.Update.Execute(ctx, mapUpdateProductRequest(actor, req)); err != nil {
		return nil, h.fail("UpdateProduct", err)
	}
	return &Empty{}, nil
}

func (h *Handler) DeleteProduct(ctx context.Context, req *DeleteProductRequest) (*Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateDeleteProduct(req); err != nil {
		return nil, invalid(err)
	}
	if err := h.commands.Delete.Execute(ctx, delete_product.Request{ActorID: actor, ProductID: req.ProductID}); err != nil {
		return nil, h.fail("DeleteProduct", err)
	}
	return &Empty{}, nil
}

func (h *Handler) AddToCart(ctx context.Context, req *CartItemRequest) (*Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCartItem(req); err != nil {
		return nil, invalid(err)
	}
	if err := h.commands.Cart.AddToCart(ctx, manage_cart.Request{UserID: actor, ProductID: req.ProductID}); err != nil {
		return nil, h.fail("AddToCart", err)
	}
	return &Empty{}, nil
}

func (h *Handler) RemoveFromCart(ctx context.Context, req *CartItemRequest) (*Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateCartItem(req); err != nil {
		return nil, invalid(err)
	}
	if err := h.commands.Cart.RemoveFromCart(ctx, manage_cart.Request{UserID: actor, ProductID: req.ProductID}); err != nil {
		return nil, h.fail("RemoveFromCart", err)
	}
	return &Empty{}, nil
}

func (h *Handler) ResetCart(ctx context.Context, _ *Empty) (*Empty, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.commands.Cart.ResetCart(ctx, manage_cart.Request{UserID: actor}); err != nil {
		return nil, h.fail("ResetCart", err)
	}
	return &Empty{}, nil
}

func (h *Handler) GetCart(ctx context.Context, _ *Empty) (*GetCartReply, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	cart, err := h.queries.GetCart.Execute(ctx, actor)
	if err != nil {
		return nil, h.fail("GetCart", err)
	}
	return mapCart(cart), nil
}

func (h *Handler) Checkout(ctx context.Context, _ *Empty) (*CheckoutReply, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	order, err := h.commands.Checkout.Execute(ctx, checkout.Request{UserID: actor})
	if err != nil {
		return nil, h.fail("Checkout", err)
	}
	return &CheckoutReply{Order: mapOrder(dto.FromOrder(order))}, nil
}

func (h *Handler) ListOrders(ctx context.Context, _ *Empty) (*ListOrdersReply, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := h.queries.ListOrders.Execute(ctx, actor)
	if err != nil {
		return nil, h.fail("ListOrders", err)
	}
	out := &ListOrdersReply{Orders: make([]*Order, 0, len(orders))}
	for _, o := range orders {
		out.Orders = append(out.Orders, mapOrder(o))
	}
	return out, nil
}

func (h *Handler) GetOrder(ctx context.Context, req *GetOrderRequest) (*GetOrderReply, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateGetOrder(req); err != nil {
		return nil, invalid(err)
	}
	o, err := h.queries.GetOrder.Execute(ctx, actor, req.OrderID)
	if err != nil {
		return nil, h.fail("GetOrder", err)
	}
	return &GetOrderReply{Order: mapOrder(o)}, nil
}

// GetInvoice streams the rendered invoice. The document is sent only after
// the stored copy is committed.
func (h *Handler) GetInvoice(req *GetInvoiceRequest, stream InvoiceStream) error {
	ctx := stream.Context()
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	if err := validateGetInvoice(req); err != nil {
		return invalid(err)
	}
	sink := newStreamSink(stream, req.OrderID)
	if err := h.commands.Invoice.Execute(ctx, render_invoice.Request{UserID: actor, OrderID: req.OrderID}, sink); err != nil {
		return h.fail("GetInvoice", err)
	}
	return nil
}

var _ StorefrontServer = (*Handler)(nil)
