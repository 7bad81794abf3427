package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_cart"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_order"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/list_orders"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/list_products"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ    *get_product.SpannerGetProductQuery
	listQ   *list_products.SpannerListProductsQuery
	cartQ   *get_cart.SpannerGetCartQuery
	orderQ  *get_order.SpannerGetOrderQuery
	ordersQ *list_orders.SpannerListOrdersQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:    get_product.NewSpannerGetProductQuery(client),
		listQ:   list_products.NewSpannerListProductsQuery(client),
		cartQ:   get_cart.NewSpannerGetCartQuery(client),
		orderQ:  get_order.NewSpannerGetOrderQuery(client),
		ordersQ: list_orders.NewSpannerListOrdersQuery(client),
	}
}

func (rm *SpannerReadModel) CountProducts(ctx context.Context, filter contracts.ProductFilter) (int, error) {
	return rm.listQ.CountProducts(ctx, filter)
}

func (rm *SpannerReadModel) FindProducts(ctx context.Context, filter contracts.ProductFilter, offset, limit int) ([]*domain.Product, error) {
	return rm.listQ.FindProducts(ctx, filter, offset, limit)
}

func (rm *SpannerReadModel) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return rm.getQ.FindProductByID(ctx, productID)
}

func (rm *SpannerReadModel) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]*domain.Product, error) {
	return rm.getQ.FindProductsByIDs(ctx, productIDs)
}

func (rm *SpannerReadModel) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	return rm.cartQ.GetCart(ctx, userID)
}

func (rm *SpannerReadModel) FindOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return rm.ordersQ.FindOrders(ctx, userID)
}

func (rm *SpannerReadModel) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return rm.orderQ.FindOrderByID(ctx, orderID)
}

var _ contracts.ReadModel = (*SpannerReadModel)(nil)
