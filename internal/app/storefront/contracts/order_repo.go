package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

// OrderRepo is the write side of the append-only order log.
type OrderRepo interface {
	// InsertMuts returns the order row followed by one row per line item.
	InsertMuts(o *domain.Order) []*spanner.Mutation
}

// OrderReader loads persisted orders.
type OrderReader interface {
	// FindOrders returns the user's orders, newest first.
	FindOrders(ctx context.Context, userID string) ([]*domain.Order, error)

	// FindOrderByID returns domain.ErrOrderNotFound when absent.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
}
