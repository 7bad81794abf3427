package list_orders

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_order"
)

type SpannerListOrdersQuery struct {
	Client *spanner.Client
}

func NewSpannerListOrdersQuery(client *spanner.Client) *SpannerListOrdersQuery {
	return &SpannerListOrdersQuery{Client: client}
}

// FindOrders returns the user's orders newest first, with their items, read
// from one snapshot.
func (q *SpannerListOrdersQuery) FindOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	headers, err := get_order.ReadHeaders(ctx, tx, spanner.Statement{
		SQL: `SELECT order_id, user_id, total_cents, created_at
		      FROM orders
		      WHERE user_id = @user
		      ORDER BY created_at DESC, order_id DESC`,
		Params: map[string]interface{}{"user": userID},
	})
	if err != nil {
		return nil, err
	}
	return get_order.AttachItems(ctx, tx, headers)
}
