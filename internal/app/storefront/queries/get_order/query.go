package get_order

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

// SpannerGetOrderQuery reads orders together with their line items.
type SpannerGetOrderQuery struct {
	Client *spanner.Client
}

func NewSpannerGetOrderQuery(client *spanner.Client) *SpannerGetOrderQuery {
	return &SpannerGetOrderQuery{Client: client}
}

// Header is an order row before its items are attached.
type Header struct {
	OrderID    string
	UserID     string
	TotalCents int64
	CreatedAt  time.Time
}

// Query is the read side of a Spanner transaction.
type Query interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

func (q *SpannerGetOrderQuery) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	headers, err := ReadHeaders(ctx, tx, spanner.Statement{
		SQL:    `SELECT order_id, user_id, total_cents, created_at FROM orders WHERE order_id = @id`,
		Params: map[string]interface{}{"id": orderID},
	})
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, domain.ErrOrderNotFound
	}

	orders, err := AttachItems(ctx, tx, headers)
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

// ReadHeaders runs stmt, which must select order_id, user_id, total_cents and
// created_at, and returns the rows in result order.
func ReadHeaders(ctx context.Context, tx Query, stmt spanner.Statement) ([]Header, error) {
	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	var out []Header
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var h Header
		if err := row.Columns(&h.OrderID, &h.UserID, &h.TotalCents, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, h)
	}
}

// AttachItems loads the line items of every header in one query and builds
// the orders, preserving header order and item position.
func AttachItems(ctx context.Context, tx Query, headers []Header) ([]*domain.Order, error) {
	if len(headers) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(headers))
	for _, h := range headers {
		ids = append(ids, h.OrderID)
	}

	iter := tx.Query(ctx, spanner.Statement{
		SQL: `SELECT order_id, product_id, name, unit_price_cents, quantity
		      FROM order_items
		      WHERE order_id IN UNNEST(@ids)
		      ORDER BY order_id, position`,
		Params: map[string]interface{}{"ids": ids},
	})
	defer iter.Stop()

	items := make(map[string][]domain.LineItem, len(headers))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var (
			orderID, productID, name string
			unitPrice, quantity      int64
		)
		if err := row.Columns(&orderID, &productID, &name, &unitPrice, &quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items[orderID] = append(items[orderID], domain.LineItem{
			ProductID: productID,
			Name:      name,
			UnitPrice: domain.Cents(unitPrice),
			Quantity:  int(quantity),
		})
	}

	out := make([]*domain.Order, 0, len(headers))
	for _, h := range headers {
		out = append(out, domain.ReconstructOrder(h.OrderID, h.UserID, items[h.OrderID],
			domain.Cents(h.TotalCents), h.CreatedAt.UTC()))
	}
	return out, nil
}
