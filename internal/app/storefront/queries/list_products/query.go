package list_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/murkotick/storefront-service/internal/models/m_product"
)

// SpannerListProductsQuery counts and pages the catalog. Both statements are
// built from the same filter clause.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func where(filter contracts.ProductFilter, params map[string]interface{}) string {
	if filter.OwnerID == "" {
		return ""
	}
	params["owner"] = filter.OwnerID
	return " WHERE owner_id = @owner"
}

func (q *SpannerListProductsQuery) CountProducts(ctx context.Context, filter contracts.ProductFilter) (int, error) {
	params := map[string]interface{}{}
	stmt := spanner.Statement{
		SQL:    `SELECT COUNT(*) FROM products` + where(filter, params),
		Params: params,
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (q *SpannerListProductsQuery) FindProducts(ctx context.Context, filter contracts.ProductFilter, offset, limit int) ([]*domain.Product, error) {
	params := map[string]interface{}{
		"limit":  int64(limit),
		"offset": int64(offset),
	}
	sql := `SELECT ` + m_product.SelectColumns + ` FROM products` + where(filter, params) +
		` ORDER BY created_at ASC, product_id ASC LIMIT @limit OFFSET @offset`

	iter := q.Client.Single().Query(ctx, spanner.Statement{SQL: sql, Params: params})
	defer iter.Stop()

	out := make([]*domain.Product, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		p, err := get_product.ProductFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}
