package get_product

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/models/m_product"
)

// SpannerGetProductQuery reads single products and product sets from Spanner.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

func (q *SpannerGetProductQuery) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + m_product.SelectColumns + ` FROM products WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return ProductFromRow(row)
}

// FindProductsByIDs returns the subset of ids that still exist.
func (q *SpannerGetProductQuery) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]*domain.Product, error) {
	out := make(map[string]*domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	stmt := spanner.Statement{
		SQL:    `SELECT ` + m_product.SelectColumns + ` FROM products WHERE product_id IN UNNEST(@ids)`,
		Params: map[string]interface{}{"ids": productIDs},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		p, err := ProductFromRow(row)
		if err != nil {
			return nil, err
		}
		out[p.ID()] = p
	}
}

// ProductFromRow scans a row selected with m_product.SelectColumns.
func ProductFromRow(row *spanner.Row) (*domain.Product, error) {
	var (
		id, ownerID, name    string
		description, image   spanner.NullString
		priceCents           int64
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&id, &ownerID, &name, &description, &priceCents, &image, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return domain.ReconstructProduct(id, ownerID, name, description.StringVal,
		domain.Cents(priceCents), image.StringVal, createdAt.UTC(), updatedAt.UTC()), nil
}
