package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

// ProductRepo is the write-side repository for catalog products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// InsertMut returns a mutation that inserts the product.
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns a mutation writing the product's dirty fields (or nil).
	UpdateMut(p *domain.Product) *spanner.Mutation

	// DeleteMut returns a mutation that removes the product row.
	DeleteMut(p *domain.Product) *spanner.Mutation
}

// ProductFilter narrows catalog queries. The zero value matches every product.
type ProductFilter struct {
	OwnerID string
}

// CatalogReader is the catalog read side. Count and Find take the same filter
// so pagination bounds and page contents always agree.
type CatalogReader interface {
	CountProducts(ctx context.Context, filter ProductFilter) (int, error)
	FindProducts(ctx context.Context, filter ProductFilter, offset, limit int) ([]*domain.Product, error)

	// FindProductByID returns domain.ErrProductNotFound when absent.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs returns the products that exist, keyed by id.
	// Missing ids are simply absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]*domain.Product, error)
}
