package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

// CartRepo is the write side of the per-user cart document.
type CartRepo interface {
	// SaveMut writes the whole cart document. Concurrent writers race and the
	// last commit wins; there is no version check.
	SaveMut(c *domain.Cart) (*spanner.Mutation, error)

	// UnchangedGuard fails with domain.ErrCartChanged when the stored cart no
	// longer carries c's UpdatedAt at commit time.
	UnchangedGuard(c *domain.Cart) commitplan.Guard
}

// CartReader loads cart documents. A user without a stored cart gets an
// empty cart, not an error.
type CartReader interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
}
