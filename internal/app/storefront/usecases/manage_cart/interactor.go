package manage_cart

import (
	"context"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

// Request identifies the cart owner and, for add and remove, the product.
type Request struct {
	UserID    string
	ProductID string
}

// Interactor mutates the per-user cart document. Each call loads the whole
// cart, changes it through the aggregate and writes the whole cart back.
// Product existence is not checked here.
type Interactor struct {
	CartRepo  contracts.CartRepo
	Committer contracts.Committer
	ReadModel contracts.ReadModel
	Clock     clock.Clock
}

func NewInteractor(cartRepo contracts.CartRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		CartRepo:  cartRepo,
		Committer: committer,
		ReadModel: readModel,
		Clock:     clk,
	}
}

// AddToCart increments the quantity of req.ProductID, creating the entry at 1.
func (it *Interactor) AddToCart(ctx context.Context, req Request) error {
	return it.mutate(ctx, req.UserID, "add to cart", func(c *domain.Cart) (bool, error) {
		return true, c.Add(req.ProductID, it.Clock.Now())
	})
}

// RemoveFromCart deletes the entry for req.ProductID. Removing an absent
// entry succeeds without a write.
func (it *Interactor) RemoveFromCart(ctx context.Context, req Request) error {
	return it.mutate(ctx, req.UserID, "remove from cart", func(c *domain.Cart) (bool, error) {
		return c.Remove(req.ProductID, it.Clock.Now()), nil
	})
}

// ResetCart empties the cart.
func (it *Interactor) ResetCart(ctx context.Context, req Request) error {
	return it.mutate(ctx, req.UserID, "reset cart", func(c *domain.Cart) (bool, error) {
		c.Reset(it.Clock.Now())
		return true, nil
	})
}

func (it *Interactor) mutate(ctx context.Context, userID, op string, change func(*domain.Cart) (bool, error)) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}

	// 1. Load the cart document
	cart, err := it.ReadModel.GetCart(ctx, userID)
	if err != nil {
		return domain.NewPersistenceError(op, err)
	}

	// 2. Domain mutation
	changed, err := change(cart)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	// 3. Whole-document write
	mut, err := it.CartRepo.SaveMut(cart)
	if err != nil {
		return domain.NewPersistenceError(op, err)
	}
	plan := commitplan.NewPlan()
	plan.Add(mut)

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return domain.NewPersistenceError(op, err)
	}
	return nil
}
