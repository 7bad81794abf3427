package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain/services"
	shared "github.com/murkotick/storefront-service/internal/app/storefront/usecases/shared"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

type Request struct {
	UserID string
}

// Interactor converts the user's cart into an order. The order rows, the
// cleared cart and the order.placed outbox row commit together, guarded by
// the cart's updated_at as read at the start of the checkout.
type Interactor struct {
	OrderRepo  contracts.OrderRepo
	CartRepo   contracts.CartRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	ReadModel  contracts.ReadModel
	Pricer     *services.CheckoutPricer
	Clock      clock.Clock
	Logger     *zap.Logger
}

func NewInteractor(orderRepo contracts.OrderRepo, cartRepo contracts.CartRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock, logger *zap.Logger) *Interactor {
	return &Interactor{
		OrderRepo:  orderRepo,
		CartRepo:   cartRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		ReadModel:  readModel,
		Pricer:     services.NewCheckoutPricer(),
		Clock:      clk,
		Logger:     logger,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Order, error) {
	if req.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	now := it.Clock.Now()

	// 1. Read the cart
	cart, err := it.ReadModel.GetCart(ctx, req.UserID)
	if err != nil {
		return nil, domain.NewPersistenceError("load cart", err)
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	// The guard must capture the cart as read, before Reset moves updated_at.
	unchanged := it.CartRepo.UnchangedGuard(cart)

	// 2. Resolve current catalog prices
	catalog, err := it.ReadModel.FindProductsByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, domain.NewPersistenceError("resolve cart products", err)
	}

	// 3. Snapshot line items
	items, missing := it.Pricer.Snapshot(cart, catalog)
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrCartHasUnavailableItems, missing)
	}

	// 4. Build the order; the total is computed once here
	order, err := domain.NewOrder(uuid.New().String(), req.UserID, items, now)
	if err != nil {
		return nil, err
	}

	// 5. One plan: order rows, cleared cart, outbox
	cart.Reset(now)
	cartMut, err := it.CartRepo.SaveMut(cart)
	if err != nil {
		return nil, domain.NewPersistenceError("clear cart", err)
	}

	plan := commitplan.NewPlan()
	plan.Require(unchanged)
	plan.Add(it.OrderRepo.InsertMuts(order)...)
	plan.Add(cartMut)
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, order.DomainEvents(), now); err != nil {
		return nil, err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, domain.NewPersistenceError("place order", err)
	}

	it.Logger.Info("order placed",
		zap.String("order_id", order.ID()),
		zap.String("user_id", order.UserID()),
		zap.Int("items", len(items)),
		zap.Int64("total_cents", order.Total().Int64()))

	return order, nil
}
