package create_product

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	shared "github.com/murkotick/storefront-service/internal/app/storefront/usecases/shared"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

// Request is the application-level create-product request.
// Price is the submitted decimal string; ImageURL is an already stored path.
type Request struct {
	OwnerID     string
	Name        string
	Description string
	Price       string
	ImageURL    string
}

// Interactor implements the create-product usecase following the Golden Mutation pattern.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(prodRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		Clock:       clk,
	}
}

// Execute creates a new product, persists it and writes outbox events in a single commit.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if req.OwnerID == "" {
		return "", domain.ErrUnauthorized
	}
	now := it.Clock.Now()

	// 1. Build domain aggregate (validates the draft)
	id := uuid.New().String()
	product, err := domain.NewProduct(id, req.OwnerID, domain.ProductDraft{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}, now)
	if err != nil {
		return "", err
	}

	// 2. Build commit plan
	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))

	// 3. Outbox events
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return "", err
	}

	// 4. Apply plan via Committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", domain.NewPersistenceError("create product", err)
	}

	return product.ID(), nil
}
