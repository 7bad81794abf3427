package update_product

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	shared "github.com/murkotick/storefront-service/internal/app/storefront/usecases/shared"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

// Request replaces the editable fields of a product. An empty ImageURL keeps
// the current image.
type Request struct {
	ActorID     string
	ProductID   string
	Name        string
	Description string
	Price       string
	ImageURL    string
}

// Interactor edits a product using the Golden Mutation pattern and removes
// the replaced image once the edit is committed.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Files       contracts.FileStore
	Clock       clock.Clock
	Logger      *zap.Logger
}

func NewInteractor(repo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, files contracts.FileStore, clk clock.Clock, logger *zap.Logger) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Files:       files,
		Clock:       clk,
		Logger:      logger,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// 1. Load aggregate via read model
	product, err := it.ReadModel.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return domain.NewPersistenceError("load product", err)
	}

	// 2. Domain method checks ownership before anything else
	orphaned, err := product.Edit(req.ActorID, domain.ProductDraft{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}, now)
	if err != nil {
		return err
	}

	// 3. Collect mutations
	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))

	// 4. Outbox events
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}

	// 5. Apply via committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return domain.NewPersistenceError("update product", err)
	}

	// 6. The old image is unreferenced only after the commit
	if orphaned != "" {
		if err := it.Files.DeleteFile(ctx, orphaned); err != nil {
			it.Logger.Warn("orphaned image not deleted",
				zap.String("product_id", product.ID()),
				zap.String("path", orphaned),
				zap.Error(err))
		}
	}

	return nil
}
