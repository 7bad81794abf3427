package delete_product

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	shared "github.com/murkotick/storefront-service/internal/app/storefront/usecases/shared"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

type Request struct {
	ActorID   string
	ProductID string
}

// Interactor removes a product owned by the actor together with its image.
// Carts referencing the product are left alone; they show the entry as
// unavailable until the shopper removes it.
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

	product, err := it.ReadModel.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return domain.NewPersistenceError("load product", err)
	}

	if err := product.Delete(req.ActorID, now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.DeleteMut(product))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return domain.NewPersistenceError("delete product", err)
	}

	if img := product.ImageURL(); img != "" {
		if err := it.Files.DeleteFile(ctx, img); err != nil {
			it.Logger.Warn("product image not deleted",
				zap.String("product_id", product.ID()),
				zap.String("path", img),
				zap.Error(err))
		}
	}

	return nil
}
