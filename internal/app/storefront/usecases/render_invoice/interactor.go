package render_invoice

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

type Request struct {
	UserID  string
	OrderID string
}

// Interactor renders an order's invoice and delivers the same bytes to the
// durable artifact store and to the caller's response sink.
type Interactor struct {
	ReadModel contracts.ReadModel
	Artifacts contracts.ArtifactStore
	Logger    *zap.Logger
}

func NewInteractor(readModel contracts.ReadModel, artifacts contracts.ArtifactStore, logger *zap.Logger) *Interactor {
	return &Interactor{
		ReadModel: readModel,
		Artifacts: artifacts,
		Logger:    logger,
	}
}

// Execute writes the invoice to response. Nothing is committed to either sink
// unless both writes succeed; on failure both sinks are aborted.
func (it *Interactor) Execute(ctx context.Context, req Request, response contracts.Sink) error {
	// 1. Load and authorize
	order, err := it.ReadModel.FindOrderByID(ctx, req.OrderID)
	if err != nil {
		_ = response.Abort()
		return domain.NewPersistenceError("load order", err)
	}
	if !order.PlacedBy(req.UserID) {
		_ = response.Abort()
		return domain.ErrNotOrderOwner
	}

	// 2. Render once
	doc := domain.RenderInvoice(order)

	// 3. Open the durable artifact
	key := domain.InvoiceName(order.ID())
	artifact, err := it.Artifacts.Create(ctx, key)
	if err != nil {
		_ = response.Abort()
		return domain.NewPersistenceError("open invoice artifact", err)
	}

	// 4. Write both sinks concurrently
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return writeAll(artifact, doc, "invoice artifact") })
	g.Go(func() error { return writeAll(response, doc, "invoice response") })
	if err := g.Wait(); err != nil {
		abortBoth(artifact, response)
		return domain.NewPersistenceError("write invoice", err)
	}

	// 5. Commit the artifact first; a failed response commit leaves a stored
	// invoice that can be fetched again.
	if err := artifact.Commit(); err != nil {
		abortBoth(artifact, response)
		return domain.NewPersistenceError("commit invoice artifact", err)
	}
	if err := response.Commit(); err != nil {
		_ = response.Abort()
		return fmt.Errorf("commit invoice response: %w", err)
	}

	it.Logger.Debug("invoice delivered",
		zap.String("order_id", order.ID()),
		zap.String("artifact", key),
		zap.Int("bytes", len(doc)))
	return nil
}

func writeAll(w io.Writer, doc []byte, name string) error {
	n, err := w.Write(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if n != len(doc) {
		return fmt.Errorf("%s: %w", name, io.ErrShortWrite)
	}
	return nil
}

func abortBoth(sinks ...contracts.Sink) {
	for _, s := range sinks {
		_ = s.Abort()
	}
}
