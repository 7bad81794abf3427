package relay_outbox

import (
	"context"
	"time"

	"go.uber.org/zap"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

const DefaultBatchSize = 100

// Interactor moves pending outbox rows onto the message bus. A row is marked
// processed only after the publisher acknowledged it, so a crash between the
// two steps republishes the batch.
type Interactor struct {
	Source     contracts.OutboxSource
	OutboxRepo contracts.OutboxRepo
	Publisher  contracts.EventPublisher
	Committer  contracts.Committer
	Clock      clock.Clock
	Logger     *zap.Logger
	BatchSize  int
}

func NewInteractor(source contracts.OutboxSource, outboxRepo contracts.OutboxRepo, publisher contracts.EventPublisher, committer contracts.Committer, clk clock.Clock, logger *zap.Logger, batchSize int) *Interactor {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Interactor{
		Source:     source,
		OutboxRepo: outboxRepo,
		Publisher:  publisher,
		Committer:  committer,
		Clock:      clk,
		Logger:     logger,
		BatchSize:  batchSize,
	}
}

// Execute relays one batch and reports how many events were marked processed.
func (it *Interactor) Execute(ctx context.Context) (int, error) {
	// 1. Fetch
	events, err := it.Source.FindPendingEvents(ctx, it.BatchSize)
	if err != nil {
		return 0, domain.NewPersistenceError("load pending outbox events", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	// 2. Publish
	if err := it.Publisher.Publish(ctx, events); err != nil {
		return 0, err
	}

	// 3. Mark processed
	now := it.Clock.Now()
	plan := commitplan.NewPlan()
	for _, e := range events {
		plan.Add(it.OutboxRepo.MarkProcessedMut(e.EventID, now))
	}
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return 0, domain.NewPersistenceError("mark outbox events processed", err)
	}

	it.Logger.Debug("outbox batch relayed", zap.Int("events", len(events)))
	return len(events), nil
}

// Run relays batches until ctx is done. A full batch is followed immediately
// by the next one; otherwise the loop waits for interval.
func (it *Interactor) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		n, err := it.Execute(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			it.Logger.Error("outbox relay failed", zap.Error(err))
		}
		if err == nil && n == it.BatchSize {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
