package relay_outbox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/memstore"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

type fakePublisher struct {
	mu      sync.Mutex
	batches [][]contracts.OutboxEvent
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, events []contracts.OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.batches = append(p.batches, append([]contracts.OutboxEvent(nil), events...))
	return nil
}

func (p *fakePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ids []string
	for _, b := range p.batches {
		for _, e := range b {
			ids = append(ids, e.EventID)
		}
	}
	return ids
}

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func seedOutbox(t *testing.T, store *memstore.Store, n int) {
	t.Helper()
	plan := commitplan.NewPlan()
	for i := 1; i <= n; i++ {
		plan.Add(store.OutboxRepo().InsertMut(&contracts.OutboxEvent{
			EventID:      fmt.Sprintf("evt-%d", i),
			EventType:    "product.created",
			AggregateID:  "prod-1",
			PayloadJSON:  `{}`,
			Status:       contracts.OutboxStatusPending,
			CreatedAtUTC: now,
		}))
	}
	require.NoError(t, store.Apply(context.Background(), plan))
}

func pendingCount(store *memstore.Store) int {
	n := 0
	for _, e := range store.OutboxEvents() {
		if e.Status == contracts.OutboxStatusPending {
			n++
		}
	}
	return n
}

func newInteractor(t *testing.T, store *memstore.Store, pub contracts.EventPublisher, batch int) *Interactor {
	return NewInteractor(store, store.OutboxRepo(), pub, store, clock.NewFake(now), zaptest.NewLogger(t), batch)
}

func TestExecute_PublishesThenMarksProcessed(t *testing.T) {
	store := memstore.New()
	seedOutbox(t, store, 3)
	pub := &fakePublisher{}

	n, err := newInteractor(t, store, pub, 10).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"evt-1", "evt-2", "evt-3"}, pub.published())
	assert.Zero(t, pendingCount(store))

	n, err = newInteractor(t, store, pub, 10).Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, pub.batches, 1, "nothing pending, nothing published")
}

func TestExecute_RespectsBatchSize(t *testing.T) {
	store := memstore.New()
	seedOutbox(t, store, 5)
	pub := &fakePublisher{}
	it := newInteractor(t, store, pub, 2)

	n, err := it.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, pendingCount(store))
}

func TestExecute_PublishFailureLeavesRowsPending(t *testing.T) {
	store := memstore.New()
	seedOutbox(t, store, 2)
	boom := errors.New("broker down")

	_, err := newInteractor(t, store, &fakePublisher{err: boom}, 10).Execute(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, pendingCount(store))
	assert.Equal(t, 1, store.ApplyCalls(), "only the seed plan was applied")
}

func TestExecute_MarkFailureRepublishes(t *testing.T) {
	store := memstore.New()
	seedOutbox(t, store, 1)
	pub := &fakePublisher{}
	it := newInteractor(t, store, pub, 10)

	store.ApplyErr = errors.New("aborted")
	_, err := it.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, 1, pendingCount(store))

	store.ApplyErr = nil
	_, err = it.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"evt-1", "evt-1"}, pub.published())
}

func TestExecute_ReadFailure(t *testing.T) {
	store := memstore.New()
	store.ReadErr = errors.New("unavailable")

	_, err := newInteractor(t, store, &fakePublisher{}, 10).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestRun_DrainsAndStopsOnCancel(t *testing.T) {
	store := memstore.New()
	seedOutbox(t, store, 5)
	pub := &fakePublisher{}
	it := newInteractor(t, store, pub, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- it.Run(ctx, time.Hour) }()

	require.Eventually(t, func() bool { return pendingCount(store) == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.Len(t, pub.published(), 5)
}

func TestRun_LogsFailures(t *testing.T) {
	store := memstore.New()
	seedOutbox(t, store, 1)
	core, logs := observer.New(zap.ErrorLevel)
	it := NewInteractor(store, store.OutboxRepo(), &fakePublisher{err: errors.New("broker down")}, store, clock.NewFake(now), zap.New(core), 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- it.Run(ctx, 5*time.Millisecond) }()

	require.Eventually(t, func() bool { return logs.FilterMessage("outbox relay failed").Len() > 0 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
	assert.Equal(t, 1, pendingCount(store))
}
