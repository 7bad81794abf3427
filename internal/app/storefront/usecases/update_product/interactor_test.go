package update_product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/memstore"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

var created = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*memstore.Store, *Interactor, *observer.ObservedLogs) {
	t.Helper()
	store := memstore.New()
	store.PutProduct(domain.ReconstructProduct("prod-1", "admin-1", "Desk Lamp", "Bright and adjustable", 1999, "images/old.png", created, created))

	core, logs := observer.New(zapcore.WarnLevel)
	it := NewInteractor(store.ProductRepo(), store.OutboxRepo(), store, store, store,
		clock.NewFake(created.Add(time.Hour)), zap.New(core))
	return store, it, logs
}

func editRequest() Request {
	return Request{
		ActorID:     "admin-1",
		ProductID:   "prod-1",
		Name:        "Desk Lamp",
		Description: "Bright and adjustable",
		Price:       "25",
		ImageURL:    "images/new.png",
	}
}

func TestExecute_ReplacesImageAfterCommit(t *testing.T) {
	ctx := context.Background()
	store, it, _ := setup(t)

	require.NoError(t, it.Execute(ctx, editRequest()))

	p, err := store.FindProductByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(2500), p.Price())
	assert.Equal(t, "images/new.png", p.ImageURL())
	assert.Equal(t, created.Add(time.Hour), p.UpdatedAt())
	assert.Equal(t, created, p.CreatedAt())
	assert.Equal(t, []string{"images/old.png"}, store.DeletedFiles())

	types := make([]string, 0)
	for _, e := range store.OutboxEvents() {
		types = append(types, e.EventType)
	}
	assert.Equal(t, []string{"product.price_changed", "product.updated"}, types)
}

func TestExecute_KeepsImageWhenNoneSubmitted(t *testing.T) {
	ctx := context.Background()
	store, it, _ := setup(t)
	req := editRequest()
	req.ImageURL = ""

	require.NoError(t, it.Execute(ctx, req))

	p, err := store.FindProductByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "images/old.png", p.ImageURL())
	assert.Empty(t, store.DeletedFiles())
}

func TestExecute_CommitFailureKeepsOldImage(t *testing.T) {
	ctx := context.Background()
	store, it, _ := setup(t)
	store.ApplyErr = errors.New("aborted")

	err := it.Execute(ctx, editRequest())
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, store.DeletedFiles())

	p, err := store.FindProductByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1999), p.Price())
}

func TestExecute_NonOwnerWritesNothing(t *testing.T) {
	store, it, _ := setup(t)
	req := editRequest()
	req.ActorID = "admin-2"

	err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotProductOwner)
	assert.Equal(t, 0, store.ApplyCalls())
	assert.Empty(t, store.DeletedFiles())
}

func TestExecute_UnknownProduct(t *testing.T) {
	_, it, _ := setup(t)
	req := editRequest()
	req.ProductID = "missing"

	assert.ErrorIs(t, it.Execute(context.Background(), req), domain.ErrProductNotFound)
}

func TestExecute_ImageDeleteFailureIsLogged(t *testing.T) {
	store, it, logs := setup(t)
	store.DeleteFileErr = errors.New("disk gone")

	require.NoError(t, it.Execute(context.Background(), editRequest()))

	entries := logs.FilterMessage("orphaned image not deleted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "images/old.png", entries[0].ContextMap()["path"])
}
