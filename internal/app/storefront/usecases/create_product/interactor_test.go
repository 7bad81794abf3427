package create_product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/memstore"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

var now = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func newInteractor(store *memstore.Store) *Interactor {
	return NewInteractor(store.ProductRepo(), store.OutboxRepo(), store, clock.NewFake(now))
}

func validRequest() Request {
	return Request{
		OwnerID:     "admin-1",
		Name:        "Desk Lamp",
		Description: "Bright and adjustable",
		Price:       "19.999",
		ImageURL:    "images/lamp.png",
	}
}

func TestExecute_PersistsProductAndEvent(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	id, err := newInteractor(store).Execute(ctx, validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	p, err := store.FindProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(2000), p.Price())
	assert.Equal(t, "admin-1", p.OwnerID())
	assert.Equal(t, now, p.CreatedAt())

	events := store.OutboxEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "product.created", events[0].EventType)
	assert.Equal(t, id, events[0].AggregateID)
	assert.Equal(t, 1, store.ApplyCalls())
}

func TestExecute_ValidationWritesNothing(t *testing.T) {
	store := memstore.New()
	req := validRequest()
	req.Price = "-1"

	_, err := newInteractor(store).Execute(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{domain.FieldPrice}, verr.FieldNames())
	assert.Equal(t, 0, store.ApplyCalls())
}

func TestExecute_RequiresOwner(t *testing.T) {
	store := memstore.New()
	req := validRequest()
	req.OwnerID = ""

	_, err := newInteractor(store).Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 0, store.ApplyCalls())
}

func TestExecute_CommitFailure(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	store.ApplyErr = errors.New("spanner unavailable")

	_, err := newInteractor(store).Execute(ctx, validRequest())
	assert.ErrorIs(t, err, domain.ErrPersistence)

	n, err := store.CountProducts(ctx, contracts.ProductFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, store.OutboxEvents())
}
