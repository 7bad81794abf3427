package manage_cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/memstore"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

var start = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func setup() (*memstore.Store, *clock.FakeClock, *Interactor) {
	store := memstore.New()
	clk := clock.NewFake(start)
	return store, clk, NewInteractor(store.CartRepo(), store, store, clk)
}

func TestAddToCart_IncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	store, clk, it := setup()

	require.NoError(t, it.AddToCart(ctx, Request{UserID: "user-1", ProductID: "a"}))
	require.NoError(t, it.AddToCart(ctx, Request{UserID: "user-1", ProductID: "b"}))
	later := clk.Advance(time.Minute)
	require.NoError(t, it.AddToCart(ctx, Request{UserID: "user-1", ProductID: "a"}))

	cart, err := store.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartEntry{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 1}}, cart.Entries())
	assert.Equal(t, later, cart.UpdatedAt())
}

func TestAddToCart_DoesNotCheckProductExistence(t *testing.T) {
	ctx := context.Background()
	store, _, it := setup()

	require.NoError(t, it.AddToCart(ctx, Request{UserID: "user-1", ProductID: "never-created"}))
	cart, err := store.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Quantity("never-created"))
}

func TestAddToCart_Rejects(t *testing.T) {
	ctx := context.Background()
	store, _, it := setup()

	assert.ErrorIs(t, it.AddToCart(ctx, Request{ProductID: "a"}), domain.ErrUnauthorized)
	assert.ErrorIs(t, it.AddToCart(ctx, Request{UserID: "user-1"}), domain.ErrValidation)
	assert.Equal(t, 0, store.ApplyCalls())
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	store, _, it := setup()
	store.PutCart(domain.ReconstructCart("user-1", []domain.CartEntry{{ProductID: "a", Quantity: 3}, {ProductID: "b", Quantity: 1}}, start))

	require.NoError(t, it.RemoveFromCart(ctx, Request{UserID: "user-1", ProductID: "a"}))
	cart, err := store.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartEntry{{ProductID: "b", Quantity: 1}}, cart.Entries())

	calls := store.ApplyCalls()
	require.NoError(t, it.RemoveFromCart(ctx, Request{UserID: "user-1", ProductID: "absent"}))
	assert.Equal(t, calls, store.ApplyCalls(), "removing an absent entry writes nothing")
}

func TestResetCart(t *testing.T) {
	ctx := context.Background()
	store, _, it := setup()
	store.PutCart(domain.ReconstructCart("user-1", []domain.CartEntry{{ProductID: "a", Quantity: 1}}, start))

	require.NoError(t, it.ResetCart(ctx, Request{UserID: "user-1"}))
	cart, err := store.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestMutate_StoreFailures(t *testing.T) {
	ctx := context.Background()
	store, _, it := setup()

	store.ReadErr = errors.New("read failed")
	assert.ErrorIs(t, it.AddToCart(ctx, Request{UserID: "user-1", ProductID: "a"}), domain.ErrPersistence)

	store.ReadErr = nil
	store.ApplyErr = errors.New("commit failed")
	assert.ErrorIs(t, it.AddToCart(ctx, Request{UserID: "user-1", ProductID: "a"}), domain.ErrPersistence)

	store.ApplyErr = nil
	cart, err := store.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
