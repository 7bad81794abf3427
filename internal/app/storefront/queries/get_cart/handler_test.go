package get_cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/memstore"
)

func TestExecute_JoinsLiveCatalog(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memstore.New()
	store.PutProduct(domain.ReconstructProduct("a", "admin-1", "A", "first product", 500, "images/a.png", now, now))
	store.PutCart(domain.ReconstructCart("user-1", []domain.CartEntry{
		{ProductID: "a", Quantity: 2},
		{ProductID: "gone", Quantity: 4},
	}, now))

	out, err := NewHandler(store).Execute(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, out.Lines, 2)
	assert.True(t, out.Lines[0].Available)
	assert.Equal(t, "A", out.Lines[0].Name)
	assert.Equal(t, "5.00", out.Lines[0].UnitPrice)
	assert.Equal(t, "images/a.png", out.Lines[0].ImageURL)

	assert.False(t, out.Lines[1].Available)
	assert.Equal(t, "gone", out.Lines[1].ProductID)
	assert.Equal(t, 4, out.Lines[1].Quantity)

	assert.Equal(t, "10.00", out.Total)
	assert.Equal(t, int64(1000), out.TotalCents)
}

func TestExecute_NoStoredCart(t *testing.T) {
	out, err := NewHandler(memstore.New()).Execute(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, out.Lines)
	assert.Equal(t, "0.00", out.Total)
}

func TestExecute_RequiresUser(t *testing.T) {
	_, err := NewHandler(memstore.New()).Execute(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
