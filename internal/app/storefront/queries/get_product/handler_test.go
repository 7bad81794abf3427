package get_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/memstore"
)

func TestExecute(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memstore.New()
	store.PutProduct(domain.ReconstructProduct("prod-1", "admin-1", "Desk Lamp", "Bright and adjustable", 1999, "images/lamp.png", now, now))
	h := NewHandler(store)

	out, err := h.Execute(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "19.99", out.Price)
	assert.Equal(t, int64(1999), out.PriceCents)
	assert.Equal(t, "2024-01-01T00:00:00Z", out.CreatedAt)

	_, err = h.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
