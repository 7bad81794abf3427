package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

func TestInsertMuts_HeaderPlusItems(t *testing.T) {
	r := NewOrderRepo()
	o, err := domain.NewOrder("order-1", "user-1", []domain.LineItem{
		{ProductID: "a", Name: "A", UnitPrice: 500, Quantity: 2},
		{ProductID: "b", Name: "B", UnitPrice: 300, Quantity: 1},
	}, time.Now().UTC())
	require.NoError(t, err)

	muts := r.InsertMuts(o)
	assert.Len(t, muts, 3)
	for _, m := range muts {
		assert.NotNil(t, m)
	}

	assert.Nil(t, r.InsertMuts(nil))
}
