package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/models/m_cart"
)

type fakeRowReader struct {
	row   *spanner.Row
	err   error
	table string
	key   spanner.Key
}

func (f *fakeRowReader) ReadRow(_ context.Context, table string, key spanner.Key, _ []string) (*spanner.Row, error) {
	f.table = table
	f.key = key
	return f.row, f.err
}

func storedAt(t *testing.T, ts time.Time) *fakeRowReader {
	t.Helper()
	row, err := spanner.NewRow([]string{m_cart.ColUpdatedAt}, []interface{}{ts})
	require.NoError(t, err)
	return &fakeRowReader{row: row}
}

func TestSaveMut_EncodesEntries(t *testing.T) {
	r := NewCartRepo()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c := domain.NewCart("user-1")
	require.NoError(t, c.Add("p1", now))

	mut, err := r.SaveMut(c)
	require.NoError(t, err)
	assert.NotNil(t, mut)

	mut, err = r.SaveMut(nil)
	require.NoError(t, err)
	assert.Nil(t, mut)
}

func TestStoredEntries_RoundTripKeepsOrder(t *testing.T) {
	entries := []domain.CartEntry{{ProductID: "b", Quantity: 2}, {ProductID: "a", Quantity: 1}}
	assert.Equal(t, entries, FromStoredEntries(ToStoredEntries(entries)))
}

func TestUnchangedGuard(t *testing.T) {
	loaded := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	cart := domain.ReconstructCart("user-1", []domain.CartEntry{{ProductID: "p1", Quantity: 1}}, loaded)
	guard := NewCartRepo().UnchangedGuard(cart)

	// Reset after the guard was built must not move its expectation.
	cart.Reset(loaded.Add(time.Minute))

	t.Run("unchanged", func(t *testing.T) {
		rr := storedAt(t, loaded)
		require.NoError(t, guard(context.Background(), rr))
		assert.Equal(t, m_cart.TableName, rr.table)
		assert.Equal(t, spanner.Key{"user-1"}, rr.key)
	})

	t.Run("changed", func(t *testing.T) {
		err := guard(context.Background(), storedAt(t, loaded.Add(time.Second)))
		assert.ErrorIs(t, err, domain.ErrCartChanged)
	})

	t.Run("deleted", func(t *testing.T) {
		err := guard(context.Background(), &fakeRowReader{err: status.Error(codes.NotFound, "row not found")})
		assert.ErrorIs(t, err, domain.ErrCartChanged)
	})

	t.Run("read failure", func(t *testing.T) {
		boom := errors.New("boom")
		err := guard(context.Background(), &fakeRowReader{err: boom})
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrCartChanged)
	})
}

func TestUnchangedGuard_NeverStoredCart(t *testing.T) {
	guard := NewCartRepo().UnchangedGuard(domain.NewCart("user-2"))

	require.NoError(t, guard(context.Background(), &fakeRowReader{err: status.Error(codes.NotFound, "row not found")}))

	err := guard(context.Background(), storedAt(t, time.Now().UTC()))
	assert.ErrorIs(t, err, domain.ErrCartChanged)
}
