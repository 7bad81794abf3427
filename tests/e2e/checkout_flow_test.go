package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/memstore"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/get_cart"
	"github.com/murkotick/storefront-service/internal/app/storefront/queries/list_orders"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/checkout"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/delete_product"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/manage_cart"
	"github.com/murkotick/storefront-service/internal/app/storefront/usecases/render_invoice"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

func addToCart(ctx context.Context, t *testing.T, userID, productID string) {
	t.Helper()
	tick()
	require.NoError(t, cartUC.AddToCart(ctx, manage_cart.Request{UserID: userID, ProductID: productID}))
}

func TestCheckoutFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	owner := uniqueUser("admin")
	a := createProduct(ctx, t, owner, "A", "5.00")
	b := createProduct(ctx, t, owner, "B", "3.00")

	shopper := uniqueUser("shopper")
	addToCart(ctx, t, shopper, a)
	addToCart(ctx, t, shopper, a)
	addToCart(ctx, t, shopper, b)

	cart, err := get_cart.NewHandler(readModel).Execute(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, int64(1300), cart.TotalCents)

	tick()
	order, err := checkoutUC.Execute(ctx, checkout.Request{UserID: shopper})
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1300), order.Total())

	cart, err = get_cart.NewHandler(readModel).Execute(ctx, shopper)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	_, err = checkoutUC.Execute(ctx, checkout.Request{UserID: shopper})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	orders, err := list_orders.NewHandler(readModel).Execute(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, "A", orders[0].Items[0].Name)
	assert.Equal(t, int64(500), orders[0].Items[0].UnitPriceCents)

	events := mustFetchOutboxEvents(ctx, t, spClient, order.ID())
	require.Len(t, events, 1)
	assert.Equal(t, "order.placed", events[0].EventType)
	assert.EqualValues(t, 1300, payloadOf(t, events[0])["total_cents"])

	response := memstore.NewBufferSink()
	require.NoError(t, invoiceUC.Execute(ctx, render_invoice.Request{UserID: shopper, OrderID: order.ID()}, response))

	stored, err := os.ReadFile(filepath.Join(invoiceDir, domain.InvoiceName(order.ID())))
	require.NoError(t, err)
	assert.Equal(t, stored, response.Bytes())
	assert.Contains(t, string(stored), "A - 2 x $5.00")
	assert.Contains(t, string(stored), "B - 1 x $3.00")
	assert.Contains(t, string(stored), "Total Price: $13.00")
}

func TestCheckout_DanglingEntryRejected(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	owner := uniqueUser("admin")
	keep := createProduct(ctx, t, owner, "Keep", "2.00")
	gone := createProduct(ctx, t, owner, "Gone", "9.00")

	shopper := uniqueUser("shopper")
	addToCart(ctx, t, shopper, keep)
	addToCart(ctx, t, shopper, gone)

	tick()
	require.NoError(t, deleteUC.Execute(ctx, delete_product.Request{ActorID: owner, ProductID: gone}))

	cart, err := get_cart.NewHandler(readModel).Execute(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.True(t, cart.Lines[0].Available)
	assert.False(t, cart.Lines[1].Available)
	assert.Equal(t, int64(200), cart.TotalCents)

	_, err = checkoutUC.Execute(ctx, checkout.Request{UserID: shopper})
	assert.ErrorIs(t, err, domain.ErrCartHasUnavailableItems)

	cart, err = get_cart.NewHandler(readModel).Execute(ctx, shopper)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2, "cart untouched")
}

func TestCartGuard_DetectsConcurrentChange(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	owner := uniqueUser("admin")
	p := createProduct(ctx, t, owner, "Mug", "4.00")

	shopper := uniqueUser("shopper")
	addToCart(ctx, t, shopper, p)

	stale, err := readModel.GetCart(ctx, shopper)
	require.NoError(t, err)
	guard := cartRepo.UnchangedGuard(stale)

	// Another request changes the cart after it was read.
	addToCart(ctx, t, shopper, p)

	stale.Reset(clk.Now())
	mut, err := cartRepo.SaveMut(stale)
	require.NoError(t, err)

	plan := commitplan.NewPlan()
	plan.Require(guard)
	plan.Add(mut)

	err = cm.Apply(ctx, plan)
	assert.ErrorIs(t, err, domain.ErrCartChanged)

	fresh, err := readModel.GetCart(ctx, shopper)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Quantity(p), "guarded write must not land")
}
