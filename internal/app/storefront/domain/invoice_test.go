package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvoice(t *testing.T) {
	o, err := NewOrder("order-1", "user-1", []LineItem{
		{ProductID: "a", Name: "A", UnitPrice: 500, Quantity: 2},
		{ProductID: "b", Name: "B", UnitPrice: 300, Quantity: 1},
	}, time.Now())
	require.NoError(t, err)

	want := "Invoice #order-1\n" +
		"-----------------------\n" +
		"A - 2 x $5.00\n" +
		"B - 1 x $3.00\n" +
		"-----------\n" +
		"Total Price: $13.00\n"
	assert.Equal(t, want, string(RenderInvoice(o)))
	assert.Equal(t, RenderInvoice(o), RenderInvoice(o))
}

func TestRenderInvoice_PrintsStoredTotal(t *testing.T) {
	o := ReconstructOrder("order-2", "user-1", []LineItem{{Name: "A", UnitPrice: 500, Quantity: 2}}, 1234, time.Now())
	assert.Contains(t, string(RenderInvoice(o)), "Total Price: $12.34\n")
}

func TestInvoiceName(t *testing.T) {
	assert.Equal(t, "invoice-order-1.txt", InvoiceName("order-1"))
}
