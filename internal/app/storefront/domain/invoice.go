package domain

import (
	"bytes"
	"strconv"
)

// InvoiceContentType is the media type of RenderInvoice output.
const InvoiceContentType = "text/plain; charset=utf-8"

// InvoiceName is the artifact name of the invoice for orderID.
func InvoiceName(orderID string) string {
	return "invoice-" + orderID + ".txt"
}

// RenderInvoice renders o as a line-itemized document. Output is deterministic
// for a given order. The total line prints the stored total; it is never
// recomputed from the items.
func RenderInvoice(o *Order) []byte {
	var b bytes.Buffer
	b.WriteString("Invoice #")
	b.WriteString(o.ID())
	b.WriteString("\n-----------------------\n")
	for _, it := range o.items {
		b.WriteString(InvoiceLine(it))
		b.WriteByte('\n')
	}
	b.WriteString("-----------\n")
	b.WriteString("Total Price: ")
	b.WriteString(o.Total().Dollars())
	b.WriteByte('\n')
	return b.Bytes()
}

// InvoiceLine formats one item as "<name> - <qty> x $<unit price>".
func InvoiceLine(it LineItem) string {
	return it.Name + " - " + strconv.Itoa(it.Quantity) + " x " + it.UnitPrice.Dollars()
}
