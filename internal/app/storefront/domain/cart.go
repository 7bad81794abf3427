package domain

import (
	"strings"
	"time"
)

// CartEntry is one product reference in a cart. Quantity is always >= 1.
type CartEntry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart is the per-user cart document. It holds at most one entry per product
// and is only changed through its methods.
type Cart struct {
	userID    string
	entries   []CartEntry
	updatedAt time.Time
}

// NewCart returns an empty cart for userID.
func NewCart(userID string) *Cart {
	return &Cart{userID: userID}
}

// ReconstructCart rebuilds a cart from storage. Entries with quantity below one
// are dropped and duplicate product references are merged, so a cart loaded
// from a hand-edited or legacy document still satisfies the invariants.
func ReconstructCart(userID string, entries []CartEntry, updatedAt time.Time) *Cart {
	c := &Cart{userID: userID, updatedAt: updatedAt}
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Quantity < 1 || e.ProductID == "" {
			continue
		}
		if i, ok := index[e.ProductID]; ok {
			c.entries[i].Quantity += e.Quantity
			continue
		}
		index[e.ProductID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

func (c *Cart) UserID() string       { return c.userID }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }
func (c *Cart) IsEmpty() bool        { return len(c.entries) == 0 }
func (c *Cart) Len() int             { return len(c.entries) }

// Entries returns a copy of the entries in insertion order.
func (c *Cart) Entries() []CartEntry {
	out := make([]CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ProductIDs returns the referenced product ids in insertion order.
func (c *Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		ids = append(ids, e.ProductID)
	}
	return ids
}

// Quantity returns the quantity held for productID, or 0.
func (c *Cart) Quantity(productID string) int {
	if i := c.find(productID); i >= 0 {
		return c.entries[i].Quantity
	}
	return 0
}

// Add increments the entry for productID, or appends one with quantity 1.
// Product existence is not checked here.
func (c *Cart) Add(productID string, now time.Time) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ErrEmptyProductID
	}
	if i := c.find(productID); i >= 0 {
		c.entries[i].Quantity++
	} else {
		c.entries = append(c.entries, CartEntry{ProductID: productID, Quantity: 1})
	}
	c.touch(now)
	return nil
}

// Remove deletes the entry for productID. It reports whether an entry existed;
// a missing entry is not an error.
func (c *Cart) Remove(productID string, now time.Time) bool {
	i := c.find(strings.TrimSpace(productID))
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.touch(now)
	return true
}

// Reset empties the cart.
func (c *Cart) Reset(now time.Time) {
	c.entries = nil
	c.touch(now)
}

// touch advances updatedAt, which doubles as the cart's concurrency token. It
// always moves forward by at least one microsecond, the storage precision, so
// a write landing in the same microsecond as the read still changes the token.
func (c *Cart) touch(now time.Time) {
	if next := c.updatedAt.Add(time.Microsecond); now.Before(next) {
		now = next
	}
	c.updatedAt = now
}

func (c *Cart) find(productID string) int {
	for i, e := range c.entries {
		if e.ProductID == productID {
			return i
		}
	}
	return -1
}
