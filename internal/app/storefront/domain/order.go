package domain

import (
	"strings"
	"time"
)

// LineItem is a snapshot of one cart entry taken at checkout.
// UnitPrice is frozen; later catalog price changes do not affect it.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice Cents
	Quantity  int
}

// Subtotal returns UnitPrice*Quantity.
func (l LineItem) Subtotal() (Cents, error) {
	return l.UnitPrice.Mul(l.Quantity)
}

// Order is an immutable record of a completed checkout.
type Order struct {
	id        string
	userID    string
	items     []LineItem
	total     Cents
	createdAt time.Time
	events    []DomainEvent
}

// NewOrder snapshots items into a new order and computes its total once.
func NewOrder(id, userID string, items []LineItem, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	snapshot := make([]LineItem, len(items))
	total := Cents(0)
	for i, it := range items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if it.UnitPrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		sub, err := it.Subtotal()
		if err != nil {
			return nil, err
		}
		if total, err = total.Add(sub); err != nil {
			return nil, err
		}
		it.Name = strings.TrimSpace(it.Name)
		snapshot[i] = it
	}

	o := &Order{
		id:        id,
		userID:    userID,
		items:     snapshot,
		total:     total,
		createdAt: now,
	}
	o.events = []DomainEvent{&OrderPlacedEvent{
		OrderID:   id,
		UserID:    userID,
		Total:     total,
		ItemCount: len(snapshot),
		PlacedAt:  now,
	}}
	return o, nil
}

// ReconstructOrder rebuilds an order from storage. The stored total is kept as
// is and never recomputed from the items.
func ReconstructOrder(id, userID string, items []LineItem, total Cents, createdAt time.Time) *Order {
	snapshot := make([]LineItem, len(items))
	copy(snapshot, items)
	return &Order{
		id:        id,
		userID:    userID,
		items:     snapshot,
		total:     total,
		createdAt: createdAt,
	}
}

func (o *Order) ID() string                  { return o.id }
func (o *Order) UserID() string              { return o.userID }
func (o *Order) Total() Cents                { return o.total }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) DomainEvents() []DomainEvent { return o.events }

// Items returns a copy of the line items in snapshot order.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// PlacedBy reports whether userID owns the order.
func (o *Order) PlacedBy(userID string) bool {
	return userID != "" && o.userID == userID
}
