package domain

import "time"

// DomainEvent is a fact about something that happened in the storefront.
// Events are written to the outbox in the same commit as the state change.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreatedEvent is raised when an administrator adds a product.
type ProductCreatedEvent struct {
	ProductID string
	OwnerID   string
	Name      string
	Price     Cents
	CreatedAt time.Time
}

func (e *ProductCreatedEvent) EventType() string     { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// ProductUpdatedEvent is raised when product details change.
type ProductUpdatedEvent struct {
	ProductID string
	UpdatedAt time.Time
	Changes   map[string]interface{} // field name -> new value
}

func (e *ProductUpdatedEvent) EventType() string     { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// PriceChangedEvent is raised when the catalog price changes.
// Orders placed earlier keep their snapshot price.
type PriceChangedEvent struct {
	ProductID string
	OldPrice  Cents
	NewPrice  Cents
	ChangedAt time.Time
}

func (e *PriceChangedEvent) EventType() string     { return "product.price_changed" }
func (e *PriceChangedEvent) AggregateID() string   { return e.ProductID }
func (e *PriceChangedEvent) OccurredAt() time.Time { return e.ChangedAt }

// ProductDeletedEvent is raised when a product is removed from the catalog.
type ProductDeletedEvent struct {
	ProductID string
	ImageURL  string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string     { return "product.deleted" }
func (e *ProductDeletedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

// OrderPlacedEvent is raised when a cart is converted into an order.
type OrderPlacedEvent struct {
	OrderID   string
	UserID    string
	Total     Cents
	ItemCount int
	PlacedAt  time.Time
}

func (e *OrderPlacedEvent) EventType() string     { return "order.placed" }
func (e *OrderPlacedEvent) AggregateID() string   { return e.OrderID }
func (e *OrderPlacedEvent) OccurredAt() time.Time { return e.PlacedAt }
