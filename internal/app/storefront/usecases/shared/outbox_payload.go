package shared

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

// MarshalDomainEventPayload converts a domain event into the outbox JSON payload.
// Amounts are written as integer cents.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"owner_id":    e.OwnerID,
			"name":        e.Name,
			"price_cents": e.Price.Int64(),
			"created_at":  e.CreatedAt,
		}

	case *domain.ProductUpdatedEvent:
		payload = map[string]interface{}{
			"product_id":  e.ProductID,
			"changes":     e.Changes,
			"updated_at":  e.UpdatedAt,
			"occurred_at": e.OccurredAt(),
		}

	case *domain.PriceChangedEvent:
		payload = map[string]interface{}{
			"product_id":      e.ProductID,
			"old_price_cents": e.OldPrice.Int64(),
			"new_price_cents": e.NewPrice.Int64(),
			"changed_at":      e.ChangedAt,
		}

	case *domain.ProductDeletedEvent:
		payload = map[string]interface{}{
			"product_id": e.ProductID,
			"image_url":  e.ImageURL,
			"deleted_at": e.DeletedAt,
		}

	case *domain.OrderPlacedEvent:
		payload = map[string]interface{}{
			"order_id":    e.OrderID,
			"user_id":     e.UserID,
			"total_cents": e.Total.Int64(),
			"item_count":  e.ItemCount,
			"placed_at":   e.PlacedAt,
		}

	default:
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %s: %w", ev.EventType(), err)
	}
	return string(b), nil
}
