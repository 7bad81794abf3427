package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
	"github.com/murkotick/storefront-service/internal/models/m_cart"
)

// CartRepo writes cart documents to Spanner.
type CartRepo struct{}

func NewCartRepo() *CartRepo {
	return &CartRepo{}
}

// ToStoredEntries maps domain entries to the stored JSON shape.
func ToStoredEntries(entries []domain.CartEntry) []m_cart.Entry {
	out := make([]m_cart.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, m_cart.Entry{ProductID: e.ProductID, Quantity: e.Quantity})
	}
	return out
}

// FromStoredEntries maps stored entries back to domain entries.
func FromStoredEntries(entries []m_cart.Entry) []domain.CartEntry {
	out := make([]domain.CartEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.CartEntry{ProductID: e.ProductID, Quantity: e.Quantity})
	}
	return out
}

// SaveMut replaces the whole cart document (InsertOrUpdate).
func (r *CartRepo) SaveMut(c *domain.Cart) (*spanner.Mutation, error) {
	if c == nil {
		return nil, nil
	}
	payload, err := m_cart.EncodeEntries(ToStoredEntries(c.Entries()))
	if err != nil {
		return nil, err
	}
	return m_cart.SaveMutation(c.UserID(), payload, c.UpdatedAt().UTC()), nil
}

// UnchangedGuard re-reads the cart row inside the commit transaction and
// compares updated_at with the value c was loaded with. A cart that was never
// stored must still be absent.
func (r *CartRepo) UnchangedGuard(c *domain.Cart) commitplan.Guard {
	userID := c.UserID()
	want := c.UpdatedAt()
	return func(ctx context.Context, rr commitplan.RowReader) error {
		row, err := rr.ReadRow(ctx, m_cart.TableName, m_cart.Key(userID), []string{m_cart.ColUpdatedAt})
		if spanner.ErrCode(err) == codes.NotFound {
			if want.IsZero() {
				return nil
			}
			return domain.ErrCartChanged
		}
		if err != nil {
			return fmt.Errorf("read cart %s: %w", userID, err)
		}
		var got time.Time
		if err := row.Column(0, &got); err != nil {
			return fmt.Errorf("scan cart %s: %w", userID, err)
		}
		if !got.Equal(want) {
			return domain.ErrCartChanged
		}
		return nil
	}
}
