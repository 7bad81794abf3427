package get_cart

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/app/storefront/repo"
	"github.com/murkotick/storefront-service/internal/models/m_cart"
)

type SpannerGetCartQuery struct {
	Client *spanner.Client
}

func NewSpannerGetCartQuery(client *spanner.Client) *SpannerGetCartQuery {
	return &SpannerGetCartQuery{Client: client}
}

// GetCart reads the cart document. A user without a row gets an empty cart.
func (q *SpannerGetCartQuery) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	row, err := q.Client.Single().ReadRow(ctx, m_cart.TableName, m_cart.Key(userID),
		[]string{m_cart.ColEntries, m_cart.ColUpdatedAt})
	if spanner.ErrCode(err) == codes.NotFound {
		return domain.NewCart(userID), nil
	}
	if err != nil {
		return nil, err
	}

	var (
		entries   spanner.NullString
		updatedAt time.Time
	)
	if err := row.Columns(&entries, &updatedAt); err != nil {
		return nil, err
	}
	stored, err := m_cart.DecodeEntries(entries.StringVal)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructCart(userID, repo.FromStoredEntries(stored), updatedAt.UTC()), nil
}
