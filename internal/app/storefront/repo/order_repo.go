package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/models/m_order"
)

// OrderRepo writes orders to Spanner. Orders are insert-only.
type OrderRepo struct{}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{}
}

// InsertMuts returns the header insert followed by one insert per line item.
func (r *OrderRepo) InsertMuts(o *domain.Order) []*spanner.Mutation {
	if o == nil {
		return nil
	}
	items := o.Items()
	muts := make([]*spanner.Mutation, 0, len(items)+1)
	muts = append(muts, m_order.InsertMutation(o.ID(), o.UserID(), o.Total().Int64(), o.CreatedAt().UTC()))
	for i, it := range items {
		muts = append(muts, m_order.InsertItemMutation(o.ID(), int64(i), it.ProductID, it.Name,
			it.UnitPrice.Int64(), int64(it.Quantity)))
	}
	return muts
}
