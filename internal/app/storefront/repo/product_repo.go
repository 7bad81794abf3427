package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	"github.com/murkotick/storefront-service/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the catalog write side.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// Unexported so tests in this package can inspect it directly.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	var description *string
	if d := p.Description(); d != "" {
		description = &d
	}
	var image *string
	if img := p.ImageURL(); img != "" {
		image = &img
	}

	return m_product.BuildInsertMap(p.ID(), p.OwnerID(), p.Name(), description, p.Price().Int64(),
		image, p.CreatedAt().UTC(), p.UpdatedAt().UTC())
}

// buildUpdateValues maps the aggregate's dirty fields to columns.
func buildUpdateValues(p *domain.Product) map[string]interface{} {
	updates := map[string]interface{}{}

	if p.Changes().Dirty(domain.FieldName) {
		updates[m_product.ColName] = p.Name()
	}
	if p.Changes().Dirty(domain.FieldDescription) {
		if p.Description() == "" {
			updates[m_product.ColDescription] = nil
		} else {
			updates[m_product.ColDescription] = p.Description()
		}
	}
	if p.Changes().Dirty(domain.FieldPrice) {
		updates[m_product.ColPriceCents] = p.Price().Int64()
	}
	if p.Changes().Dirty(domain.FieldImageURL) {
		updates[m_product.ColImageURL] = p.ImageURL()
	}

	if len(updates) > 0 {
		updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	}
	return updates
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation for the dirty fields only and stamps
// updated_at. Returns nil when nothing changed.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}
	updates := buildUpdateValues(p)
	if len(updates) == 0 {
		return nil
	}
	return m_product.UpdateMutation(p.ID(), updates)
}

// DeleteMut removes the product row. Carts may keep referencing the id;
// readers treat such entries as unavailable.
func (r *ProductRepo) DeleteMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.DeleteMutation(p.ID())
}
