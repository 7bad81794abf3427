package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation from a column -> value map.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation. values must not contain
// product_id; it is added as the leading key column.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}
	c, v := split(values)
	return spanner.Update(TableName, append(cols, c...), append(vals, v...))
}

// DeleteMutation removes the row for productID.
func DeleteMutation(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// BuildInsertMap prepares the canonical fields for insertion.
func BuildInsertMap(productID, ownerID, name string, description *string, priceCents int64,
	imageURL *string, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColProductID:  productID,
		ColOwnerID:    ownerID,
		ColName:       name,
		ColPriceCents: priceCents,
		ColCreatedAt:  createdAt,
		ColUpdatedAt:  updatedAt,
	}

	if description != nil {
		m[ColDescription] = *description
	} else {
		m[ColDescription] = nil
	}

	if imageURL != nil {
		m[ColImageURL] = *imageURL
	} else {
		m[ColImageURL] = nil
	}

	return m
}

func split(values map[string]interface{}) ([]string, []interface{}) {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return cols, vals
}
