package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeTracker(t *testing.T) {
	ct := NewChangeTracker()
	assert.False(t, ct.HasChanges())

	ct.MarkDirty(FieldPrice)
	ct.MarkDirty(FieldName)
	ct.MarkDirty(FieldPrice)

	assert.True(t, ct.Dirty(FieldPrice))
	assert.False(t, ct.Dirty(FieldDescription))
	assert.Equal(t, []string{FieldName, FieldPrice}, ct.DirtyFields())

	ct.Clear()
	assert.False(t, ct.HasChanges())
}
