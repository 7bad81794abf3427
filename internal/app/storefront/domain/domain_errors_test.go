package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	assert.ErrorIs(t, ErrProductNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrOrderNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrNotOrderOwner, ErrUnauthorized)
	assert.ErrorIs(t, ErrInvalidQuantity, ErrValidation)
}

func TestNewPersistenceError(t *testing.T) {
	assert.NoError(t, NewPersistenceError("op", nil))

	boom := errors.New("boom")
	err := NewPersistenceError("commit", boom)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "commit: boom", err.Error())

	assert.Same(t, err, NewPersistenceError("outer", err), "already wrapped errors pass through")

	wrapped := fmt.Errorf("load: %w", ErrProductNotFound)
	assert.Equal(t, wrapped, NewPersistenceError("load", wrapped))
	assert.Equal(t, ErrCartChanged, NewPersistenceError("commit", ErrCartChanged))

	ctxErr := NewPersistenceError("commit", context.Canceled)
	assert.ErrorIs(t, ctxErr, context.Canceled)
}

func TestValidationError_Error(t *testing.T) {
	verr := &ValidationError{}
	verr.Add(FieldName, "name is required")
	verr.Add(FieldPrice, "bad")
	assert.Equal(t, "validation failed: name: name is required; price: bad", verr.Error())
	assert.ErrorIs(t, verr, ErrValidation)
}
