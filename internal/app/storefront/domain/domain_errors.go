package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error categories. Concrete errors below wrap one of these so callers can
// branch with errors.Is without knowing every individual error.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrPersistence  = errors.New("persistence failure")
)

// Lookup errors
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)

	// ErrOrderNotFound indicates that an order with the given ID does not exist.
	ErrOrderNotFound = fmt.Errorf("order %w", ErrNotFound)
)

// Ownership errors
var (
	// ErrNotProductOwner indicates the acting user did not create the product.
	ErrNotProductOwner = fmt.Errorf("product owner check: %w", ErrUnauthorized)

	// ErrNotOrderOwner indicates the acting user did not place the order.
	ErrNotOrderOwner = fmt.Errorf("order owner check: %w", ErrUnauthorized)
)

// Cart and checkout errors
var (
	// ErrEmptyProductID indicates a cart operation without a product reference.
	ErrEmptyProductID = fmt.Errorf("product id is required: %w", ErrValidation)

	// ErrInvalidQuantity indicates a line item or cart entry with quantity below one.
	ErrInvalidQuantity = fmt.Errorf("quantity must be at least 1: %w", ErrValidation)

	// ErrEmptyCart indicates a checkout of a cart with no entries.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCartHasUnavailableItems indicates the cart references products that no longer exist.
	ErrCartHasUnavailableItems = errors.New("cart contains unavailable products")

	// ErrCartChanged indicates the cart was modified between reading it and committing the checkout.
	ErrCartChanged = errors.New("cart changed during checkout")
)

// Money errors
var (
	// ErrInvalidPrice indicates a price that is not a decimal number.
	ErrInvalidPrice = errors.New("price must be a decimal number")

	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrAmountOverflow indicates a monetary computation that does not fit in int64 cents.
	ErrAmountOverflow = errors.New("amount exceeds representable range")
)

// FieldError is a single per-field validation message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports malformed input. Values holds the submitted input so
// the caller can show it again next to the messages.
type ValidationError struct {
	Fields []FieldError
	Values map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add records a message for field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Messages returns the messages for field in the order they were added.
func (e *ValidationError) Messages(field string) []string {
	var out []string
	for _, f := range e.Fields {
		if f.Field == field {
			out = append(out, f.Message)
		}
	}
	return out
}

// FieldNames returns the sorted set of fields that failed.
func (e *ValidationError) FieldNames() []string {
	seen := make(map[string]struct{}, len(e.Fields))
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := seen[f.Field]; ok {
			continue
		}
		seen[f.Field] = struct{}{}
		out = append(out, f.Field)
	}
	sort.Strings(out)
	return out
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

// PersistenceError wraps a store failure with the operation that hit it.
// Store failures are terminal for the request; nothing retries them.
type PersistenceError struct {
	Op  string
	Err error
}

// NewPersistenceError wraps err. Nil and domain errors are returned untouched.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrCartChanged) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
