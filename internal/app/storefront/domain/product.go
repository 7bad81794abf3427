package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Field constants for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImageURL    = "image_url"
)

// Input limits for catalog fields.
const (
	MinNameLength        = 3
	MaxNameLength        = 255
	MinDescriptionLength = 5
	MaxDescriptionLength = 400
)

// ProductDraft is the raw catalog input as submitted by an administrator.
// Price is still the decimal string; conversion to Cents happens in validation.
type ProductDraft struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
}

func (d ProductDraft) values() map[string]string {
	return map[string]string{
		FieldName:        d.Name,
		FieldDescription: d.Description,
		FieldPrice:       d.Price,
		FieldImageURL:    d.ImageURL,
	}
}

// Product is the catalog aggregate root.
type Product struct {
	id          string
	ownerID     string
	name        string
	description string
	price       Cents
	imageURL    string
	createdAt   time.Time
	updatedAt   time.Time
	changes     *ChangeTracker
	events      []DomainEvent
}

// NewProduct validates draft and creates a product owned by ownerID.
// An image is required for new products.
func NewProduct(id, ownerID string, draft ProductDraft, now time.Time) (*Product, error) {
	price, err := validateDraft(draft, true)
	if err != nil {
		return nil, err
	}

	p := &Product{
		id:          id,
		ownerID:     ownerID,
		name:        strings.TrimSpace(draft.Name),
		description: strings.TrimSpace(draft.Description),
		price:       price,
		imageURL:    strings.TrimSpace(draft.ImageURL),
		createdAt:   now,
		updatedAt:   now,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		ProductID: p.id,
		OwnerID:   p.ownerID,
		Name:      p.name,
		Price:     p.price,
		CreatedAt: now,
	})

	return p, nil
}

// ReconstructProduct rebuilds a Product from persisted state.
func ReconstructProduct(id, ownerID, name, description string, price Cents, imageURL string, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

func (p *Product) ID() string                  { return p.id }
func (p *Product) OwnerID() string             { return p.ownerID }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) Price() Cents                { return p.price }
func (p *Product) ImageURL() string            { return p.imageURL }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// OwnedBy reports whether userID created the product.
func (p *Product) OwnedBy(userID string) bool {
	return userID != "" && p.ownerID == userID
}

// Edit replaces name, description and price with the draft values.
// An empty draft.ImageURL keeps the current image. When the image is replaced
// the previous path is returned so the caller can delete the orphaned file
// once the change is committed.
func (p *Product) Edit(actorID string, draft ProductDraft, now time.Time) (orphanedImage string, err error) {
	if !p.OwnedBy(actorID) {
		return "", ErrNotProductOwner
	}
	price, err := validateDraft(draft, false)
	if err != nil {
		return "", err
	}

	changes := make(map[string]interface{})

	if name := strings.TrimSpace(draft.Name); name != p.name {
		p.name = name
		p.changes.MarkDirty(FieldName)
		changes[FieldName] = name
	}
	if desc := strings.TrimSpace(draft.Description); desc != p.description {
		p.description = desc
		p.changes.MarkDirty(FieldDescription)
		changes[FieldDescription] = desc
	}
	if img := strings.TrimSpace(draft.ImageURL); img != "" && img != p.imageURL {
		orphanedImage = p.imageURL
		p.imageURL = img
		p.changes.MarkDirty(FieldImageURL)
		changes[FieldImageURL] = img
	}
	if price != p.price {
		p.events = append(p.events, &PriceChangedEvent{
			ProductID: p.id,
			OldPrice:  p.price,
			NewPrice:  price,
			ChangedAt: now,
		})
		p.price = price
		p.changes.MarkDirty(FieldPrice)
	}

	if p.changes.HasChanges() {
		p.updatedAt = now
	}
	if len(changes) > 0 {
		p.events = append(p.events, &ProductUpdatedEvent{
			ProductID: p.id,
			UpdatedAt: now,
			Changes:   changes,
		})
	}

	return orphanedImage, nil
}

// Delete records the removal of the product. The aggregate itself carries no
// deleted state; the repository turns this into a row delete.
func (p *Product) Delete(actorID string, now time.Time) error {
	if !p.OwnedBy(actorID) {
		return ErrNotProductOwner
	}
	p.events = append(p.events, &ProductDeletedEvent{
		ProductID: p.id,
		ImageURL:  p.imageURL,
		DeletedAt: now,
	})
	return nil
}

// ClearEvents clears the accumulated domain events.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

// ValidateDraft checks a draft the same way NewProduct does and returns the
// converted price. Exposed so the transport can validate once at the boundary.
func ValidateDraft(draft ProductDraft, requireImage bool) (Cents, error) {
	return validateDraft(draft, requireImage)
}

func validateDraft(draft ProductDraft, requireImage bool) (Cents, error) {
	verr := &ValidationError{Values: draft.values()}

	name := strings.TrimSpace(draft.Name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		verr.Add(FieldName, "name is required")
	case n < MinNameLength:
		verr.Add(FieldName, "name must be at least 3 characters")
	case n > MaxNameLength:
		verr.Add(FieldName, "name exceeds maximum length of 255 characters")
	}

	desc := strings.TrimSpace(draft.Description)
	if n := utf8.RuneCountInString(desc); n < MinDescriptionLength || n > MaxDescriptionLength {
		verr.Add(FieldDescription, "description must be between 5 and 400 characters")
	}

	price, err := ParseCents(draft.Price)
	if err != nil {
		verr.Add(FieldPrice, err.Error())
	}

	if requireImage && strings.TrimSpace(draft.ImageURL) == "" {
		verr.Add(FieldImageURL, "attached file is not an image")
	}

	if !verr.empty() {
		return 0, verr
	}
	return price, nil
}
