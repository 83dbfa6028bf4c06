package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linenlady/inventory/services/inventory/domain"
)

// PlaceholderName is the default name given to items promoted from an intake
// session before anyone edits them. Publish refuses items still carrying it.
const PlaceholderName = "New Item"

const (
	maxNameLength        = 255
	maxSKULength         = 64
	maxDescriptionLength = 4000
)

// Item is the core inventory aggregate. ID is the internal numeric identity;
// PublicID is the opaque external identifier used in storage paths.
type Item struct {
	ID          int64
	PublicID    uuid.UUID
	SKU         string
	Name        string
	Description *string
	Quantity    int32
	PriceCents  int64
	IsDraft     bool
	IsActive    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem constructs a draft Item with a fresh public identifier.
// Field constraints are validated; the numeric ID is assigned on insert.
func NewItem(sku, name string, quantity int32, priceCents int64) (*Item, error) {
	if name == "" {
		name = PlaceholderName
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateSKU(sku); err != nil {
		return nil, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := ValidatePriceCents(priceCents); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Item{
		PublicID:   uuid.New(),
		SKU:        sku,
		Name:       name,
		Quantity:   quantity,
		PriceCents: priceCents,
		IsDraft:    true,
		IsActive:   false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ImagePathPrefix returns the object-storage key prefix owned by the item.
// Every image path attached to the item must begin with this prefix.
func (i *Item) ImagePathPrefix() string {
	return ImagePathPrefix(i.PublicID)
}

// ImagePathPrefix builds the storage namespace prefix for an item public id:
// "items/<public-id>/".
func ImagePathPrefix(publicID uuid.UUID) string {
	return fmt.Sprintf("items/%s/", publicID)
}

// ValidateImagePath checks that path lies within the namespace of the item
// identified by publicID.
func ValidateImagePath(publicID uuid.UUID, path string) error {
	if path == "" {
		return fmt.Errorf("%w: path must not be empty", domain.ErrValidation)
	}
	if !strings.HasPrefix(path, ImagePathPrefix(publicID)) {
		return fmt.Errorf("%w: %q must start with %q", domain.ErrPathOutsideNamespace, path, ImagePathPrefix(publicID))
	}
	return nil
}

// ValidateName enforces item name constraints.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", domain.ErrValidation, maxNameLength)
	}
	return nil
}

// ValidateSKU enforces SKU constraints.
func ValidateSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return fmt.Errorf("%w: sku must not be empty", domain.ErrValidation)
	}
	if len(sku) > maxSKULength {
		return fmt.Errorf("%w: sku must not exceed %d characters", domain.ErrValidation, maxSKULength)
	}
	return nil
}

// ValidateQuantity enforces non-negative quantity.
func ValidateQuantity(q int32) error {
	if q < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	return nil
}

// ValidatePriceCents enforces non-negative unit price.
func ValidatePriceCents(p int64) error {
	if p < 0 {
		return fmt.Errorf("%w: price_cents must not be negative", domain.ErrValidation)
	}
	return nil
}

// ValidateDescription enforces description length bounds.
func ValidateDescription(d string) error {
	if len(d) > maxDescriptionLength {
		return fmt.Errorf("%w: description must not exceed %d characters", domain.ErrValidation, maxDescriptionLength)
	}
	return nil
}
