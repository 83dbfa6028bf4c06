package services

import (
	"fmt"

	"github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
)

// ValidateForPublish checks the publish preconditions against a loaded item
// and its image count. Any failure names the violated rule and leaves the
// item untouched — the caller must not write on error.
func ValidateForPublish(item *models.Item, imageCount int) error {
	if item.IsDeleted {
		return domain.ErrItemNotFound
	}
	if item.Name == "" || item.Name == models.PlaceholderName {
		return fmt.Errorf("%w: name is required and must not be the placeholder default", domain.ErrValidation)
	}
	if item.PriceCents <= 0 {
		return fmt.Errorf("%w: price must be greater than zero", domain.ErrValidation)
	}
	if imageCount == 0 {
		return fmt.Errorf("%w: at least one image is required", domain.ErrValidation)
	}
	return nil
}
