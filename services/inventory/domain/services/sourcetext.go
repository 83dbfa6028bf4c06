package services

import (
	"strings"

	"github.com/linenlady/inventory/services/inventory/domain/models"
)

// EmbeddingSourceText assembles the canonical text an item's embedding is
// computed from: trimmed name, joined to the trimmed description with a blank
// line when the description is non-empty. An empty or absent description
// yields the name alone.
func EmbeddingSourceText(item *models.Item) string {
	name := strings.TrimSpace(item.Name)
	if item.Description == nil {
		return name
	}
	desc := strings.TrimSpace(*item.Description)
	if desc == "" {
		return name
	}
	return name + "\n\n" + desc
}
