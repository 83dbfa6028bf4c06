package services

import (
	"context"
	"errors"
	"fmt"

	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
	domainsvcs "github.com/linenlady/inventory/services/inventory/domain/services"
)

// DefaultEmbeddingPurpose is used when a refresh request names no purpose.
const DefaultEmbeddingPurpose = "search"

// EmbeddingService keeps item embeddings current with the item's text. The
// refresh is hash-gated: the embedding API is only called when the canonical
// source text actually changed, so repeated refreshes of an unchanged item
// cost one hash comparison and zero API calls.
type EmbeddingService struct {
	items    repositories.ItemRepository
	vectors  repositories.VectorRepository
	embedder Embedder
}

// NewEmbeddingService returns an EmbeddingService wired with the given
// repositories and embedder.
func NewEmbeddingService(items repositories.ItemRepository, vectors repositories.VectorRepository, embedder Embedder) *EmbeddingService {
	return &EmbeddingService{items: items, vectors: vectors, embedder: embedder}
}

// Refresh recomputes the item's embedding when its source text changed.
// force bypasses the hash gate but still performs at most one API call.
// A failed API call leaves the stored record untouched.
func (s *EmbeddingService) Refresh(ctx context.Context, itemID int64, purpose string, force bool) (*models.EmbeddingRecord, models.RefreshOutcome, error) {
	if purpose == "" {
		purpose = DefaultEmbeddingPurpose
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, "", fmt.Errorf("refresh embedding: %w", err)
	}

	text := domainsvcs.EmbeddingSourceText(item)
	hash := domainsvcs.HashText(text)
	model := s.embedder.Model()

	existing, err := s.vectors.Get(ctx, itemID, purpose, model)
	switch {
	case err == nil:
		if domainsvcs.HashEqual(existing.ContentHash, hash) && !force {
			return existing, models.RefreshUnchanged, nil
		}
	case errors.Is(err, invdomain.ErrEmbeddingNotFound):
		// First refresh for this (item, purpose, model).
	default:
		return nil, "", fmt.Errorf("refresh embedding: %w", err)
	}

	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, "", fmt.Errorf("refresh embedding: %w", err)
	}

	rec := &models.EmbeddingRecord{
		ItemID:      itemID,
		Purpose:     purpose,
		Model:       model,
		Dimensions:  int32(len(vector)),
		ContentHash: hash,
		Vector:      vector,
	}
	inserted, err := s.vectors.Upsert(ctx, rec)
	if err != nil {
		return nil, "", fmt.Errorf("refresh embedding: %w", err)
	}
	if inserted {
		return rec, models.RefreshCreated, nil
	}
	return rec, models.RefreshUpdated, nil
}
