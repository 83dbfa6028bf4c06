package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/linenlady/inventory/pkg/cache"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
)

// ItemService orchestrates the item lifecycle: create, read, partial update,
// publish/unpublish, soft delete/undelete.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available; every mutation refreshes
// or drops the cache entry so stale reads never outlive a write.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// CreateItemInput are the caller-supplied fields for direct item creation.
type CreateItemInput struct {
	SKU         string
	Name        string
	Description *string
	Quantity    int32
	PriceCents  int64
}

// Create validates and persists a draft Item. The repository publishes
// ItemCreatedEvent transactionally.
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	if in.Description != nil {
		if err := models.ValidateDescription(*in.Description); err != nil {
			return nil, err
		}
	}
	item, err := models.NewItem(in.SKU, in.Name, in.Quantity, in.PriceCents)
	if err != nil {
		return nil, err
	}
	item.Description = in.Description

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.warmCache(item)
	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return fromCached(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	s.warmCache(item)
	return item, nil
}

// List returns a paginated slice of non-deleted items plus the total count.
func (s *ItemService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	if opts.Limit <= 0 || opts.Limit > 100 {
		opts.Limit = 20
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// Update applies a tri-state partial update. Every present field is validated
// before any write; an empty patch returns the current item unchanged.
func (s *ItemService) Update(ctx context.Context, id int64, patch *models.ItemPatch) (*models.Item, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return s.GetByID(ctx, id)
	}

	item, err := s.repo.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.invalidate(id)
	s.warmCache(item)
	return item, nil
}

// Publish transitions a draft item to published, optionally promoting a
// primary image when none is marked. Preconditions (real name, positive
// price, at least one image) are enforced in the repository transaction.
func (s *ItemService) Publish(ctx context.Context, id int64, forcePrimaryImage bool) (*models.Item, error) {
	item, err := s.repo.Publish(ctx, id, forcePrimaryImage)
	if err != nil {
		return nil, fmt.Errorf("publish item: %w", err)
	}
	s.invalidate(id)
	s.warmCache(item)
	return item, nil
}

// Unpublish reverts a published item to draft.
func (s *ItemService) Unpublish(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.Unpublish(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unpublish item: %w", err)
	}
	s.invalidate(id)
	s.warmCache(item)
	return item, nil
}

// Delete soft-deletes the item. Deleting an already-deleted item is an
// idempotent no-op; a never-existing id reports ErrItemNotFound.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if !affected {
		// Either already deleted (idempotent success) or never existed.
		if _, err := s.repo.GetByID(ctx, id); errors.Is(err, invdomain.ErrItemNotFound) {
			return nil
		} else if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
	}
	s.invalidate(id)
	return nil
}

// Undelete restores a soft-deleted item. Restoring a live item is an
// idempotent no-op returning the item.
func (s *ItemService) Undelete(ctx context.Context, id int64) (*models.Item, error) {
	if _, err := s.repo.Undelete(ctx, id); err != nil {
		return nil, fmt.Errorf("undelete item: %w", err)
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("undelete item: %w", err)
	}
	s.warmCache(item)
	return item, nil
}

func (s *ItemService) invalidate(id int64) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(context.Background(), id)
}

// warmCache is best-effort and asynchronous; failures are swallowed.
func (s *ItemService) warmCache(item *models.Item) {
	if s.cache == nil || item.IsDeleted {
		return
	}
	cached := toCached(item)
	go func() {
		_ = s.cache.Set(context.Background(), cached)
	}()
}

func toCached(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:          item.ID,
		PublicID:    item.PublicID,
		SKU:         item.SKU,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		PriceCents:  item.PriceCents,
		IsDraft:     item.IsDraft,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func fromCached(cached *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:          cached.ID,
		PublicID:    cached.PublicID,
		SKU:         cached.SKU,
		Name:        cached.Name,
		Description: cached.Description,
		Quantity:    cached.Quantity,
		PriceCents:  cached.PriceCents,
		IsDraft:     cached.IsDraft,
		IsActive:    !cached.IsDraft,
		CreatedAt:   cached.CreatedAt,
		UpdatedAt:   cached.UpdatedAt,
	}
}
