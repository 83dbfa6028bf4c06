package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "inventory:item"
)

// CachedItem is the denormalized item read model stored in Redis.
// Fields are stored as a Redis hash; description is only written when set so
// nil round-trips.
type CachedItem struct {
	ID          int64      `json:"id"`
	PublicID    uuid.UUID  `json:"public_id"`
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Quantity    int32      `json:"quantity"`
	PriceCents  int64      `json:"price_cents"`
	IsDraft     bool       `json:"is_draft"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ItemCache provides structured read/write operations for item cache entries.
// Key format: "inventory:item:{id}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by its numeric id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID int64) (*CachedItem, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	publicID, err := uuid.Parse(vals["public_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse public_id: %w", err)
	}
	quantity, err := strconv.ParseInt(vals["quantity"], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	priceCents, err := strconv.ParseInt(vals["price_cents"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price_cents: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	cached := &CachedItem{
		ID:         id,
		PublicID:   publicID,
		SKU:        vals["sku"],
		Name:       vals["name"],
		Quantity:   int32(quantity),
		PriceCents: priceCents,
		IsDraft:    vals["is_draft"] == "1",
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if d, ok := vals["description"]; ok {
		cached.Description = &d
	}
	return cached, nil
}

// Set writes a cached item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically. The key is
// deleted first so a previously set description does not linger after it is
// cleared.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.ID)
	isDraft := "0"
	if item.IsDraft {
		isDraft = "1"
	}

	pipe := c.client.Client().Pipeline()
	pipe.Del(ctx, key)
	fields := []any{
		"id", strconv.FormatInt(item.ID, 10),
		"public_id", item.PublicID.String(),
		"sku", item.SKU,
		"name", item.Name,
		"quantity", strconv.FormatInt(int64(item.Quantity), 10),
		"price_cents", strconv.FormatInt(item.PriceCents, 10),
		"is_draft", isDraft,
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if item.Description != nil {
		fields = append(fields, "description", *item.Description)
	}
	pipe.HSet(ctx, key, fields...)
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. Called on every item mutation so stale reads
// never outlive a write.
func (c *ItemCache) Delete(ctx context.Context, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "inventory:item:{id}"
func (c *ItemCache) key(itemID int64) string {
	return fmt.Sprintf("%s:%d", itemCacheKeyPrefix, itemID)
}
