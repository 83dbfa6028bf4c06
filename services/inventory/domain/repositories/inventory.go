// Package repositories declares the persistence interfaces for the inventory
// bounded context. The domain layer owns these interfaces; the postgres
// infrastructure implements them. Methods that protect a cross-row invariant
// (image primacy, session promotion) run as a single transaction internally —
// no partial state is ever visible to other transactions.
package repositories

import (
	"context"
	"time"

	"github.com/linenlady/inventory/services/inventory/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
	// IncludeDrafts widens the listing to draft items; deleted items are
	// always excluded.
	IncludeDrafts bool
}

// ItemRepository is the persistence interface for the Item aggregate.
type ItemRepository interface {
	// Create inserts a draft item and publishes ItemCreatedEvent in the same
	// transaction. Returns ErrSKUConflict on a duplicate sku.
	Create(ctx context.Context, item *models.Item) error

	// GetByID returns a non-deleted item. Returns ErrItemNotFound when absent
	// or soft-deleted.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// List returns a page of non-deleted items plus the total count.
	List(ctx context.Context, opts QueryOpts) ([]*models.Item, int, error)

	// UpdateFields applies a validated tri-state patch in one statement and
	// returns the refreshed row. Returns ErrItemNotFound for absent/deleted
	// items and ErrSKUConflict on a duplicate sku.
	UpdateFields(ctx context.Context, id int64, patch *models.ItemPatch) (*models.Item, error)

	// Publish validates preconditions and flips the item to published inside
	// one transaction. When forcePrimaryImage is set and no image is primary,
	// the lowest (sort_order, id) image is promoted first. Publishes
	// ItemPublishedEvent transactionally.
	Publish(ctx context.Context, id int64, forcePrimaryImage bool) (*models.Item, error)

	// Unpublish flips the item back to draft unconditionally (beyond existence).
	Unpublish(ctx context.Context, id int64) (*models.Item, error)

	// SoftDelete sets is_deleted; reports whether a row was affected (false
	// means not-found or already deleted).
	SoftDelete(ctx context.Context, id int64) (bool, error)

	// Undelete clears is_deleted only if currently deleted.
	Undelete(ctx context.Context, id int64) (bool, error)
}

// AttachImageParams are the inputs for ImageRepository.Attach.
type AttachImageParams struct {
	Path      string
	IsPrimary bool
	// SortOrder <= 0 means auto-assign one past the current max, computed in
	// the attach transaction.
	SortOrder int32
}

// ImageRepository enforces the ≤1-primary-image invariant across all image
// mutations for an item.
type ImageRepository interface {
	// Attach validates the path namespace and inserts the image. When
	// IsPrimary is requested, existing primaries are cleared before the
	// insert (clear-then-set) in the same transaction.
	Attach(ctx context.Context, itemID int64, params AttachImageParams) (*models.Image, error)

	// Remove deletes the image and reports whether it was primary. When it
	// was, the lowest remaining (sort_order, id) image is promoted in the
	// same transaction. Returns ErrImageNotFound when absent for the item.
	Remove(ctx context.Context, itemID, imageID int64) (bool, error)

	// RepromotePrimaryIfMissing promotes the lowest (sort_order, id) image
	// when the item has images but none marked primary. No-op otherwise.
	RepromotePrimaryIfMissing(ctx context.Context, itemID int64) error

	// ListByItem returns the item's images ordered by (sort_order, id).
	ListByItem(ctx context.Context, itemID int64) ([]*models.Image, error)
}

// AttachPhotoParams are the inputs for SessionRepository.AttachPhoto.
type AttachPhotoParams struct {
	BlobPath    string
	SortOrder   int32
	IsPrimary   bool
	ContentHash *string
}

// ConsumeDefaults are the caller-supplied field defaults for the item a
// session promotes into.
type ConsumeDefaults struct {
	SKU        string // empty → derived from the new item's public id
	Name       string // empty → placeholder name
	Quantity   int32
	PriceCents int64
}

// SessionRepository owns intake session persistence, including the
// promote-exactly-once transaction.
type SessionRepository interface {
	Create(ctx context.Context, session *models.IntakeSession) error

	// GetByID returns a session regardless of status. ErrSessionNotFound when absent.
	GetByID(ctx context.Context, id int64) (*models.IntakeSession, error)

	// AttachPhoto locks the session row, checks Open+unexpired, and upserts
	// the photo keyed on (session, path). A primary photo clears other
	// primaries first. Returns ErrSessionNotOpen / ErrSessionNotFound /
	// ErrDuplicateSortOrder.
	AttachPhoto(ctx context.Context, sessionID int64, params AttachPhotoParams) (*models.IntakePhoto, error)

	// ListPhotos returns the session's photos ordered by (sort_order, id).
	ListPhotos(ctx context.Context, sessionID int64) ([]*models.IntakePhoto, error)

	// Consume promotes the session into a new draft item exactly once.
	// Replayed calls return the already-produced item id with created=false.
	// The whole promotion — item insert, photo copy, primary repair, session
	// transition — is one transaction.
	Consume(ctx context.Context, sessionID int64, defaults ConsumeDefaults) (itemID int64, created bool, err error)

	// Abandon transitions an Open session to the terminal Abandoned state.
	Abandon(ctx context.Context, sessionID int64) error

	// SweepExpired transitions up to batchSize Open sessions whose TTL has
	// elapsed to Expired, oldest expiry first. Safe to run concurrently with
	// itself. Returns the number of sessions transitioned.
	SweepExpired(ctx context.Context, batchSize int) (int, error)

	// Purge permanently removes terminal-state sessions (cascading photos)
	// whose last update is older than the cutoff, in batches. Open sessions
	// are never purged regardless of age.
	Purge(ctx context.Context, olderThan time.Duration, batchSize int) (int, error)
}

// VectorRepository stores externally computed embedding records.
type VectorRepository interface {
	// Get returns the record for (item, purpose, model), or ErrEmbeddingNotFound.
	Get(ctx context.Context, itemID int64, purpose, model string) (*models.EmbeddingRecord, error)

	// Upsert inserts or overwrites the record keyed by (item, purpose, model)
	// and reports whether a new row was created.
	Upsert(ctx context.Context, rec *models.EmbeddingRecord) (bool, error)
}
