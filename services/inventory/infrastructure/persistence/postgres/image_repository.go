package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/linenlady/inventory/pkg/database"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
	"github.com/linenlady/inventory/services/inventory/infrastructure/persistence/postgres/db"
)

// ImageRepository implements repositories.ImageRepository. Every mutation
// locks the owning item row first, so concurrent attaches/removals for the
// same item serialize and the ≤1-primary invariant can never be observed
// broken (a partial unique index backstops it at the schema level).
type ImageRepository struct {
	db *database.Database
}

// NewImageRepository returns an ImageRepository backed by the given pool.
func NewImageRepository(d *database.Database) *ImageRepository {
	return &ImageRepository{db: d}
}

// Attach validates the path namespace and inserts the image. A requested
// primary clears existing primaries before the insert — clear-then-set, never
// set-then-clear, so no reader inside another transaction can catch two
// primaries. Auto-assigned sort order is one past the current max, computed
// under the same item lock to avoid duplicate assignment.
func (r *ImageRepository) Attach(ctx context.Context, itemID int64, params repositories.AttachImageParams) (*models.Image, error) {
	var attached *models.Image
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		itemRow, err := q.GetItemForUpdate(ctx, itemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrItemNotFound
			}
			return infra("lock item", err)
		}
		if itemRow.IsDeleted {
			return invdomain.ErrItemNotFound
		}

		if err := models.ValidateImagePath(itemRow.PublicID, params.Path); err != nil {
			return err
		}

		imageRows, err := q.ListImagesByItem(ctx, itemID)
		if err != nil {
			return infra("list images", err)
		}
		images := toImages(imageRows)

		sortOrder := params.SortOrder
		if sortOrder <= 0 {
			sortOrder = models.NextSortOrder(images)
		}

		if params.IsPrimary {
			if err := q.ClearPrimaryImages(ctx, itemID); err != nil {
				return infra("clear primary images", err)
			}
		}

		row, err := q.InsertImage(ctx, db.InsertImageParams{
			ItemID:    itemID,
			Path:      params.Path,
			IsPrimary: params.IsPrimary,
			SortOrder: sortOrder,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			if database.IsUniqueViolation(err, "item_images_item_path_key") {
				return invdomain.ErrImagePathConflict
			}
			return infra("insert image", err)
		}
		attached = toImage(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attached, nil
}

// Remove deletes the image and reports whether it was primary. Removing the
// primary promotes the lowest remaining (sort_order, id) image in the same
// transaction, so the item never commits with images but no primary.
func (r *ImageRepository) Remove(ctx context.Context, itemID, imageID int64) (bool, error) {
	var wasPrimary bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		if _, err := q.GetItemForUpdate(ctx, itemID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrItemNotFound
			}
			return infra("lock item", err)
		}

		img, err := q.GetImageForItem(ctx, db.GetImageForItemParams{ItemID: itemID, ID: imageID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrImageNotFound
			}
			return infra("query image", err)
		}
		wasPrimary = img.IsPrimary

		if _, err := q.DeleteImage(ctx, db.DeleteImageParams{ItemID: itemID, ID: imageID}); err != nil {
			return infra("delete image", err)
		}

		if wasPrimary {
			return repromote(ctx, q, itemID)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return wasPrimary, nil
}

// RepromotePrimaryIfMissing promotes the lowest (sort_order, id) image when
// the item has images but none marked primary.
func (r *ImageRepository) RepromotePrimaryIfMissing(ctx context.Context, itemID int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if _, err := q.GetItemForUpdate(ctx, itemID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrItemNotFound
			}
			return infra("lock item", err)
		}
		return repromote(ctx, q, itemID)
	})
}

// ListByItem returns the item's images ordered by (sort_order, id). Lock-free.
func (r *ImageRepository) ListByItem(ctx context.Context, itemID int64) ([]*models.Image, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	rows, err := db.New(r.db.DB()).ListImagesByItem(ctx, itemID)
	if err != nil {
		return nil, infra("list images", err)
	}
	return toImages(rows), nil
}

// repromote re-establishes the primary invariant inside an open transaction:
// if images exist and none is primary, the deterministic candidate is promoted.
func repromote(ctx context.Context, q *db.Queries, itemID int64) error {
	imageRows, err := q.ListImagesByItem(ctx, itemID)
	if err != nil {
		return infra("list images", err)
	}
	images := toImages(imageRows)
	if len(images) == 0 || models.HasPrimary(images) {
		return nil
	}
	if err := q.SetImagePrimary(ctx, models.PrimaryCandidate(images).ID); err != nil {
		return infra("promote primary image", err)
	}
	return nil
}
