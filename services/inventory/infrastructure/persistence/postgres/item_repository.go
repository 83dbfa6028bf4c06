package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/linenlady/inventory/pkg/database"
	"github.com/linenlady/inventory/pkg/events"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	domainevents "github.com/linenlady/inventory/services/inventory/domain/events"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
	domainsvcs "github.com/linenlady/inventory/services/inventory/domain/services"
	"github.com/linenlady/inventory/services/inventory/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus publishes lifecycle events transactionally.
func NewItemRepository(d *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: d, bus: bus}
}

// Create persists a draft Item and publishes ItemCreatedEvent within the same
// transaction. Returns ErrSKUConflict on a duplicate sku. The generated
// numeric id and timestamps are written back onto item.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.InsertItem(ctx, db.InsertItemParams{
			PublicID:    item.PublicID,
			Sku:         item.SKU,
			Name:        item.Name,
			Description: nullString(item.Description),
			Quantity:    item.Quantity,
			PriceCents:  item.PriceCents,
			IsDraft:     item.IsDraft,
			IsActive:    item.IsActive,
			CreatedAt:   item.CreatedAt,
		})
		if err != nil {
			if database.IsUniqueViolation(err, "inventory_items_sku_key") {
				return invdomain.ErrSKUConflict
			}
			return infra("insert item", err)
		}
		*item = *toItem(row)

		return publishItemCreated(r.bus, tx, item)
	})
}

// GetByID retrieves a non-deleted Item. Returns ErrItemNotFound when absent or
// soft-deleted.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	q := db.New(r.db.DB())
	row, err := q.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		return nil, infra("query item", err)
	}
	return toItem(row), nil
}

// List retrieves a page of non-deleted items and the total count.
func (r *ItemRepository) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	q := db.New(r.db.DB())
	rows, err := q.ListItems(ctx, db.ListItemsParams{
		Limit:         int32(opts.Limit),
		Offset:        int32(opts.Offset),
		IncludeDrafts: opts.IncludeDrafts,
	})
	if err != nil {
		return nil, 0, infra("query items", err)
	}

	total, err := q.CountItems(ctx, opts.IncludeDrafts)
	if err != nil {
		return nil, 0, infra("count items", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = toItem(row)
	}
	return items, int(total), nil
}

// UpdateFields applies a pre-validated tri-state patch in one statement:
// present fields are written, absent fields keep their value, an explicit
// null clears the (nullable) description.
func (r *ItemRepository) UpdateFields(ctx context.Context, id int64, patch *models.ItemPatch) (*models.Item, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	params := db.UpdateItemFieldsParams{
		ID:             id,
		SetSku:         patch.SKU.Set,
		Sku:            patch.SKU.Value,
		SetName:        patch.Name.Set,
		Name:           patch.Name.Value,
		SetDescription: patch.Description.Set,
		SetQuantity:    patch.Quantity.Set,
		Quantity:       patch.Quantity.Value,
		SetPriceCents:  patch.PriceCents.Set,
		PriceCents:     patch.PriceCents.Value,
	}
	if patch.Description.Set && patch.Description.Valid {
		params.Description = sql.NullString{String: patch.Description.Value, Valid: true}
	}

	q := db.New(r.db.DB())
	row, err := q.UpdateItemFields(ctx, params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		if database.IsUniqueViolation(err, "inventory_items_sku_key") {
			return nil, invdomain.ErrSKUConflict
		}
		return nil, infra("update item", err)
	}
	return toItem(row), nil
}

// Publish validates preconditions and flips the item to published, all under
// the row lock taken when the item is loaded. When forcePrimaryImage is set
// and no image is primary, the lowest (sort_order, id) image is promoted
// before the flip. ItemPublishedEvent commits with the change.
func (r *ItemRepository) Publish(ctx context.Context, id int64, forcePrimaryImage bool) (*models.Item, error) {
	var published *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		row, err := q.GetItemForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrItemNotFound
			}
			return infra("lock item", err)
		}
		item := toItem(row)

		imageRows, err := q.ListImagesByItem(ctx, id)
		if err != nil {
			return infra("list images", err)
		}
		images := toImages(imageRows)

		if err := domainsvcs.ValidateForPublish(item, len(images)); err != nil {
			return err
		}

		if forcePrimaryImage && !models.HasPrimary(images) {
			if err := q.SetImagePrimary(ctx, models.PrimaryCandidate(images).ID); err != nil {
				return infra("promote primary image", err)
			}
		}

		updated, err := q.MarkItemPublished(ctx, id)
		if err != nil {
			return infra("mark published", err)
		}
		published = toItem(updated)

		event := domainevents.ItemPublishedEvent{
			EventID:    uuid.New(),
			Version:    1,
			ItemID:     published.ID,
			PublicID:   published.PublicID,
			OccurredAt: time.Now().UTC(),
		}
		return publishTx(r.bus, tx, domainevents.TopicItemPublished, event.EventID, event)
	})
	if err != nil {
		return nil, err
	}
	return published, nil
}

// Unpublish flips the item back to draft. No precondition beyond existence.
func (r *ItemRepository) Unpublish(ctx context.Context, id int64) (*models.Item, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	q := db.New(r.db.DB())
	row, err := q.MarkItemUnpublished(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		return nil, infra("mark unpublished", err)
	}
	return toItem(row), nil
}

// SoftDelete sets is_deleted only when not already deleted. The returned bool
// is false for both not-found and already-deleted; callers disambiguate with
// an existence check if they care.
func (r *ItemRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	affected, err := db.New(r.db.DB()).SoftDeleteItem(ctx, id)
	if err != nil {
		return false, infra("soft delete item", err)
	}
	return affected > 0, nil
}

// Undelete clears is_deleted only when currently deleted. History is not
// preserved — the flag flips, nothing else.
func (r *ItemRepository) Undelete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	affected, err := db.New(r.db.DB()).UndeleteItem(ctx, id)
	if err != nil {
		return false, infra("undelete item", err)
	}
	return affected > 0, nil
}

func publishItemCreated(bus *events.EventBus, tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		PublicID:   item.PublicID,
		SKU:        item.SKU,
		Name:       item.Name,
		OccurredAt: item.CreatedAt,
	}
	return publishTx(bus, tx, domainevents.TopicItemCreated, event.EventID, event)
}
