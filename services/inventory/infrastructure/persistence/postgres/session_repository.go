package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linenlady/inventory/pkg/database"
	"github.com/linenlady/inventory/pkg/events"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	domainevents "github.com/linenlady/inventory/services/inventory/domain/events"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
	"github.com/linenlady/inventory/services/inventory/infrastructure/persistence/postgres/db"
)

// SessionRepository implements repositories.SessionRepository. AttachPhoto and
// Consume take the session row lock for the whole transaction, so a photo can
// never slip into a session that a concurrent consume is finalizing, and two
// concurrent consumes resolve to a single promotion.
type SessionRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewSessionRepository returns a SessionRepository backed by the given pool
// and event bus.
func NewSessionRepository(d *database.Database, bus *events.EventBus) *SessionRepository {
	return &SessionRepository{db: d, bus: bus}
}

// Create inserts an Open session. The generated id is written back.
func (r *SessionRepository) Create(ctx context.Context, session *models.IntakeSession) error {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	createdBy := uuid.NullUUID{}
	if session.CreatedBy != uuid.Nil {
		createdBy = uuid.NullUUID{UUID: session.CreatedBy, Valid: true}
	}

	row, err := db.New(r.db.DB()).InsertSession(ctx, db.InsertSessionParams{
		PublicID:  session.PublicID,
		CreatedBy: createdBy,
		Source:    session.Source,
		Status:    string(session.Status),
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return infra("insert session", err)
	}
	*session = *toSession(row)
	return nil
}

// GetByID returns the session regardless of status.
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.IntakeSession, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	row, err := db.New(r.db.DB()).GetSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrSessionNotFound
		}
		return nil, infra("query session", err)
	}
	return toSession(row), nil
}

// AttachPhoto locks the session row, checks Open+unexpired, and upserts the
// photo keyed on (session, blob path) so upload-confirmation retries update
// rather than duplicate. A primary photo clears other primaries first.
func (r *SessionRepository) AttachPhoto(ctx context.Context, sessionID int64, params repositories.AttachPhotoParams) (*models.IntakePhoto, error) {
	var attached *models.IntakePhoto
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		row, err := q.GetSessionForUpdate(ctx, sessionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrSessionNotFound
			}
			return infra("lock session", err)
		}
		session := toSession(row)

		if err := session.CanAttachPhoto(time.Now().UTC()); err != nil {
			return err
		}
		if err := models.ValidatePhotoPath(session.PublicID, params.BlobPath); err != nil {
			return err
		}

		if params.IsPrimary {
			if err := q.ClearPrimaryPhotos(ctx, db.ClearPrimaryPhotosParams{
				SessionID: sessionID,
				BlobPath:  params.BlobPath,
			}); err != nil {
				return infra("clear primary photos", err)
			}
		}

		photoRow, err := q.UpsertPhoto(ctx, db.UpsertPhotoParams{
			SessionID:   sessionID,
			BlobPath:    params.BlobPath,
			SortOrder:   params.SortOrder,
			IsPrimary:   params.IsPrimary,
			ContentHash: nullString(params.ContentHash),
		})
		if err != nil {
			if database.IsUniqueViolation(err, "intake_photos_session_order_key") {
				return invdomain.ErrDuplicateSortOrder
			}
			return infra("upsert photo", err)
		}
		attached = toPhoto(photoRow)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attached, nil
}

// ListPhotos returns the session's photos ordered by (sort_order, id).
func (r *SessionRepository) ListPhotos(ctx context.Context, sessionID int64) ([]*models.IntakePhoto, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	rows, err := db.New(r.db.DB()).ListPhotosBySession(ctx, sessionID)
	if err != nil {
		return nil, infra("list photos", err)
	}
	photos := make([]*models.IntakePhoto, len(rows))
	for i, row := range rows {
		photos[i] = toPhoto(row)
	}
	return photos, nil
}

// Consume promotes the session into a new draft item exactly once:
//
//  1. Lock the session row for the remainder of the transaction.
//  2. A recorded produced item means idempotent replay — return it unchanged.
//  3. Otherwise require Open+unexpired and at least one photo.
//  4. Insert the draft item, copy photos to images preserving sort order and
//     primary flag, re-establish the primary invariant, mark the session
//     Consumed with the produced item id.
//
// Everything commits or rolls back as one unit; no partial promotion is ever
// visible. ItemCreatedEvent and SessionConsumedEvent commit with it.
func (r *SessionRepository) Consume(ctx context.Context, sessionID int64, defaults repositories.ConsumeDefaults) (int64, bool, error) {
	var (
		itemID  int64
		created bool
	)
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		row, err := q.GetSessionForUpdate(ctx, sessionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrSessionNotFound
			}
			return infra("lock session", err)
		}
		session := toSession(row)

		if session.ItemID != nil {
			itemID = *session.ItemID
			created = false
			return nil
		}

		now := time.Now().UTC()
		if err := session.CanConsume(now); err != nil {
			return err
		}

		photoRows, err := q.ListPhotosBySession(ctx, sessionID)
		if err != nil {
			return infra("list photos", err)
		}
		if len(photoRows) == 0 {
			return invdomain.ErrNoPhotosAttached
		}

		item, err := newPromotedItem(defaults)
		if err != nil {
			return err
		}

		itemRow, err := q.InsertItem(ctx, db.InsertItemParams{
			PublicID:    item.PublicID,
			Sku:         item.SKU,
			Name:        item.Name,
			Description: nullString(item.Description),
			Quantity:    item.Quantity,
			PriceCents:  item.PriceCents,
			IsDraft:     true,
			IsActive:    false,
			CreatedAt:   now,
		})
		if err != nil {
			if database.IsUniqueViolation(err, "inventory_items_sku_key") {
				return invdomain.ErrSKUConflict
			}
			return infra("insert promoted item", err)
		}
		promoted := toItem(itemRow)

		hasPrimary := false
		var firstImageID int64
		for i, photo := range photoRows {
			imgRow, err := q.InsertImage(ctx, db.InsertImageParams{
				ItemID:    promoted.ID,
				Path:      photo.BlobPath,
				IsPrimary: photo.IsPrimary,
				SortOrder: photo.SortOrder,
				CreatedAt: now,
			})
			if err != nil {
				return infra("copy photo to image", err)
			}
			if i == 0 {
				firstImageID = imgRow.ID
			}
			if photo.IsPrimary {
				hasPrimary = true
			}
		}

		// Photos are ordered (sort_order, id); when none was primary the
		// first copied image is the deterministic candidate.
		if !hasPrimary {
			if err := q.SetImagePrimary(ctx, firstImageID); err != nil {
				return infra("promote primary image", err)
			}
		}

		if err := q.MarkSessionConsumed(ctx, db.MarkSessionConsumedParams{
			ID:     sessionID,
			ItemID: sql.NullInt64{Int64: promoted.ID, Valid: true},
		}); err != nil {
			return infra("mark session consumed", err)
		}

		if err := publishItemCreated(r.bus, tx, promoted); err != nil {
			return err
		}
		consumedEvent := domainevents.SessionConsumedEvent{
			EventID:    uuid.New(),
			Version:    1,
			SessionID:  sessionID,
			ItemID:     promoted.ID,
			PhotoCount: len(photoRows),
			OccurredAt: now,
		}
		if err := publishTx(r.bus, tx, domainevents.TopicSessionConsumed, consumedEvent.EventID, consumedEvent); err != nil {
			return err
		}

		itemID = promoted.ID
		created = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return itemID, created, nil
}

// Abandon transitions an Open session to the terminal Abandoned state.
func (r *SessionRepository) Abandon(ctx context.Context, sessionID int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetSessionForUpdate(ctx, sessionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invdomain.ErrSessionNotFound
			}
			return infra("lock session", err)
		}
		if models.SessionStatus(row.Status) != models.SessionOpen {
			return fmt.Errorf("%w: status=%s", invdomain.ErrSessionNotOpen, row.Status)
		}
		if _, err := q.MarkSessionAbandoned(ctx, sessionID); err != nil {
			return infra("mark session abandoned", err)
		}
		return nil
	})
}

// SweepExpired claims and expires up to batchSize overdue Open sessions,
// oldest expiry first. FOR UPDATE SKIP LOCKED makes concurrent sweeps claim
// disjoint rows, so the sweep is safe to run from multiple schedulers.
func (r *SessionRepository) SweepExpired(ctx context.Context, batchSize int) (int, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	ids, err := db.New(r.db.DB()).SweepExpiredSessions(ctx, int32(batchSize))
	if err != nil {
		return 0, infra("sweep expired sessions", err)
	}
	return len(ids), nil
}

// Purge permanently deletes terminal-state sessions older than the cutoff,
// cascading their photos. Open sessions are never purged regardless of age.
func (r *SessionRepository) Purge(ctx context.Context, olderThan time.Duration, batchSize int) (int, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	ids, err := db.New(r.db.DB()).PurgeSessions(ctx, db.PurgeSessionsParams{
		UpdatedAt: time.Now().UTC().Add(-olderThan),
		Limit:     int32(batchSize),
	})
	if err != nil {
		return 0, infra("purge sessions", err)
	}
	return len(ids), nil
}

// newPromotedItem builds the draft item a session promotes into. Empty name
// falls back to the placeholder (which publish rejects); empty sku derives
// from the fresh public id.
func newPromotedItem(defaults repositories.ConsumeDefaults) (*models.Item, error) {
	sku := defaults.SKU
	publicID := uuid.New()
	if sku == "" {
		sku = "SKU-" + publicID.String()[:8]
	}
	item, err := models.NewItem(sku, defaults.Name, defaults.Quantity, defaults.PriceCents)
	if err != nil {
		return nil, err
	}
	item.PublicID = publicID
	return item, nil
}
