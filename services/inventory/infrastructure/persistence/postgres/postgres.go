// Package postgres implements the inventory domain repositories against
// PostgreSQL. Every multi-statement mutation runs inside one transaction via
// database.WithTx; per-entity critical sections are serialized with
// SELECT ... FOR UPDATE row locks.
package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/linenlady/inventory/pkg/database"
	"github.com/linenlady/inventory/pkg/events"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/infrastructure/persistence/postgres/db"
)

// infra wraps infrastructure failures in ErrUnavailable so callers never
// mistake a timeout for a semantic result. Semantic errors pass through.
func infra(op string, err error) error {
	if database.IsUnavailable(err) {
		return fmt.Errorf("%w: %s: %v", invdomain.ErrUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// publishTx publishes a JSON-encoded domain event on the transaction tx so it
// commits or rolls back with the row changes. No-op when bus is nil (tests,
// migrations).
func publishTx(bus *events.EventBus, tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	if bus == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

func toItem(row db.InventoryItem) *models.Item {
	item := &models.Item{
		ID:         row.ID,
		PublicID:   row.PublicID,
		SKU:        row.Sku,
		Name:       row.Name,
		Quantity:   row.Quantity,
		PriceCents: row.PriceCents,
		IsDraft:    row.IsDraft,
		IsActive:   row.IsActive,
		IsDeleted:  row.IsDeleted,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.Description.Valid {
		d := row.Description.String
		item.Description = &d
	}
	return item
}

func toImage(row db.ItemImage) *models.Image {
	return &models.Image{
		ID:        row.ID,
		ItemID:    row.ItemID,
		Path:      row.Path,
		IsPrimary: row.IsPrimary,
		SortOrder: row.SortOrder,
		CreatedAt: row.CreatedAt,
	}
}

func toImages(rows []db.ItemImage) []*models.Image {
	images := make([]*models.Image, len(rows))
	for i, row := range rows {
		images[i] = toImage(row)
	}
	return images
}

func toSession(row db.IntakeSession) *models.IntakeSession {
	s := &models.IntakeSession{
		ID:        row.ID,
		PublicID:  row.PublicID,
		Source:    row.Source,
		Status:    models.SessionStatus(row.Status),
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.CreatedBy.Valid {
		s.CreatedBy = row.CreatedBy.UUID
	}
	if row.ItemID.Valid {
		id := row.ItemID.Int64
		s.ItemID = &id
	}
	return s
}

func toPhoto(row db.IntakePhoto) *models.IntakePhoto {
	p := &models.IntakePhoto{
		ID:        row.ID,
		SessionID: row.SessionID,
		BlobPath:  row.BlobPath,
		SortOrder: row.SortOrder,
		IsPrimary: row.IsPrimary,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.ContentHash.Valid {
		h := row.ContentHash.String
		p.ContentHash = &h
	}
	return p
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
