package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/linenlady/inventory/pkg/database"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/infrastructure/persistence/postgres/db"
)

// VectorRepository implements repositories.VectorRepository. Records are
// keyed (item, purpose, model) with a unique index; Upsert relies on
// ON CONFLICT so concurrent refreshes of the same key last-write-win without
// ever violating uniqueness.
type VectorRepository struct {
	db *database.Database
}

// NewVectorRepository returns a VectorRepository backed by the given pool.
func NewVectorRepository(d *database.Database) *VectorRepository {
	return &VectorRepository{db: d}
}

// Get returns the embedding record for (item, purpose, model).
func (r *VectorRepository) Get(ctx context.Context, itemID int64, purpose, model string) (*models.EmbeddingRecord, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	row, err := db.New(r.db.DB()).GetEmbedding(ctx, db.GetEmbeddingParams{
		ItemID:  itemID,
		Purpose: purpose,
		Model:   model,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrEmbeddingNotFound
		}
		return nil, infra("query embedding", err)
	}
	return toEmbedding(row)
}

// Upsert inserts or overwrites the record and reports whether a new row was
// created. The vector is stored as a JSON float array.
func (r *VectorRepository) Upsert(ctx context.Context, rec *models.EmbeddingRecord) (bool, error) {
	ctx, cancel := r.db.OpContext(ctx)
	defer cancel()

	vector, err := json.Marshal(rec.Vector)
	if err != nil {
		return false, fmt.Errorf("marshal vector: %w", err)
	}

	row, err := db.New(r.db.DB()).UpsertEmbedding(ctx, db.UpsertEmbeddingParams{
		ItemID:      rec.ItemID,
		Purpose:     rec.Purpose,
		Model:       rec.Model,
		Dimensions:  rec.Dimensions,
		ContentHash: rec.ContentHash,
		Vector:      string(vector),
	})
	if err != nil {
		return false, infra("upsert embedding", err)
	}
	rec.ID = row.ID
	rec.CreatedAt = row.CreatedAt
	rec.UpdatedAt = row.UpdatedAt
	return row.Inserted, nil
}

func toEmbedding(row db.ItemEmbedding) (*models.EmbeddingRecord, error) {
	var vector []float32
	if err := json.Unmarshal([]byte(row.Vector), &vector); err != nil {
		return nil, fmt.Errorf("unmarshal vector: %w", err)
	}
	return &models.EmbeddingRecord{
		ID:          row.ID,
		ItemID:      row.ItemID,
		Purpose:     row.Purpose,
		Model:       row.Model,
		Dimensions:  row.Dimensions,
		ContentHash: row.ContentHash,
		Vector:      vector,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
