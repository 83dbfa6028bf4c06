package models

import "time"

// EmbeddingRecord is an externally computed vector keyed by (item, purpose,
// model). ContentHash is the digest of the canonical source text the vector
// was computed from; a matching hash means the record is current.
type EmbeddingRecord struct {
	ID          int64
	ItemID      int64
	Purpose     string
	Model       string
	Dimensions  int32
	ContentHash string
	Vector      []float32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RefreshOutcome reports what an embedding refresh did.
type RefreshOutcome string

const (
	RefreshCreated   RefreshOutcome = "created"
	RefreshUpdated   RefreshOutcome = "updated"
	RefreshUnchanged RefreshOutcome = "unchanged"
)
