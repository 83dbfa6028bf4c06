package models

import "time"

// Image is an object-storage reference owned by exactly one Item.
// Invariant: at most one image per item has IsPrimary=true.
type Image struct {
	ID        int64
	ItemID    int64
	Path      string
	IsPrimary bool
	SortOrder int32
	CreatedAt time.Time
}

// PrimaryCandidate picks the image to promote when an item has images but no
// primary. Deterministic: lowest (SortOrder, ID). Returns nil for an empty set.
func PrimaryCandidate(images []*Image) *Image {
	var best *Image
	for _, img := range images {
		if best == nil ||
			img.SortOrder < best.SortOrder ||
			(img.SortOrder == best.SortOrder && img.ID < best.ID) {
			best = img
		}
	}
	return best
}

// HasPrimary reports whether any image in the set is marked primary.
func HasPrimary(images []*Image) bool {
	for _, img := range images {
		if img.IsPrimary {
			return true
		}
	}
	return false
}

// NextSortOrder returns one past the current maximum sort order, or 1 for an
// empty set. Must be computed inside the same transaction as the insert.
func NextSortOrder(images []*Image) int32 {
	var max int32
	for _, img := range images {
		if img.SortOrder > max {
			max = img.SortOrder
		}
	}
	return max + 1
}
