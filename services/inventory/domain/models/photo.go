package models

import "time"

// IntakePhoto is a photo attached to an intake session while it is Open.
// (SessionID, BlobPath) is unique — re-attaching the same path updates the
// existing row, which makes upload-confirmation retries safe.
type IntakePhoto struct {
	ID          int64
	SessionID   int64
	BlobPath    string
	SortOrder   int32
	IsPrimary   bool
	ContentHash *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PhotoPrimaryCandidate mirrors PrimaryCandidate for intake photos:
// lowest (SortOrder, ID).
func PhotoPrimaryCandidate(photos []*IntakePhoto) *IntakePhoto {
	var best *IntakePhoto
	for _, p := range photos {
		if best == nil ||
			p.SortOrder < best.SortOrder ||
			(p.SortOrder == best.SortOrder && p.ID < best.ID) {
			best = p
		}
	}
	return best
}
