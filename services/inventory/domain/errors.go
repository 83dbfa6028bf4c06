package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist or is soft-deleted.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemDeleted indicates the operation targets a soft-deleted item.
	ErrItemDeleted = errors.New("item is deleted")

	// ErrImageNotFound indicates the image does not exist for the given item.
	ErrImageNotFound = errors.New("image not found")

	// ErrSessionNotFound indicates the intake session does not exist.
	ErrSessionNotFound = errors.New("intake session not found")

	// ErrSessionNotOpen indicates the session is not Open or its TTL has elapsed,
	// so photos can no longer be attached.
	ErrSessionNotOpen = errors.New("intake session is not open or has expired")

	// ErrSessionNotConsumable indicates a consume was attempted on a session
	// that is not Open/unexpired and has no recorded produced item.
	ErrSessionNotConsumable = errors.New("intake session cannot be consumed")

	// ErrSessionCorrupted indicates a session marked Consumed without a recorded
	// produced item. Promotion is never re-run for such sessions.
	ErrSessionCorrupted = errors.New("intake session consumed without produced item")

	// ErrNoPhotosAttached indicates a consume was attempted on a session with no photos.
	ErrNoPhotosAttached = errors.New("intake session has no photos attached")

	// ErrSKUConflict indicates an item with the same SKU already exists.
	ErrSKUConflict = errors.New("sku already exists")

	// ErrDuplicateSortOrder indicates a photo sort order collision within a session.
	ErrDuplicateSortOrder = errors.New("sort order already used in this session")

	// ErrImagePathConflict indicates the path is already attached to the item.
	ErrImagePathConflict = errors.New("image path already attached to item")

	// ErrPathOutsideNamespace indicates a storage path that does not begin with
	// the owning entity's namespace prefix.
	ErrPathOutsideNamespace = errors.New("storage path outside entity namespace")

	// ErrValidation indicates a field constraint or publish precondition violation.
	// Always wrapped with a message identifying the violated rule.
	ErrValidation = errors.New("validation failed")

	// ErrEmbeddingNotFound indicates no embedding record exists for (item, purpose, model).
	ErrEmbeddingNotFound = errors.New("embedding not found")

	// ErrUnavailable indicates a retryable infrastructure failure (timeout,
	// connectivity). Never conflated with not-found.
	ErrUnavailable = errors.New("storage temporarily unavailable")
)
