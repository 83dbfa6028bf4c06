package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linenlady/inventory/services/inventory/domain"
)

// SessionStatus is the lifecycle state of an intake session.
// Open is the only non-terminal state; Consumed, Expired and Abandoned are
// terminal — there are no transitions out of them.
type SessionStatus string

const (
	SessionOpen      SessionStatus = "open"
	SessionConsumed  SessionStatus = "consumed"
	SessionExpired   SessionStatus = "expired"
	SessionAbandoned SessionStatus = "abandoned"
)

// Terminal reports whether s is a terminal state.
func (s SessionStatus) Terminal() bool {
	return s == SessionConsumed || s == SessionExpired || s == SessionAbandoned
}

// Valid reports whether s is a known status value.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionOpen, SessionConsumed, SessionExpired, SessionAbandoned:
		return true
	}
	return false
}

// IntakeSession is a short-lived container for photos collected before an
// Item exists. The session and its photos are owned as a unit; purging the
// session cascades to its photos.
type IntakeSession struct {
	ID        int64
	PublicID  uuid.UUID
	CreatedBy uuid.UUID // uuid.Nil when the request was unauthenticated
	Source    string
	Status    SessionStatus
	ExpiresAt time.Time
	ItemID    *int64 // produced item; set exactly once on consume
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIntakeSession constructs an Open session expiring ttl from now.
func NewIntakeSession(createdBy uuid.UUID, source string, ttl time.Duration) *IntakeSession {
	now := time.Now().UTC()
	return &IntakeSession{
		PublicID:  uuid.New(),
		CreatedBy: createdBy,
		Source:    source,
		Status:    SessionOpen,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Expired reports whether the session TTL has elapsed at the given instant.
func (s *IntakeSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// CanAttachPhoto checks that photos may still be attached: status Open and
// TTL not elapsed.
func (s *IntakeSession) CanAttachPhoto(now time.Time) error {
	if s.Status != SessionOpen || s.Expired(now) {
		return fmt.Errorf("%w: status=%s expires_at=%s", domain.ErrSessionNotOpen, s.Status, s.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

// CanConsume checks whether promotion may run. A session that already recorded
// a produced item is handled by the caller as an idempotent replay before this
// check. Consumed-without-item is an internal consistency error.
func (s *IntakeSession) CanConsume(now time.Time) error {
	if s.Status == SessionConsumed && s.ItemID == nil {
		return domain.ErrSessionCorrupted
	}
	if s.Status != SessionOpen || s.Expired(now) {
		return fmt.Errorf("%w: status=%s expires_at=%s", domain.ErrSessionNotConsumable, s.Status, s.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

// PhotoPathPrefix returns the object-storage key prefix owned by the session:
// "intake/<public-id>/".
func (s *IntakeSession) PhotoPathPrefix() string {
	return PhotoPathPrefix(s.PublicID)
}

// PhotoPathPrefix builds the storage namespace prefix for a session public id.
func PhotoPathPrefix(publicID uuid.UUID) string {
	return fmt.Sprintf("intake/%s/", publicID)
}

// ValidatePhotoPath checks that path lies within the session's namespace.
func ValidatePhotoPath(publicID uuid.UUID, path string) error {
	if path == "" {
		return fmt.Errorf("%w: path must not be empty", domain.ErrValidation)
	}
	if !strings.HasPrefix(path, PhotoPathPrefix(publicID)) {
		return fmt.Errorf("%w: %q must start with %q", domain.ErrPathOutsideNamespace, path, PhotoPathPrefix(publicID))
	}
	return nil
}
