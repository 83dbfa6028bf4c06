package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
)

// defaultSessionSource labels sessions created without an explicit source.
const defaultSessionSource = "api"

// SessionConfig carries the tunables for intake session handling.
type SessionConfig struct {
	TTL             time.Duration
	PurgeRetention  time.Duration
	SweepBatchSize  int
	UploadURLExpiry time.Duration
}

// SessionService manages intake photo sessions: the photograph-first flow
// where photos are collected before any item exists, then promoted into a
// draft item exactly once.
type SessionService struct {
	sessions repositories.SessionRepository
	items    repositories.ItemRepository
	signer   UploadURLSigner
	cfg      SessionConfig
}

// NewSessionService returns a SessionService wired with the given
// repositories, upload signer and tunables.
func NewSessionService(sessions repositories.SessionRepository, items repositories.ItemRepository, signer UploadURLSigner, cfg SessionConfig) *SessionService {
	return &SessionService{sessions: sessions, items: items, signer: signer, cfg: cfg}
}

// Create opens a new session expiring TTL from now. createdBy is uuid.Nil for
// unauthenticated requests.
func (s *SessionService) Create(ctx context.Context, createdBy uuid.UUID, source string) (*models.IntakeSession, error) {
	if source == "" {
		source = defaultSessionSource
	}
	session := models.NewIntakeSession(createdBy, source, s.cfg.TTL)
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// GetByID returns the session regardless of status.
func (s *SessionService) GetByID(ctx context.Context, id int64) (*models.IntakeSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// AttachPhoto records a photo for an Open, unexpired session. Re-attaching
// the same blob path updates the existing record instead of duplicating it.
func (s *SessionService) AttachPhoto(ctx context.Context, sessionID int64, params repositories.AttachPhotoParams) (*models.IntakePhoto, error) {
	photo, err := s.sessions.AttachPhoto(ctx, sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("attach photo: %w", err)
	}
	return photo, nil
}

// ListPhotos returns the session's photos ordered by (sort_order, id).
func (s *SessionService) ListPhotos(ctx context.Context, sessionID int64) ([]*models.IntakePhoto, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	photos, err := s.sessions.ListPhotos(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

// Consume promotes the session into a draft item exactly once and returns the
// produced item. Replays return the same item with created=false.
func (s *SessionService) Consume(ctx context.Context, sessionID int64, defaults repositories.ConsumeDefaults) (*models.Item, bool, error) {
	itemID, created, err := s.sessions.Consume(ctx, sessionID, defaults)
	if err != nil {
		return nil, false, fmt.Errorf("consume session: %w", err)
	}
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, false, fmt.Errorf("consume session: load item: %w", err)
	}
	return item, created, nil
}

// Abandon transitions an Open session to the terminal Abandoned state.
func (s *SessionService) Abandon(ctx context.Context, sessionID int64) error {
	if err := s.sessions.Abandon(ctx, sessionID); err != nil {
		return fmt.Errorf("abandon session: %w", err)
	}
	return nil
}

// IssueUploadURL returns a storage path inside the session's namespace plus a
// presigned PUT URL. Closed or expired sessions are refused so no URL can
// outlive its session.
func (s *SessionService) IssueUploadURL(ctx context.Context, sessionID int64, filename string) (path, url string, err error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return "", "", fmt.Errorf("issue upload url: %w", err)
	}
	if err := session.CanAttachPhoto(time.Now().UTC()); err != nil {
		return "", "", err
	}
	if err := validateFilename(filename); err != nil {
		return "", "", err
	}

	path = session.PhotoPathPrefix() + filename
	if err := models.ValidatePhotoPath(session.PublicID, path); err != nil {
		return "", "", err
	}

	url, err = s.signer.PresignUpload(ctx, path, s.cfg.UploadURLExpiry)
	if err != nil {
		return "", "", fmt.Errorf("issue upload url: %w", err)
	}
	return path, url, nil
}

// SweepExpired expires one batch of overdue Open sessions and returns how
// many were transitioned.
func (s *SessionService) SweepExpired(ctx context.Context) (int, error) {
	n, err := s.sessions.SweepExpired(ctx, s.cfg.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	return n, nil
}

// PurgeOld permanently removes one batch of terminal sessions older than the
// retention window, cascading their photos.
func (s *SessionService) PurgeOld(ctx context.Context) (int, error) {
	n, err := s.sessions.Purge(ctx, s.cfg.PurgeRetention, s.cfg.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return n, nil
}
