package services

import (
	"context"
	"fmt"
	"time"

	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
)

// ImageService manages images attached to items. Invariant protection (at
// most one primary, path namespace, deterministic repromotion) lives in the
// repository transactions; this layer adds existence checks and upload URL
// issuance.
type ImageService struct {
	images repositories.ImageRepository
	items  repositories.ItemRepository
	signer UploadURLSigner
	expiry time.Duration
}

// NewImageService returns an ImageService wired with the given repositories
// and upload signer.
func NewImageService(images repositories.ImageRepository, items repositories.ItemRepository, signer UploadURLSigner, expiry time.Duration) *ImageService {
	return &ImageService{images: images, items: items, signer: signer, expiry: expiry}
}

// Attach records an image for the item. A requested primary demotes the
// current one. Attaching never promotes on its own; a missing primary is
// repaired on primary removal, publish, or session promotion.
func (s *ImageService) Attach(ctx context.Context, itemID int64, params repositories.AttachImageParams) (*models.Image, error) {
	img, err := s.images.Attach(ctx, itemID, params)
	if err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}
	return img, nil
}

// Remove deletes the image and reports whether it was the primary. When it
// was, the repository promotes a deterministic successor in the same
// transaction.
func (s *ImageService) Remove(ctx context.Context, itemID, imageID int64) (bool, error) {
	wasPrimary, err := s.images.Remove(ctx, itemID, imageID)
	if err != nil {
		return false, fmt.Errorf("remove image: %w", err)
	}
	return wasPrimary, nil
}

// List returns the item's images ordered by (sort_order, id). The item must
// exist and not be deleted.
func (s *ImageService) List(ctx context.Context, itemID int64) ([]*models.Image, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	images, err := s.images.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

// IssueUploadURL returns the storage path inside the item's namespace plus a
// presigned PUT URL for it. The client uploads directly to object storage and
// then calls Attach with the returned path.
func (s *ImageService) IssueUploadURL(ctx context.Context, itemID int64, filename string) (path, url string, err error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return "", "", fmt.Errorf("issue upload url: %w", err)
	}
	if err := validateFilename(filename); err != nil {
		return "", "", err
	}

	path = item.ImagePathPrefix() + filename
	if err := models.ValidateImagePath(item.PublicID, path); err != nil {
		return "", "", err
	}

	url, err = s.signer.PresignUpload(ctx, path, s.expiry)
	if err != nil {
		return "", "", fmt.Errorf("issue upload url: %w", err)
	}
	return path, url, nil
}
