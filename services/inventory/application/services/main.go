package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/linenlady/inventory/pkg/app"
	pkgcache "github.com/linenlady/inventory/pkg/cache"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/infrastructure/embedding"
	"github.com/linenlady/inventory/services/inventory/infrastructure/persistence/postgres"
)

// UploadURLSigner issues short-lived presigned PUT URLs for direct-to-storage
// uploads. Implemented by storage.ObjectStore.
type UploadURLSigner interface {
	PresignUpload(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}

// Embedder computes vectors for text. Implemented by embedding.Client.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
}

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Items      *ItemService
	Images     *ImageService
	Sessions   *SessionService
	Embeddings *EmbeddingService
}

// New wires all inventory application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	itemRepo := postgres.NewItemRepository(a.Db, a.EventBus)
	imageRepo := postgres.NewImageRepository(a.Db)
	sessionRepo := postgres.NewSessionRepository(a.Db, a.EventBus)
	vectorRepo := postgres.NewVectorRepository(a.Db)
	itemCache := pkgcache.NewItemCache(a.Redis)
	embedder := embedding.NewClient(a.Cfg)

	return &Services{
		Items:  NewItemService(itemRepo, itemCache),
		Images: NewImageService(imageRepo, itemRepo, a.Storage, a.Cfg.UploadURLExpiry),
		Sessions: NewSessionService(sessionRepo, itemRepo, a.Storage, SessionConfig{
			TTL:             a.Cfg.IntakeSessionTTL,
			PurgeRetention:  a.Cfg.SessionPurgeRetention,
			SweepBatchSize:  a.Cfg.SessionSweepBatchSize,
			UploadURLExpiry: a.Cfg.UploadURLExpiry,
		}),
		Embeddings: NewEmbeddingService(itemRepo, vectorRepo, embedder),
	}
}

// validateFilename rejects names that would escape the entity's storage
// namespace once joined onto its prefix.
func validateFilename(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: filename must not be empty", invdomain.ErrValidation)
	case len(name) > 200:
		return fmt.Errorf("%w: filename must not exceed 200 characters", invdomain.ErrValidation)
	case strings.ContainsAny(name, `/\`), strings.Contains(name, ".."):
		return fmt.Errorf("%w: filename must not contain path separators", invdomain.ErrValidation)
	}
	return nil
}
