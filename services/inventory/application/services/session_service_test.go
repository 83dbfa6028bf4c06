package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
)

func testSessionConfig() SessionConfig {
	return SessionConfig{
		TTL:             time.Hour,
		PurgeRetention:  24 * time.Hour,
		SweepBatchSize:  100,
		UploadURLExpiry: time.Minute,
	}
}

func newSessionFixture() (*fakeStore, *fakeSessionRepo, *SessionService) {
	store := newFakeStore()
	repo := newFakeSessionRepo(store)
	svc := NewSessionService(repo, store, &fakeSigner{}, testSessionConfig())
	return store, repo, svc
}

func attachPhoto(t *testing.T, svc *SessionService, session *models.IntakeSession, filename string, sortOrder int32, primary bool) *models.IntakePhoto {
	t.Helper()
	photo, err := svc.AttachPhoto(context.Background(), session.ID, repositories.AttachPhotoParams{
		BlobPath:  session.PhotoPathPrefix() + filename,
		SortOrder: sortOrder,
		IsPrimary: primary,
	})
	if err != nil {
		t.Fatalf("AttachPhoto %s: %v", filename, err)
	}
	return photo
}

func TestSessionService_Create(t *testing.T) {
	_, _, svc := newSessionFixture()

	session, err := svc.Create(context.Background(), uuid.Nil, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if session.Source != "api" {
		t.Errorf("source = %q, want api default", session.Source)
	}
	if session.Status != models.SessionOpen {
		t.Errorf("status = %s, want open", session.Status)
	}
	if !session.ExpiresAt.After(time.Now().UTC()) {
		t.Error("session created already expired")
	}
}

func TestSessionService_Consume(t *testing.T) {
	store, _, svc := newSessionFixture()
	ctx := context.Background()

	session, err := svc.Create(ctx, uuid.Nil, "mobile")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("no photos refused", func(t *testing.T) {
		_, _, err := svc.Consume(ctx, session.ID, repositories.ConsumeDefaults{})
		if !errors.Is(err, invdomain.ErrNoPhotosAttached) {
			t.Errorf("err = %v, want ErrNoPhotosAttached", err)
		}
	})

	attachPhoto(t, svc, session, "one.jpg", 1, true)
	attachPhoto(t, svc, session, "two.jpg", 2, false)

	item, created, err := svc.Consume(ctx, session.ID, repositories.ConsumeDefaults{})
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if !created {
		t.Error("first consume must report created")
	}
	if !item.IsDraft {
		t.Error("promoted item must start as a draft")
	}
	if !strings.HasPrefix(item.SKU, "SKU-") {
		t.Errorf("sku = %q, want generated SKU- prefix", item.SKU)
	}

	images := store.images[item.ID]
	if len(images) != 2 {
		t.Fatalf("copied images = %d, want 2", len(images))
	}
	primaries := 0
	for _, img := range images {
		if img.IsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Errorf("primaries = %d, want exactly 1", primaries)
	}

	t.Run("replay returns same item without creating", func(t *testing.T) {
		again, created, err := svc.Consume(ctx, session.ID, repositories.ConsumeDefaults{})
		if err != nil {
			t.Fatalf("replay: %v", err)
		}
		if created {
			t.Error("replay reported created")
		}
		if again.ID != item.ID {
			t.Errorf("replay item = %d, want %d", again.ID, item.ID)
		}
	})
}

func TestSessionService_Consume_PromotesPrimaryWhenNoneMarked(t *testing.T) {
	store, _, svc := newSessionFixture()
	ctx := context.Background()

	session, err := svc.Create(ctx, uuid.Nil, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	attachPhoto(t, svc, session, "b.jpg", 2, false)
	attachPhoto(t, svc, session, "a.jpg", 1, false)

	item, _, err := svc.Consume(ctx, session.ID, repositories.ConsumeDefaults{Name: "Tablecloth", PriceCents: 900})
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}

	var primary *models.Image
	for _, img := range store.images[item.ID] {
		if img.IsPrimary {
			primary = img
		}
	}
	if primary == nil {
		t.Fatal("no primary promoted")
	}
	if !strings.HasSuffix(primary.Path, "a.jpg") {
		t.Errorf("primary = %q, want lowest sort order a.jpg", primary.Path)
	}
}

func TestSessionService_Abandon(t *testing.T) {
	_, _, svc := newSessionFixture()
	ctx := context.Background()

	session, err := svc.Create(ctx, uuid.Nil, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Abandon(ctx, session.ID); err != nil {
		t.Fatalf("Abandon: %v", err)
	}

	t.Run("attach refused after abandon", func(t *testing.T) {
		_, err := svc.AttachPhoto(ctx, session.ID, repositories.AttachPhotoParams{
			BlobPath:  session.PhotoPathPrefix() + "late.jpg",
			SortOrder: 1,
		})
		if !errors.Is(err, invdomain.ErrSessionNotOpen) {
			t.Errorf("err = %v, want ErrSessionNotOpen", err)
		}
	})

	t.Run("consume refused after abandon", func(t *testing.T) {
		_, _, err := svc.Consume(ctx, session.ID, repositories.ConsumeDefaults{})
		if !errors.Is(err, invdomain.ErrSessionNotConsumable) {
			t.Errorf("err = %v, want ErrSessionNotConsumable", err)
		}
	})

	t.Run("repeat abandon refused", func(t *testing.T) {
		if err := svc.Abandon(ctx, session.ID); !errors.Is(err, invdomain.ErrSessionNotOpen) {
			t.Errorf("err = %v, want ErrSessionNotOpen", err)
		}
	})
}

func TestSessionService_IssueUploadURL(t *testing.T) {
	_, repo, svc := newSessionFixture()
	ctx := context.Background()

	session, err := svc.Create(ctx, uuid.Nil, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("path inside session namespace", func(t *testing.T) {
		path, url, err := svc.IssueUploadURL(ctx, session.ID, "shot.jpg")
		if err != nil {
			t.Fatalf("IssueUploadURL: %v", err)
		}
		if !strings.HasPrefix(path, session.PhotoPathPrefix()) {
			t.Errorf("path %q outside namespace %q", path, session.PhotoPathPrefix())
		}
		if url == "" {
			t.Error("empty upload url")
		}
	})

	t.Run("traversal filename refused", func(t *testing.T) {
		if _, _, err := svc.IssueUploadURL(ctx, session.ID, "../escape.jpg"); !errors.Is(err, invdomain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("expired session refused", func(t *testing.T) {
		repo.sessions[session.ID].ExpiresAt = time.Now().UTC().Add(-time.Minute)
		if _, _, err := svc.IssueUploadURL(ctx, session.ID, "shot.jpg"); !errors.Is(err, invdomain.ErrSessionNotOpen) {
			t.Errorf("err = %v, want ErrSessionNotOpen", err)
		}
	})
}

func TestSessionService_Maintenance(t *testing.T) {
	_, repo, svc := newSessionFixture()
	ctx := context.Background()

	open, err := svc.Create(ctx, uuid.Nil, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	overdue, err := svc.Create(ctx, uuid.Nil, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	repo.sessions[overdue.ID].ExpiresAt = time.Now().UTC().Add(-time.Hour)

	swept, err := svc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if swept != 1 {
		t.Errorf("swept = %d, want 1", swept)
	}
	if repo.sessions[overdue.ID].Status != models.SessionExpired {
		t.Errorf("status = %s, want expired", repo.sessions[overdue.ID].Status)
	}
	if repo.sessions[open.ID].Status != models.SessionOpen {
		t.Error("live session swept")
	}

	// Only terminal sessions past the retention window are purged.
	repo.sessions[overdue.ID].UpdatedAt = time.Now().UTC().Add(-48 * time.Hour)
	purged, err := svc.PurgeOld(ctx)
	if err != nil {
		t.Fatalf("PurgeOld: %v", err)
	}
	if purged != 1 {
		t.Errorf("purged = %d, want 1", purged)
	}
	if _, err := svc.GetByID(ctx, overdue.ID); !errors.Is(err, invdomain.ErrSessionNotFound) {
		t.Errorf("purged session still readable: err = %v", err)
	}
	if _, err := svc.GetByID(ctx, open.ID); err != nil {
		t.Errorf("live session purged: %v", err)
	}
}
