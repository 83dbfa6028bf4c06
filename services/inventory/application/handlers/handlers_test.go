package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	appsvcs "github.com/linenlady/inventory/services/inventory/application/services"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
)

// testRepo is a minimal in-memory backend for handler tests. It implements
// ItemRepository, ImageRepository and SessionRepository over plain maps.
type testRepo struct {
	items    map[int64]*models.Item
	images   map[int64][]*models.Image
	sessions map[int64]*models.IntakeSession
	photos   map[int64][]*models.IntakePhoto
	nextID   int64
}

func newTestRepo() *testRepo {
	return &testRepo{
		items:    make(map[int64]*models.Item),
		images:   make(map[int64][]*models.Image),
		sessions: make(map[int64]*models.IntakeSession),
		photos:   make(map[int64][]*models.IntakePhoto),
	}
}

func (r *testRepo) id() int64 {
	r.nextID++
	return r.nextID
}

func (r *testRepo) Create(_ context.Context, item *models.Item) error {
	for _, existing := range r.items {
		if existing.SKU == item.SKU {
			return invdomain.ErrSKUConflict
		}
	}
	item.ID = r.id()
	r.items[item.ID] = item
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (*models.Item, error) {
	item, ok := r.items[id]
	if !ok || item.IsDeleted {
		return nil, invdomain.ErrItemNotFound
	}
	return item, nil
}

func (r *testRepo) List(_ context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	var out []*models.Item
	for _, item := range r.items {
		if item.IsDeleted || (item.IsDraft && !opts.IncludeDrafts) {
			continue
		}
		out = append(out, item)
	}
	return out, len(out), nil
}

func (r *testRepo) UpdateFields(ctx context.Context, id int64, patch *models.ItemPatch) (*models.Item, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(item)
	return item, nil
}

func (r *testRepo) Publish(ctx context.Context, id int64, forcePrimary bool) (*models.Item, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if forcePrimary && len(r.images[id]) > 0 && !models.HasPrimary(r.images[id]) {
		models.PrimaryCandidate(r.images[id]).IsPrimary = true
	}
	item.IsDraft = false
	item.IsActive = true
	return item, nil
}

func (r *testRepo) Unpublish(ctx context.Context, id int64) (*models.Item, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.IsDraft = true
	item.IsActive = false
	return item, nil
}

func (r *testRepo) SoftDelete(_ context.Context, id int64) (bool, error) {
	item, ok := r.items[id]
	if !ok || item.IsDeleted {
		return false, nil
	}
	item.IsDeleted = true
	return true, nil
}

func (r *testRepo) Undelete(_ context.Context, id int64) (bool, error) {
	item, ok := r.items[id]
	if !ok || !item.IsDeleted {
		return false, nil
	}
	item.IsDeleted = false
	return true, nil
}

func (r *testRepo) Attach(ctx context.Context, itemID int64, params repositories.AttachImageParams) (*models.Image, error) {
	item, err := r.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateImagePath(item.PublicID, params.Path); err != nil {
		return nil, err
	}
	sortOrder := params.SortOrder
	if sortOrder <= 0 {
		sortOrder = models.NextSortOrder(r.images[itemID])
	}
	img := &models.Image{ID: r.id(), ItemID: itemID, Path: params.Path, IsPrimary: params.IsPrimary, SortOrder: sortOrder}
	r.images[itemID] = append(r.images[itemID], img)
	return img, nil
}

func (r *testRepo) Remove(_ context.Context, itemID, imageID int64) (bool, error) {
	for i, img := range r.images[itemID] {
		if img.ID == imageID {
			r.images[itemID] = append(r.images[itemID][:i], r.images[itemID][i+1:]...)
			return img.IsPrimary, nil
		}
	}
	return false, invdomain.ErrImageNotFound
}

func (r *testRepo) RepromotePrimaryIfMissing(_ context.Context, _ int64) error { return nil }

func (r *testRepo) ListByItem(_ context.Context, itemID int64) ([]*models.Image, error) {
	return r.images[itemID], nil
}

func (r *testRepo) CreateSession(_ context.Context, session *models.IntakeSession) error {
	session.ID = r.id()
	r.sessions[session.ID] = session
	return nil
}

func (r *testRepo) GetSession(_ context.Context, id int64) (*models.IntakeSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, invdomain.ErrSessionNotFound
	}
	return session, nil
}

func (r *testRepo) AttachPhoto(_ context.Context, sessionID int64, params repositories.AttachPhotoParams) (*models.IntakePhoto, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, invdomain.ErrSessionNotFound
	}
	if err := session.CanAttachPhoto(time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := models.ValidatePhotoPath(session.PublicID, params.BlobPath); err != nil {
		return nil, err
	}
	photo := &models.IntakePhoto{ID: r.id(), SessionID: sessionID, BlobPath: params.BlobPath, SortOrder: params.SortOrder, IsPrimary: params.IsPrimary, ContentHash: params.ContentHash}
	r.photos[sessionID] = append(r.photos[sessionID], photo)
	return photo, nil
}

func (r *testRepo) ListPhotos(_ context.Context, sessionID int64) ([]*models.IntakePhoto, error) {
	return r.photos[sessionID], nil
}

func (r *testRepo) Consume(ctx context.Context, sessionID int64, defaults repositories.ConsumeDefaults) (int64, bool, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return 0, false, invdomain.ErrSessionNotFound
	}
	if session.ItemID != nil {
		return *session.ItemID, false, nil
	}
	if err := session.CanConsume(time.Now().UTC()); err != nil {
		return 0, false, err
	}
	if len(r.photos[sessionID]) == 0 {
		return 0, false, invdomain.ErrNoPhotosAttached
	}
	sku := defaults.SKU
	if sku == "" {
		sku = "SKU-" + uuid.New().String()[:8]
	}
	item, err := models.NewItem(sku, defaults.Name, defaults.Quantity, defaults.PriceCents)
	if err != nil {
		return 0, false, err
	}
	if err := r.Create(ctx, item); err != nil {
		return 0, false, err
	}
	for _, p := range r.photos[sessionID] {
		r.images[item.ID] = append(r.images[item.ID], &models.Image{ID: r.id(), ItemID: item.ID, Path: p.BlobPath, IsPrimary: p.IsPrimary, SortOrder: p.SortOrder})
	}
	if !models.HasPrimary(r.images[item.ID]) {
		models.PrimaryCandidate(r.images[item.ID]).IsPrimary = true
	}
	session.Status = models.SessionConsumed
	session.ItemID = &item.ID
	return item.ID, true, nil
}

func (r *testRepo) Abandon(_ context.Context, sessionID int64) error {
	session, ok := r.sessions[sessionID]
	if !ok {
		return invdomain.ErrSessionNotFound
	}
	if session.Status != models.SessionOpen {
		return invdomain.ErrSessionNotOpen
	}
	session.Status = models.SessionAbandoned
	return nil
}

func (r *testRepo) SweepExpired(_ context.Context, _ int) (int, error) { return 0, nil }

func (r *testRepo) Purge(_ context.Context, _ time.Duration, _ int) (int, error) { return 0, nil }

// sessionAdapter maps the SessionRepository method set onto testRepo, whose
// Create/GetByID names are taken by the item methods.
type sessionAdapter struct{ *testRepo }

func (a sessionAdapter) Create(ctx context.Context, s *models.IntakeSession) error {
	return a.CreateSession(ctx, s)
}

func (a sessionAdapter) GetByID(ctx context.Context, id int64) (*models.IntakeSession, error) {
	return a.GetSession(ctx, id)
}

type testSigner struct{}

func (testSigner) PresignUpload(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	return "https://storage.local/" + objectPath + "?sig=test", nil
}

func newTestRouter() (chi.Router, *testRepo) {
	repo := newTestRepo()
	svcs := &appsvcs.Services{
		Items:  appsvcs.NewItemService(repo, nil),
		Images: appsvcs.NewImageService(repo, repo, testSigner{}, time.Minute),
		Sessions: appsvcs.NewSessionService(sessionAdapter{repo}, repo, testSigner{}, appsvcs.SessionConfig{
			TTL:             time.Hour,
			PurgeRetention:  24 * time.Hour,
			SweepBatchSize:  100,
			UploadURLExpiry: time.Minute,
		}),
	}

	r := chi.NewRouter()
	r.Route("/items", func(r chi.Router) {
		r.Post("/", NewCreateItemHandler(svcs).Execute)
		r.Get("/", NewListItemsHandler(svcs).Execute)
		r.Route("/{itemID}", func(r chi.Router) {
			r.Get("/", NewGetItemHandler(svcs).Execute)
			r.Patch("/", NewPatchItemHandler(svcs).Execute)
			r.Delete("/", NewDeleteItemHandler(svcs).Execute)
			r.Post("/undelete", NewUndeleteItemHandler(svcs).Execute)
			r.Post("/publish", NewPublishItemHandler(svcs).Execute)
			r.Post("/unpublish", NewUnpublishItemHandler(svcs).Execute)
			r.Route("/images", func(r chi.Router) {
				r.Get("/", NewListImagesHandler(svcs).Execute)
				r.Post("/", NewAttachImageHandler(svcs).Execute)
				r.Post("/upload-url", NewItemUploadURLHandler(svcs).Execute)
				r.Delete("/{imageID}", NewRemoveImageHandler(svcs).Execute)
			})
		})
	})
	r.Route("/intake/sessions", func(r chi.Router) {
		r.Post("/", NewCreateSessionHandler(svcs).Execute)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", NewGetSessionHandler(svcs).Execute)
			r.Get("/photos", NewListPhotosHandler(svcs).Execute)
			r.Post("/photos", NewAttachPhotoHandler(svcs).Execute)
			r.Post("/upload-url", NewSessionUploadURLHandler(svcs).Execute)
			r.Post("/consume", NewConsumeSessionHandler(svcs).Execute)
			r.Post("/abandon", NewAbandonSessionHandler(svcs).Execute)
		})
	})
	return r, repo
}

func doJSON(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestItemEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/items", `{"sku":"SKU-1","name":"Chair","quantity":2,"price_cents":500}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	created := decodeBody[ItemResponse](t, w)
	if !created.IsDraft || created.SKU != "SKU-1" {
		t.Errorf("created = %+v, want draft SKU-1", created)
	}

	t.Run("missing sku rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/items", `{"name":"No SKU"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", w.Code)
		}
	})

	t.Run("duplicate sku conflicts", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/items", `{"sku":"SKU-1"}`)
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})

	t.Run("unknown item is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/items/9999", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/items/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("patch null clears description", func(t *testing.T) {
		target := fmt.Sprintf("/items/%d", created.ID)
		w := doJSON(t, router, http.MethodPatch, target, `{"description":"linen"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("set description: status = %d, body %s", w.Code, w.Body.String())
		}
		w = doJSON(t, router, http.MethodPatch, target, `{"description":null}`)
		if w.Code != http.StatusOK {
			t.Fatalf("clear description: status = %d, body %s", w.Code, w.Body.String())
		}
		patched := decodeBody[ItemResponse](t, w)
		if patched.Description != nil {
			t.Errorf("description = %q, want cleared", *patched.Description)
		}
	})

	t.Run("patch null name rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/items/%d", created.ID), `{"name":null}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", w.Code)
		}
	})

	t.Run("delete is 204", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/items/%d", created.ID), "")
		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
	})
}

func TestImageEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/items", `{"sku":"SKU-1","name":"Chair"}`)
	item := decodeBody[ItemResponse](t, w)
	prefix := fmt.Sprintf("items/%s/", item.PublicID)

	t.Run("upload url inside namespace", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/%d/images/upload-url", item.ID), `{"filename":"front.jpg"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		resp := decodeBody[UploadURLResponse](t, w)
		if !strings.HasPrefix(resp.Path, prefix) {
			t.Errorf("path %q outside namespace %q", resp.Path, prefix)
		}
		if resp.UploadURL == "" {
			t.Error("empty upload url")
		}
	})

	t.Run("foreign path rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/%d/images", item.ID), `{"path":"items/other/front.jpg"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", w.Code)
		}
	})

	t.Run("attach does not promote", func(t *testing.T) {
		body := fmt.Sprintf(`{"path":%q}`, prefix+"front.jpg")
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/%d/images", item.ID), body)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		img := decodeBody[ImageResponse](t, w)
		if img.IsPrimary {
			t.Errorf("image = %+v, non-primary attach was promoted", img)
		}
		if img.SortOrder != 1 {
			t.Errorf("sort order = %d, want 1", img.SortOrder)
		}
	})

	t.Run("publish with empty body promotes a primary", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/%d/publish", item.ID), "")
		if w.Code != http.StatusOK {
			t.Fatalf("publish status = %d, body %s", w.Code, w.Body.String())
		}
		w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/items/%d/images", item.ID), "")
		if w.Code != http.StatusOK {
			t.Fatalf("list status = %d", w.Code)
		}
		images := decodeBody[[]ImageResponse](t, w)
		primaries := 0
		for _, img := range images {
			if img.IsPrimary {
				primaries++
			}
		}
		if primaries != 1 {
			t.Errorf("primaries = %d, want exactly 1 after publish", primaries)
		}
	})

	t.Run("explicit opt-out skips promotion", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/items", `{"sku":"SKU-2","name":"Stool"}`)
		other := decodeBody[ItemResponse](t, w)
		body := fmt.Sprintf(`{"path":%q}`, fmt.Sprintf("items/%s/side.jpg", other.PublicID))
		if w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/%d/images", other.ID), body); w.Code != http.StatusCreated {
			t.Fatalf("attach status = %d, body %s", w.Code, w.Body.String())
		}
		if w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/%d/publish", other.ID), `{"force_primary_image":false}`); w.Code != http.StatusOK {
			t.Fatalf("publish status = %d, body %s", w.Code, w.Body.String())
		}
		w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/items/%d/images", other.ID), "")
		images := decodeBody[[]ImageResponse](t, w)
		for _, img := range images {
			if img.IsPrimary {
				t.Errorf("image %d primary despite opt-out", img.ID)
			}
		}
	})
}

func TestSessionEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/intake/sessions", `{"source":"mobile"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status = %d, body %s", w.Code, w.Body.String())
	}
	session := decodeBody[SessionResponse](t, w)
	if session.Status != "open" || session.Source != "mobile" {
		t.Errorf("session = %+v, want open mobile", session)
	}

	blobPath := fmt.Sprintf("intake/%s/001.jpg", session.PublicID)
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/intake/sessions/%d/photos", session.ID),
		fmt.Sprintf(`{"blob_path":%q,"sort_order":1,"is_primary":true}`, blobPath))
	if w.Code != http.StatusCreated {
		t.Fatalf("attach photo: status = %d, body %s", w.Code, w.Body.String())
	}

	consumeTarget := fmt.Sprintf("/intake/sessions/%d/consume", session.ID)
	w = doJSON(t, router, http.MethodPost, consumeTarget, `{"name":"Tablecloth","price_cents":900}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("consume: status = %d, body %s", w.Code, w.Body.String())
	}
	first := decodeBody[ConsumeSessionResponse](t, w)
	if !first.Created {
		t.Error("first consume must report created")
	}

	t.Run("replay is 200 with the same item", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, consumeTarget, `{}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		replay := decodeBody[ConsumeSessionResponse](t, w)
		if replay.Created {
			t.Error("replay reported created")
		}
		if replay.Item.ID != first.Item.ID {
			t.Errorf("replay item = %d, want %d", replay.Item.ID, first.Item.ID)
		}
	})

	t.Run("abandon after consume conflicts", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/intake/sessions/%d/abandon", session.ID), "")
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})
}
