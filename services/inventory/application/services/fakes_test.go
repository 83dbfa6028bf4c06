package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
	"github.com/linenlady/inventory/services/inventory/domain/repositories"
	domainsvcs "github.com/linenlady/inventory/services/inventory/domain/services"
)

// fakeStore is an in-memory ItemRepository + ImageRepository sharing state,
// mirroring the transactional semantics of the postgres implementations.
type fakeStore struct {
	items       map[int64]*models.Item
	images      map[int64][]*models.Image
	nextItemID  int64
	nextImageID int64
	updateCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:  make(map[int64]*models.Item),
		images: make(map[int64][]*models.Image),
	}
}

func (f *fakeStore) Create(_ context.Context, item *models.Item) error {
	for _, existing := range f.items {
		if existing.SKU == item.SKU {
			return invdomain.ErrSKUConflict
		}
	}
	f.nextItemID++
	item.ID = f.nextItemID
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok || item.IsDeleted {
		return nil, invdomain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeStore) List(_ context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	var out []*models.Item
	for _, item := range f.items {
		if item.IsDeleted || (item.IsDraft && !opts.IncludeDrafts) {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeStore) UpdateFields(_ context.Context, id int64, patch *models.ItemPatch) (*models.Item, error) {
	f.updateCalls++
	item, ok := f.items[id]
	if !ok || item.IsDeleted {
		return nil, invdomain.ErrItemNotFound
	}
	if patch.SKU.Set {
		for otherID, other := range f.items {
			if otherID != id && other.SKU == patch.SKU.Value {
				return nil, invdomain.ErrSKUConflict
			}
		}
	}
	patch.Apply(item)
	item.UpdatedAt = time.Now().UTC()
	cp := *item
	return &cp, nil
}

func (f *fakeStore) Publish(_ context.Context, id int64, forcePrimary bool) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok || item.IsDeleted {
		return nil, invdomain.ErrItemNotFound
	}
	images := f.images[id]
	if err := domainsvcs.ValidateForPublish(item, len(images)); err != nil {
		return nil, err
	}
	if forcePrimary && !models.HasPrimary(images) {
		models.PrimaryCandidate(images).IsPrimary = true
	}
	item.IsDraft = false
	item.IsActive = true
	cp := *item
	return &cp, nil
}

func (f *fakeStore) Unpublish(_ context.Context, id int64) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok || item.IsDeleted {
		return nil, invdomain.ErrItemNotFound
	}
	item.IsDraft = true
	item.IsActive = false
	cp := *item
	return &cp, nil
}

func (f *fakeStore) SoftDelete(_ context.Context, id int64) (bool, error) {
	item, ok := f.items[id]
	if !ok || item.IsDeleted {
		return false, nil
	}
	item.IsDeleted = true
	return true, nil
}

func (f *fakeStore) Undelete(_ context.Context, id int64) (bool, error) {
	item, ok := f.items[id]
	if !ok || !item.IsDeleted {
		return false, nil
	}
	item.IsDeleted = false
	return true, nil
}

func (f *fakeStore) Attach(_ context.Context, itemID int64, params repositories.AttachImageParams) (*models.Image, error) {
	item, ok := f.items[itemID]
	if !ok || item.IsDeleted {
		return nil, invdomain.ErrItemNotFound
	}
	if err := models.ValidateImagePath(item.PublicID, params.Path); err != nil {
		return nil, err
	}
	images := f.images[itemID]
	for _, img := range images {
		if img.Path == params.Path {
			return nil, invdomain.ErrImagePathConflict
		}
	}
	sortOrder := params.SortOrder
	if sortOrder <= 0 {
		sortOrder = models.NextSortOrder(images)
	}
	if params.IsPrimary {
		for _, img := range images {
			img.IsPrimary = false
		}
	}
	f.nextImageID++
	img := &models.Image{
		ID:        f.nextImageID,
		ItemID:    itemID,
		Path:      params.Path,
		IsPrimary: params.IsPrimary,
		SortOrder: sortOrder,
		CreatedAt: time.Now().UTC(),
	}
	f.images[itemID] = append(images, img)
	cp := *img
	return &cp, nil
}

func (f *fakeStore) Remove(_ context.Context, itemID, imageID int64) (bool, error) {
	if _, ok := f.items[itemID]; !ok {
		return false, invdomain.ErrItemNotFound
	}
	images := f.images[itemID]
	for i, img := range images {
		if img.ID == imageID {
			wasPrimary := img.IsPrimary
			f.images[itemID] = append(images[:i], images[i+1:]...)
			if wasPrimary {
				f.repromote(itemID)
			}
			return wasPrimary, nil
		}
	}
	return false, invdomain.ErrImageNotFound
}

func (f *fakeStore) RepromotePrimaryIfMissing(_ context.Context, itemID int64) error {
	if _, ok := f.items[itemID]; !ok {
		return invdomain.ErrItemNotFound
	}
	f.repromote(itemID)
	return nil
}

func (f *fakeStore) ListByItem(_ context.Context, itemID int64) ([]*models.Image, error) {
	images := f.images[itemID]
	out := make([]*models.Image, len(images))
	for i, img := range images {
		cp := *img
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeStore) repromote(itemID int64) {
	images := f.images[itemID]
	if len(images) == 0 || models.HasPrimary(images) {
		return
	}
	models.PrimaryCandidate(images).IsPrimary = true
}

// fakeSessionRepo is an in-memory SessionRepository with the same
// promote-exactly-once semantics as the postgres implementation.
type fakeSessionRepo struct {
	sessions      map[int64]*models.IntakeSession
	photos        map[int64][]*models.IntakePhoto
	items         *fakeStore
	nextSessionID int64
	nextPhotoID   int64
}

func newFakeSessionRepo(items *fakeStore) *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[int64]*models.IntakeSession),
		photos:   make(map[int64][]*models.IntakePhoto),
		items:    items,
	}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *models.IntakeSession) error {
	f.nextSessionID++
	session.ID = f.nextSessionID
	cp := *session
	f.sessions[session.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id int64) (*models.IntakeSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, invdomain.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (f *fakeSessionRepo) AttachPhoto(_ context.Context, sessionID int64, params repositories.AttachPhotoParams) (*models.IntakePhoto, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, invdomain.ErrSessionNotFound
	}
	if err := session.CanAttachPhoto(time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := models.ValidatePhotoPath(session.PublicID, params.BlobPath); err != nil {
		return nil, err
	}
	photos := f.photos[sessionID]
	if params.IsPrimary {
		for _, p := range photos {
			if p.BlobPath != params.BlobPath {
				p.IsPrimary = false
			}
		}
	}
	for _, p := range photos {
		if p.BlobPath == params.BlobPath {
			p.SortOrder = params.SortOrder
			p.IsPrimary = params.IsPrimary
			p.ContentHash = params.ContentHash
			cp := *p
			return &cp, nil
		}
	}
	for _, p := range photos {
		if p.SortOrder == params.SortOrder {
			return nil, invdomain.ErrDuplicateSortOrder
		}
	}
	f.nextPhotoID++
	photo := &models.IntakePhoto{
		ID:          f.nextPhotoID,
		SessionID:   sessionID,
		BlobPath:    params.BlobPath,
		SortOrder:   params.SortOrder,
		IsPrimary:   params.IsPrimary,
		ContentHash: params.ContentHash,
	}
	f.photos[sessionID] = append(photos, photo)
	cp := *photo
	return &cp, nil
}

func (f *fakeSessionRepo) ListPhotos(_ context.Context, sessionID int64) ([]*models.IntakePhoto, error) {
	photos := f.photos[sessionID]
	out := make([]*models.IntakePhoto, len(photos))
	for i, p := range photos {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeSessionRepo) Consume(ctx context.Context, sessionID int64, defaults repositories.ConsumeDefaults) (int64, bool, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return 0, false, invdomain.ErrSessionNotFound
	}
	if session.ItemID != nil {
		return *session.ItemID, false, nil
	}
	now := time.Now().UTC()
	if err := session.CanConsume(now); err != nil {
		return 0, false, err
	}
	photos := f.photos[sessionID]
	if len(photos) == 0 {
		return 0, false, invdomain.ErrNoPhotosAttached
	}

	sku := defaults.SKU
	publicID := uuid.New()
	if sku == "" {
		sku = "SKU-" + publicID.String()[:8]
	}
	item, err := models.NewItem(sku, defaults.Name, defaults.Quantity, defaults.PriceCents)
	if err != nil {
		return 0, false, err
	}
	item.PublicID = publicID
	if err := f.items.Create(ctx, item); err != nil {
		return 0, false, err
	}

	hasPrimary := false
	for _, p := range photos {
		f.items.nextImageID++
		f.items.images[item.ID] = append(f.items.images[item.ID], &models.Image{
			ID:        f.items.nextImageID,
			ItemID:    item.ID,
			Path:      p.BlobPath,
			IsPrimary: p.IsPrimary,
			SortOrder: p.SortOrder,
		})
		if p.IsPrimary {
			hasPrimary = true
		}
	}
	if !hasPrimary {
		f.items.repromote(item.ID)
	}

	session.Status = models.SessionConsumed
	session.ItemID = &item.ID
	return item.ID, true, nil
}

func (f *fakeSessionRepo) Abandon(_ context.Context, sessionID int64) error {
	session, ok := f.sessions[sessionID]
	if !ok {
		return invdomain.ErrSessionNotFound
	}
	if session.Status != models.SessionOpen {
		return invdomain.ErrSessionNotOpen
	}
	session.Status = models.SessionAbandoned
	return nil
}

func (f *fakeSessionRepo) SweepExpired(_ context.Context, batchSize int) (int, error) {
	now := time.Now().UTC()
	n := 0
	for _, session := range f.sessions {
		if n >= batchSize {
			break
		}
		if session.Status == models.SessionOpen && session.Expired(now) {
			session.Status = models.SessionExpired
			n++
		}
	}
	return n, nil
}

func (f *fakeSessionRepo) Purge(_ context.Context, olderThan time.Duration, batchSize int) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	n := 0
	for id, session := range f.sessions {
		if n >= batchSize {
			break
		}
		if session.Status.Terminal() && session.UpdatedAt.Before(cutoff) {
			delete(f.sessions, id)
			delete(f.photos, id)
			n++
		}
	}
	return n, nil
}

// fakeVectorRepo is an in-memory VectorRepository.
type fakeVectorRepo struct {
	records map[string]*models.EmbeddingRecord
	nextID  int64
}

func newFakeVectorRepo() *fakeVectorRepo {
	return &fakeVectorRepo{records: make(map[string]*models.EmbeddingRecord)}
}

func vectorKey(itemID int64, purpose, model string) string {
	return fmt.Sprintf("%d/%s/%s", itemID, purpose, model)
}

func (f *fakeVectorRepo) Get(_ context.Context, itemID int64, purpose, model string) (*models.EmbeddingRecord, error) {
	rec, ok := f.records[vectorKey(itemID, purpose, model)]
	if !ok {
		return nil, invdomain.ErrEmbeddingNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeVectorRepo) Upsert(_ context.Context, rec *models.EmbeddingRecord) (bool, error) {
	key := vectorKey(rec.ItemID, rec.Purpose, rec.Model)
	_, exists := f.records[key]
	if !exists {
		f.nextID++
		rec.ID = f.nextID
	}
	rec.UpdatedAt = time.Now().UTC()
	cp := *rec
	f.records[key] = &cp
	return !exists, nil
}

// fakeEmbedder counts calls and returns a fixed vector.
type fakeEmbedder struct {
	calls int
	err   error
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (f *fakeEmbedder) Model() string { return "test-embedding-model" }

// fakeSigner returns a deterministic URL for any path.
type fakeSigner struct {
	calls int
}

func (f *fakeSigner) PresignUpload(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	f.calls++
	return "https://storage.local/" + objectPath + "?sig=test", nil
}
