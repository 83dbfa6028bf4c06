package services

import (
	"context"
	"errors"
	"testing"

	invdomain "github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
)

func TestItemService_Create(t *testing.T) {
	store := newFakeStore()
	svc := NewItemService(store, nil)

	t.Run("valid draft", func(t *testing.T) {
		item, err := svc.Create(context.Background(), CreateItemInput{SKU: "SKU-1", Name: "Chair", Quantity: 2, PriceCents: 500})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if !item.IsDraft || item.ID == 0 {
			t.Errorf("item = %+v, want assigned draft", item)
		}
	})

	t.Run("duplicate sku", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateItemInput{SKU: "SKU-1", Name: "Other"})
		if !errors.Is(err, invdomain.ErrSKUConflict) {
			t.Errorf("err = %v, want ErrSKUConflict", err)
		}
	})

	t.Run("invalid description never reaches the store", func(t *testing.T) {
		before := len(store.items)
		long := string(make([]byte, 4001))
		_, err := svc.Create(context.Background(), CreateItemInput{SKU: "SKU-2", Description: &long})
		if !errors.Is(err, invdomain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
		if len(store.items) != before {
			t.Error("invalid create wrote to the store")
		}
	})
}

func TestItemService_Update(t *testing.T) {
	store := newFakeStore()
	svc := NewItemService(store, nil)

	item, err := svc.Create(context.Background(), CreateItemInput{SKU: "SKU-1", Name: "Chair", PriceCents: 100})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("empty patch returns current item without a write", func(t *testing.T) {
		before := store.updateCalls
		got, err := svc.Update(context.Background(), item.ID, &models.ItemPatch{})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Name != "Chair" {
			t.Errorf("name = %q, want Chair", got.Name)
		}
		if store.updateCalls != before {
			t.Error("empty patch issued a store update")
		}
	})

	t.Run("invalid patch makes no store call", func(t *testing.T) {
		before := store.updateCalls
		patch := &models.ItemPatch{}
		patch.Quantity.Set = true
		patch.Quantity.Valid = true
		patch.Quantity.Value = -1
		if _, err := svc.Update(context.Background(), item.ID, patch); !errors.Is(err, invdomain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
		if store.updateCalls != before {
			t.Error("invalid patch issued a store update")
		}
	})

	t.Run("present fields applied", func(t *testing.T) {
		patch := &models.ItemPatch{}
		patch.Name.Set = true
		patch.Name.Valid = true
		patch.Name.Value = "Oak Chair"
		got, err := svc.Update(context.Background(), item.ID, patch)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Name != "Oak Chair" || got.SKU != "SKU-1" {
			t.Errorf("item = %+v", got)
		}
	})
}

func TestItemService_DeleteUndelete(t *testing.T) {
	store := newFakeStore()
	svc := NewItemService(store, nil)

	item, err := svc.Create(context.Background(), CreateItemInput{SKU: "SKU-1", Name: "Chair"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), item.ID); !errors.Is(err, invdomain.ErrItemNotFound) {
		t.Errorf("deleted item visible: err = %v", err)
	}

	// Repeated delete is a no-op, not an error.
	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Errorf("repeat delete: %v", err)
	}

	restored, err := svc.Undelete(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("Undelete: %v", err)
	}
	if restored.IsDeleted {
		t.Error("item still flagged deleted after undelete")
	}

	// Undeleting a live item is idempotent.
	if _, err := svc.Undelete(context.Background(), item.ID); err != nil {
		t.Errorf("repeat undelete: %v", err)
	}
}

func TestItemService_Publish(t *testing.T) {
	store := newFakeStore()
	items := NewItemService(store, nil)
	images := NewImageService(store, store, &fakeSigner{}, 0)

	item, err := items.Create(context.Background(), CreateItemInput{SKU: "SKU-1", Name: "Chair", PriceCents: 500})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("refused without images", func(t *testing.T) {
		if _, err := items.Publish(context.Background(), item.ID, false); !errors.Is(err, invdomain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	if _, err := images.Attach(context.Background(), item.ID, attachParams(item, "front.jpg")); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	t.Run("publish promotes a missing primary", func(t *testing.T) {
		got, err := items.Publish(context.Background(), item.ID, true)
		if err != nil {
			t.Fatalf("Publish: %v", err)
		}
		if got.IsDraft || !got.IsActive {
			t.Errorf("item = %+v, want published", got)
		}
		imgs, err := images.List(context.Background(), item.ID)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if countPrimaries(imgs) != 1 {
			t.Errorf("primaries = %d, want 1 after publish", countPrimaries(imgs))
		}
	})

	t.Run("unpublish reverts to draft", func(t *testing.T) {
		got, err := items.Unpublish(context.Background(), item.ID)
		if err != nil {
			t.Fatalf("Unpublish: %v", err)
		}
		if !got.IsDraft || got.IsActive {
			t.Errorf("item = %+v, want draft", got)
		}
	})
}
