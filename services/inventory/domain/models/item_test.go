package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/linenlady/inventory/services/inventory/domain"
)

func TestNewItem_Defaults(t *testing.T) {
	item, err := NewItem("SKU-1", "", 2, 500)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if item.Name != PlaceholderName {
		t.Errorf("name = %q, want placeholder %q", item.Name, PlaceholderName)
	}
	if !item.IsDraft || item.IsActive {
		t.Errorf("new item must be an inactive draft, got draft=%v active=%v", item.IsDraft, item.IsActive)
	}
	if item.PublicID == uuid.Nil {
		t.Error("public id not assigned")
	}
}

func TestNewItem_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		sku        string
		itemName   string
		quantity   int32
		priceCents int64
	}{
		{"empty sku", "", "Chair", 1, 100},
		{"whitespace sku", "   ", "Chair", 1, 100},
		{"long sku", strings.Repeat("x", 65), "Chair", 1, 100},
		{"long name", "SKU-1", strings.Repeat("x", 256), 1, 100},
		{"negative quantity", "SKU-1", "Chair", -1, 100},
		{"negative price", "SKU-1", "Chair", 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.sku, tt.itemName, tt.quantity, tt.priceCents)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	publicID := uuid.New()
	prefix := ImagePathPrefix(publicID)

	t.Run("inside namespace", func(t *testing.T) {
		if err := ValidateImagePath(publicID, prefix+"front.jpg"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("outside namespace", func(t *testing.T) {
		err := ValidateImagePath(publicID, "items/"+uuid.NewString()+"/front.jpg")
		if !errors.Is(err, domain.ErrPathOutsideNamespace) {
			t.Errorf("err = %v, want ErrPathOutsideNamespace", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if err := ValidateImagePath(publicID, ""); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("bare prefix without filename still inside", func(t *testing.T) {
		if err := ValidateImagePath(publicID, prefix); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription(strings.Repeat("x", 4000)); err != nil {
		t.Errorf("max-length description rejected: %v", err)
	}
	if err := ValidateDescription(strings.Repeat("x", 4001)); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
