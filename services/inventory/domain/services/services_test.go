package services

import (
	"errors"
	"testing"

	"github.com/linenlady/inventory/services/inventory/domain"
	"github.com/linenlady/inventory/services/inventory/domain/models"
)

func TestHashText_Deterministic(t *testing.T) {
	a := HashText("Vintage Tablecloth")
	b := HashText("Vintage Tablecloth")
	if a != b {
		t.Errorf("same input hashed differently: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if a == HashText("Vintage Tablecloth ") {
		t.Error("different input produced the same hash")
	}
}

func TestHashEqual(t *testing.T) {
	h := HashText("x")
	if !HashEqual(h, HashText("x")) {
		t.Error("equal hashes compared unequal")
	}
	if HashEqual(h, HashText("y")) {
		t.Error("unequal hashes compared equal")
	}
	if HashEqual(h, h[:32]) {
		t.Error("different lengths compared equal")
	}
}

func TestEmbeddingSourceText(t *testing.T) {
	desc := "  Hand-stitched hem.  "
	empty := "   "

	tests := []struct {
		name string
		item *models.Item
		want string
	}{
		{"name only", &models.Item{Name: " Tablecloth "}, "Tablecloth"},
		{"name and description", &models.Item{Name: "Tablecloth", Description: &desc}, "Tablecloth\n\nHand-stitched hem."},
		{"blank description collapses to name", &models.Item{Name: "Tablecloth", Description: &empty}, "Tablecloth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmbeddingSourceText(tt.item); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateForPublish(t *testing.T) {
	valid := func() *models.Item {
		return &models.Item{Name: "Tablecloth", PriceCents: 500}
	}

	t.Run("valid", func(t *testing.T) {
		if err := ValidateForPublish(valid(), 1); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("deleted item", func(t *testing.T) {
		item := valid()
		item.IsDeleted = true
		if err := ValidateForPublish(item, 1); !errors.Is(err, domain.ErrItemNotFound) {
			t.Errorf("err = %v, want ErrItemNotFound", err)
		}
	})

	t.Run("placeholder name", func(t *testing.T) {
		item := valid()
		item.Name = models.PlaceholderName
		if err := ValidateForPublish(item, 1); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		item := valid()
		item.PriceCents = 0
		if err := ValidateForPublish(item, 1); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("no images", func(t *testing.T) {
		if err := ValidateForPublish(valid(), 0); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})
}
