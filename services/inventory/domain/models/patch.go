package models

import (
	"encoding/json"
	"fmt"

	"github.com/linenlady/inventory/services/inventory/domain"
)

// Patch is a tri-state JSON field: absent (Set=false), explicit null
// (Set=true, Valid=false), or a value (Set=true, Valid=true). Absent means
// "leave unchanged"; null means "clear" and is only legal for nullable fields.
type Patch[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON is only invoked when the field is present in the payload, so
// presence alone flips Set.
func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Valid = false
		return nil
	}
	p.Valid = true
	return json.Unmarshal(b, &p.Value)
}

// ItemPatch is a partial update of an Item. Only Description may be set to
// null; explicit null on any other field fails validation.
type ItemPatch struct {
	SKU         Patch[string] `json:"sku"`
	Name        Patch[string] `json:"name"`
	Description Patch[string] `json:"description"`
	Quantity    Patch[int32]  `json:"quantity"`
	PriceCents  Patch[int64]  `json:"price_cents"`
}

// Empty reports whether the patch carries no fields at all.
func (p *ItemPatch) Empty() bool {
	return !p.SKU.Set && !p.Name.Set && !p.Description.Set && !p.Quantity.Set && !p.PriceCents.Set
}

// Validate checks every present field before any write happens. A validation
// failure here means no database call is made.
func (p *ItemPatch) Validate() error {
	if err := p.requireNonNull(); err != nil {
		return err
	}
	if p.SKU.Set {
		if err := ValidateSKU(p.SKU.Value); err != nil {
			return err
		}
	}
	if p.Name.Set {
		if err := ValidateName(p.Name.Value); err != nil {
			return err
		}
	}
	if p.Description.Set && p.Description.Valid {
		if err := ValidateDescription(p.Description.Value); err != nil {
			return err
		}
	}
	if p.Quantity.Set {
		if err := ValidateQuantity(p.Quantity.Value); err != nil {
			return err
		}
	}
	if p.PriceCents.Set {
		if err := ValidatePriceCents(p.PriceCents.Value); err != nil {
			return err
		}
	}
	return nil
}

func (p *ItemPatch) requireNonNull() error {
	for field, patch := range map[string]bool{
		"sku":         p.SKU.Set && !p.SKU.Valid,
		"name":        p.Name.Set && !p.Name.Valid,
		"quantity":    p.Quantity.Set && !p.Quantity.Valid,
		"price_cents": p.PriceCents.Set && !p.PriceCents.Valid,
	} {
		if patch {
			return fmt.Errorf("%w: %s must not be null", domain.ErrValidation, field)
		}
	}
	return nil
}

// Apply writes the present fields onto item, returning whether anything was
// touched. Used by in-memory fakes and as the reference semantics for the SQL
// CASE-based update.
func (p *ItemPatch) Apply(item *Item) bool {
	changed := false
	if p.SKU.Set {
		item.SKU = p.SKU.Value
		changed = true
	}
	if p.Name.Set {
		item.Name = p.Name.Value
		changed = true
	}
	if p.Description.Set {
		if p.Description.Valid {
			v := p.Description.Value
			item.Description = &v
		} else {
			item.Description = nil
		}
		changed = true
	}
	if p.Quantity.Set {
		item.Quantity = p.Quantity.Value
		changed = true
	}
	if p.PriceCents.Set {
		item.PriceCents = p.PriceCents.Value
		changed = true
	}
	return changed
}
