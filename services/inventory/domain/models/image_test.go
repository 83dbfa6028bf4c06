package models

import "testing"

func TestPrimaryCandidate(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		if got := PrimaryCandidate(nil); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("lowest sort order wins", func(t *testing.T) {
		images := []*Image{
			{ID: 1, SortOrder: 3},
			{ID: 2, SortOrder: 1},
			{ID: 3, SortOrder: 2},
		}
		if got := PrimaryCandidate(images); got.ID != 2 {
			t.Errorf("got id %d, want 2", got.ID)
		}
	})

	t.Run("id breaks sort order ties", func(t *testing.T) {
		images := []*Image{
			{ID: 9, SortOrder: 1},
			{ID: 4, SortOrder: 1},
		}
		if got := PrimaryCandidate(images); got.ID != 4 {
			t.Errorf("got id %d, want 4", got.ID)
		}
	})
}

func TestHasPrimary(t *testing.T) {
	if HasPrimary([]*Image{{ID: 1}, {ID: 2}}) {
		t.Error("no image is primary, got true")
	}
	if !HasPrimary([]*Image{{ID: 1}, {ID: 2, IsPrimary: true}}) {
		t.Error("one image is primary, got false")
	}
}

func TestNextSortOrder(t *testing.T) {
	if got := NextSortOrder(nil); got != 1 {
		t.Errorf("empty set: got %d, want 1", got)
	}
	images := []*Image{{SortOrder: 2}, {SortOrder: 7}, {SortOrder: 4}}
	if got := NextSortOrder(images); got != 8 {
		t.Errorf("got %d, want 8", got)
	}
}
