package models

import (
	"errors"
	"testing"
	"time"

	"github.com/ghuser/grocerylist/services/grocery/domain"
)

func TestNewGroceryItem(t *testing.T) {
	name := ItemName("Eggs")

	t.Run("starts unpersisted and not completed", func(t *testing.T) {
		item := NewGroceryItem(name)
		if item.ID != 0 {
			t.Fatalf("expected zero ID before save, got %v", item.ID)
		}
		if item.Completed {
			t.Fatal("expected new item to be uncompleted")
		}
		if item.Name != name {
			t.Fatalf("expected Name %v, got %v", name, item.Name)
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item := NewGroceryItem(name)
		after := time.Now().UTC()
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
		if item.CreatedAt.Location() != time.UTC {
			t.Fatalf("expected UTC, got %v", item.CreatedAt.Location())
		}
	})
}

func TestGroceryItem_Rename(t *testing.T) {
	item := NewGroceryItem("Milk")
	old := item.Rename("Oat Milk")
	if old != "Milk" {
		t.Fatalf("expected old name %q, got %q", "Milk", old)
	}
	if item.Name != "Oat Milk" {
		t.Fatalf("expected new name %q, got %q", "Oat Milk", item.Name)
	}
}

func TestGroceryItem_TogglePair(t *testing.T) {
	item := NewGroceryItem("Bread")

	if !item.Toggle() || item.StateLabel() != StateCompleted {
		t.Fatalf("first toggle: got completed=%v label=%q", item.Completed, item.StateLabel())
	}
	if item.Toggle() || item.StateLabel() != StateUncompleted {
		t.Fatalf("second toggle: got completed=%v label=%q", item.Completed, item.StateLabel())
	}
}

func TestParseItemID(t *testing.T) {
	tests := []struct {
		in      string
		want    ItemID
		wantErr bool
	}{
		{"1", 1, false},
		{"9001", 9001, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"12abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseItemID(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidItemID) {
					t.Fatalf("ParseItemID(%q) error = %v, want ErrInvalidItemID", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseItemID(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestItemID_String(t *testing.T) {
	if ItemID(42).String() != "42" {
		t.Fatalf("unexpected string: %q", ItemID(42).String())
	}
}
