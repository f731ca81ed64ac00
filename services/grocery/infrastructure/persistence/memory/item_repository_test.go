package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	itemdomain "github.com/ghuser/grocerylist/services/grocery/domain"
	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

func mustSave(t *testing.T, r *ItemRepository, name models.ItemName) *models.GroceryItem {
	t.Helper()
	item := models.NewGroceryItem(name)
	if err := r.Save(context.Background(), item); err != nil {
		t.Fatalf("save %q: %v", name, err)
	}
	return item
}

func TestSave_AssignsIncreasingIDs(t *testing.T) {
	r := NewItemRepository()
	a := mustSave(t, r, "Apples")
	b := mustSave(t, r, "Bread")
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected IDs 1 and 2, got %d and %d", a.ID, b.ID)
	}
}

func TestSave_RejectsPersistedItem(t *testing.T) {
	r := NewItemRepository()
	item := mustSave(t, r, "Apples")
	if err := r.Save(context.Background(), item); err == nil {
		t.Fatal("expected error saving an item twice")
	}
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	r := NewItemRepository()
	item := mustSave(t, r, "Apples")

	got, err := r.GetByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.Name = "Mutated"

	again, _ := r.GetByID(context.Background(), item.ID)
	if again.Name != "Apples" {
		t.Fatalf("store was mutated through returned pointer: %q", again.Name)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	_, err := NewItemRepository().GetByID(context.Background(), 99)
	if !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []models.ItemName{"A", "B", "C"} {
		item := &models.GroceryItem{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := r.Save(ctx, item); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	items, err := r.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]models.ItemName, len(items))
	for i, it := range items {
		got[i] = it.Name
	}
	if len(got) != 3 || got[0] != "C" || got[1] != "B" || got[2] != "A" {
		t.Fatalf("expected [C B A], got %v", got)
	}
}

func TestList_TiesBrokenByID(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()
	same := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, name := range []models.ItemName{"first", "second"} {
		if err := r.Save(ctx, &models.GroceryItem{Name: name, CreatedAt: same}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	items, _ := r.List(ctx)
	if items[0].Name != "second" || items[1].Name != "first" {
		t.Fatalf("expected later ID first, got %q then %q", items[0].Name, items[1].Name)
	}
}

func TestList_Empty(t *testing.T) {
	items, err := NewItemRepository().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestUpdates(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()
	item := mustSave(t, r, "Milk")

	item.Rename("Oat Milk")
	if err := r.UpdateName(ctx, item, "Milk"); err != nil {
		t.Fatalf("update name: %v", err)
	}
	item.Toggle()
	if err := r.UpdateCompleted(ctx, item); err != nil {
		t.Fatalf("update completed: %v", err)
	}

	got, _ := r.GetByID(ctx, item.ID)
	if got.Name != "Oat Milk" || !got.Completed {
		t.Fatalf("unexpected stored item: %+v", got)
	}
}

func TestDelete_ThenNotFoundAndIDNotReused(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()
	item := mustSave(t, r, "Eggs")

	if err := r.Delete(ctx, item); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := r.Delete(ctx, item); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("second delete: expected ErrItemNotFound, got %v", err)
	}
	if err := r.UpdateCompleted(ctx, item); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("update after delete: expected ErrItemNotFound, got %v", err)
	}

	next := mustSave(t, r, "More Eggs")
	if next.ID == item.ID {
		t.Fatalf("deleted ID %d was reused", item.ID)
	}
	if n, _ := r.Count(ctx); n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}
}
