// Package memory provides an in-process ItemRepository used when
// STORE_BACKEND=memory and by application-layer tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	itemdomain "github.com/ghuser/grocerylist/services/grocery/domain"
	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

// ItemRepository implements repositories.ItemRepository on a mutex-guarded map.
// Items are copied on the way in and out so callers never share state with the store.
type ItemRepository struct {
	mu     sync.RWMutex
	items  map[models.ItemID]models.GroceryItem
	lastID models.ItemID
}

// NewItemRepository returns an empty store.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[models.ItemID]models.GroceryItem)}
}

// Save assigns the next ID and stores a copy of item.
func (r *ItemRepository) Save(_ context.Context, item *models.GroceryItem) error {
	if item.ID != 0 {
		return fmt.Errorf("save item: already persisted with id %d", item.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	item.ID = r.lastID
	r.items[item.ID] = *item
	return nil
}

// GetByID returns a copy of the stored item or ErrItemNotFound.
func (r *ItemRepository) GetByID(_ context.Context, id models.ItemID) (*models.GroceryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return &item, nil
}

// List returns copies of every item ordered by created_at DESC, id DESC.
func (r *ItemRepository) List(_ context.Context) ([]*models.GroceryItem, error) {
	r.mu.RLock()
	out := make([]*models.GroceryItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, &item)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// UpdateName stores the new name of an existing item.
func (r *ItemRepository) UpdateName(_ context.Context, item *models.GroceryItem, _ models.ItemName) error {
	return r.update(item.ID, func(stored *models.GroceryItem) { stored.Name = item.Name })
}

// UpdateCompleted stores the completion flag of an existing item.
func (r *ItemRepository) UpdateCompleted(_ context.Context, item *models.GroceryItem) error {
	return r.update(item.ID, func(stored *models.GroceryItem) { stored.Completed = item.Completed })
}

// Delete removes the item. IDs are never reused because lastID only grows.
func (r *ItemRepository) Delete(_ context.Context, item *models.GroceryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return itemdomain.ErrItemNotFound
	}
	delete(r.items, item.ID)
	return nil
}

// Count returns the number of stored items.
func (r *ItemRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *ItemRepository) update(id models.ItemID, apply func(*models.GroceryItem)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return itemdomain.ErrItemNotFound
	}
	apply(&stored)
	r.items[id] = stored
	return nil
}
