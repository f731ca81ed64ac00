package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/grocerylist/pkg/cache"
	"github.com/ghuser/grocerylist/pkg/logger"
	itemdomain "github.com/ghuser/grocerylist/services/grocery/domain"
	"github.com/ghuser/grocerylist/services/grocery/domain/models"
	"github.com/ghuser/grocerylist/services/grocery/domain/repositories"
	domainsvcs "github.com/ghuser/grocerylist/services/grocery/domain/services"
)

// ItemService applies the grocery item lifecycle to the store: add, rename,
// toggle and delete, plus listing and edit-mode lookups.
//
// Mutations return at most one Notice. Validation and not-found failures
// return an error notice together with an error wrapping ErrInvalidItemName
// or ErrItemNotFound, and leave the store untouched. Infrastructure failures
// return a zero Notice.
//
// Event publishing is handled by the repository layer (outbox pattern).
// Single-item reads are served from Redis when a cache is configured.
type ItemService struct {
	repo    repositories.ItemRepository
	cache   *pkgcache.ItemCache
	log     logger.Logger
	metrics *mutationMetrics
}

// NewItemService returns an ItemService wired with the given repository and cache.
// itemCache may be nil.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache, log logger.Logger) *ItemService {
	return &ItemService{
		repo:    repo,
		cache:   itemCache,
		log:     log,
		metrics: newMutationMetrics(nil),
	}
}

// Filter narrows Search results. Zero values match everything.
type Filter struct {
	Completed *bool
	Query     string // case-insensitive substring of the name
}

// List returns every item, newest first. An empty store yields an empty slice.
func (s *ItemService) List(ctx context.Context) ([]*models.GroceryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []*models.GroceryItem{}
	}
	return items, nil
}

// Search returns the items matching f, newest first.
func (s *ItemService) Search(ctx context.Context, f Filter) ([]*models.GroceryItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := items[:0]
	for _, item := range items {
		if f.Completed != nil && item.Completed != *f.Completed {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(item.Name.String()), q) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// Add creates an item named after the trimmed name.
func (s *ItemService) Add(ctx context.Context, name string) (item *models.GroceryItem, notice Notice, err error) {
	defer func() { s.metrics.record(ctx, CommandAdd, err) }()

	itemName, err := parseName(name)
	if err != nil {
		return nil, noticeForError(err), err
	}

	item = models.NewGroceryItem(itemName)
	if err := domainsvcs.ValidateItemForSave(item); err != nil {
		return nil, Notice{}, fmt.Errorf("add item: %w", err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		err = fmt.Errorf("save item: %w", err)
		return nil, noticeForError(err), err
	}

	return item, successNotice("%s added successfully!", item.Name), nil
}

// Get returns one item, reading through the cache when configured. It is the
// only writer of cache entries. A Get that reads the store just before a
// concurrent Delete can cache the deleted item; the worker's eviction on the
// deleted event removes it again.
func (s *ItemService) Get(ctx context.Context, id models.ItemID) (*models.GroceryItem, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, int64(id))
		if err == nil {
			return fromCached(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed, falling back to store", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, toCached(item)); err != nil {
			s.log.WarnContext(ctx, "item cache warm failed", "item_id", id, "error", err)
		}
	}
	return item, nil
}

// BeginEdit returns the item to show in edit mode. It never mutates and never
// produces a notice. A missing item fails with ErrItemNotFound.
func (s *ItemService) BeginEdit(ctx context.Context, id models.ItemID) (*models.GroceryItem, error) {
	return s.Get(ctx, id)
}

// Rename replaces the name of an existing item with the trimmed name.
func (s *ItemService) Rename(ctx context.Context, id models.ItemID, name string) (item *models.GroceryItem, notice Notice, err error) {
	defer func() { s.metrics.record(ctx, CommandRename, err) }()

	item, err = s.load(ctx, id)
	if err != nil {
		return nil, noticeForError(err), err
	}

	newName, err := parseName(name)
	if err != nil {
		return nil, noticeForError(err), err
	}

	oldName := item.Rename(newName)
	if err := s.repo.UpdateName(ctx, item, oldName); err != nil {
		err = fmt.Errorf("rename item %d: %w", id, err)
		return nil, noticeForError(err), err
	}
	s.evict(ctx, id)

	return item, successNotice("%s renamed to %s.", oldName, newName), nil
}

// Toggle flips the completion flag of an existing item.
func (s *ItemService) Toggle(ctx context.Context, id models.ItemID) (item *models.GroceryItem, notice Notice, err error) {
	defer func() { s.metrics.record(ctx, CommandToggle, err) }()

	item, err = s.load(ctx, id)
	if err != nil {
		return nil, noticeForError(err), err
	}

	item.Toggle()
	if err := s.repo.UpdateCompleted(ctx, item); err != nil {
		err = fmt.Errorf("toggle item %d: %w", id, err)
		return nil, noticeForError(err), err
	}
	s.evict(ctx, id)

	return item, successNotice("%s marked as %s.", item.Name, item.StateLabel()), nil
}

// Delete removes an existing item permanently. The notice names the deleted
// item, captured before removal.
func (s *ItemService) Delete(ctx context.Context, id models.ItemID) (notice Notice, err error) {
	defer func() { s.metrics.record(ctx, CommandDelete, err) }()

	item, err := s.load(ctx, id)
	if err != nil {
		return noticeForError(err), err
	}

	name := item.Name
	if err := s.repo.Delete(ctx, item); err != nil {
		err = fmt.Errorf("delete item %d: %w", id, err)
		return noticeForError(err), err
	}
	s.evict(ctx, id)

	return successNotice("%s deleted successfully!", name), nil
}

// load reads an item for mutation straight from the store, bypassing the cache.
func (s *ItemService) load(ctx context.Context, id models.ItemID) (*models.GroceryItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

func (s *ItemService) evict(ctx context.Context, id models.ItemID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, int64(id)); err != nil {
		s.log.WarnContext(ctx, "item cache evict failed", "item_id", id, "error", err)
	}
}

// parseName trims raw and applies the domain name rules.
func parseName(raw string) (models.ItemName, error) {
	name, err := models.NewItemName(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}
	if err := domainsvcs.ValidateName(name); err != nil {
		return "", fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}
	return name, nil
}

func toCached(item *models.GroceryItem) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:        int64(item.ID),
		Name:      item.Name.String(),
		Completed: item.Completed,
		CreatedAt: item.CreatedAt,
	}
}

func fromCached(c *pkgcache.CachedItem) *models.GroceryItem {
	return &models.GroceryItem{
		ID:        models.ItemID(c.ID),
		Name:      models.ItemName(c.Name),
		Completed: c.Completed,
		CreatedAt: c.CreatedAt,
	}
}
