package repositories

import (
	"context"

	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

// ItemRepository is the persistence interface for the GroceryItem aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// GetByID, Update and Delete return domain.ErrItemNotFound for unknown IDs.
type ItemRepository interface {
	// Save inserts a new item and assigns item.ID.
	Save(ctx context.Context, item *models.GroceryItem) error
	GetByID(ctx context.Context, id models.ItemID) (*models.GroceryItem, error)

	// List returns every item, newest first (created_at DESC, id DESC).
	List(ctx context.Context) ([]*models.GroceryItem, error)

	// UpdateName persists item.Name; oldName is the name it replaced.
	UpdateName(ctx context.Context, item *models.GroceryItem, oldName models.ItemName) error

	// UpdateCompleted persists item.Completed.
	UpdateCompleted(ctx context.Context, item *models.GroceryItem) error

	// Delete removes an item permanently. The ID is never handed out again.
	Delete(ctx context.Context, item *models.GroceryItem) error

	Count(ctx context.Context) (int, error)
}
