package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/grocerylist/pkg/database"
	"github.com/ghuser/grocerylist/pkg/events"
	itemdomain "github.com/ghuser/grocerylist/services/grocery/domain"
	domainevents "github.com/ghuser/grocerylist/services/grocery/domain/events"
	"github.com/ghuser/grocerylist/services/grocery/domain/models"
	"github.com/ghuser/grocerylist/services/grocery/infrastructure/persistence/postgres/db"
)

// pgCheckViolation is the SQLSTATE raised by the grocery_items name CHECK constraint.
const pgCheckViolation = "23514"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Every mutation runs in a single transaction together with its outbox event.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. A nil bus disables event publishing.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save inserts a new item, assigns its ID and publishes grocery.item.added.
func (r *ItemRepository) Save(ctx context.Context, item *models.GroceryItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertItem(ctx, db.InsertItemParams{
			Name:      item.Name.String(),
			Completed: item.Completed,
			CreatedAt: item.CreatedAt,
		})
		if err != nil {
			return mapWriteError("insert item", err)
		}
		item.ID = models.ItemID(id)

		return r.publish(ctx, tx, domainevents.TopicItemAdded, item, "")
	})
}

// GetByID retrieves an item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id models.ItemID) (*models.GroceryItem, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, int64(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

// List returns every item ordered by created_at DESC, id DESC.
func (r *ItemRepository) List(ctx context.Context) ([]*models.GroceryItem, error) {
	rows, err := db.New(r.db.DB()).ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	items := make([]*models.GroceryItem, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

// UpdateName persists a rename and publishes grocery.item.renamed.
func (r *ItemRepository) UpdateName(ctx context.Context, item *models.GroceryItem, oldName models.ItemName) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateItemName(ctx, db.UpdateItemNameParams{
			ID:   int64(item.ID),
			Name: item.Name.String(),
		})
		if err != nil {
			return mapWriteError("update item name", err)
		}
		if n == 0 {
			return itemdomain.ErrItemNotFound
		}
		return r.publish(ctx, tx, domainevents.TopicItemRenamed, item, oldName)
	})
}

// UpdateCompleted persists the completion flag and publishes grocery.item.toggled.
func (r *ItemRepository) UpdateCompleted(ctx context.Context, item *models.GroceryItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateItemCompleted(ctx, db.UpdateItemCompletedParams{
			ID:        int64(item.ID),
			Completed: item.Completed,
		})
		if err != nil {
			return fmt.Errorf("update item completed: %w", err)
		}
		if n == 0 {
			return itemdomain.ErrItemNotFound
		}
		return r.publish(ctx, tx, domainevents.TopicItemToggled, item, "")
	})
}

// Delete removes the item and publishes grocery.item.deleted.
// Identity columns never hand out a deleted ID again.
func (r *ItemRepository) Delete(ctx context.Context, item *models.GroceryItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteItem(ctx, int64(item.ID))
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n == 0 {
			return itemdomain.ErrItemNotFound
		}
		return r.publish(ctx, tx, domainevents.TopicItemDeleted, item, "")
	})
}

// Count returns the number of stored items.
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	n, err := db.New(r.db.DB()).CountItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return int(n), nil
}

// publish writes the event for item through the transactional outbox publisher.
func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, item *models.GroceryItem, oldName models.ItemName) error {
	if r.bus == nil {
		return nil
	}

	event := newItemEvent(item, oldName, time.Now().UTC())
	msg, err := events.NewJSONMessage(ctx, event.EventID.String(), strconv.Itoa(event.Version), event)
	if err != nil {
		return fmt.Errorf("build %s event: %w", topic, err)
	}

	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func newItemEvent(item *models.GroceryItem, oldName models.ItemName, now time.Time) domainevents.ItemEvent {
	return domainevents.ItemEvent{
		EventID:    uuid.New(),
		Version:    domainevents.CurrentVersion,
		ItemID:     int64(item.ID),
		Name:       item.Name.String(),
		OldName:    oldName.String(),
		Completed:  item.Completed,
		CreatedAt:  item.CreatedAt,
		OccurredAt: now,
	}
}

// mapWriteError turns name constraint violations into ErrInvalidItemName.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
		return fmt.Errorf("%s: %w", op, itemdomain.ErrInvalidItemName)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// rowToItem maps a db.GroceryItem row to a domain models.GroceryItem.
func rowToItem(row db.GroceryItem) *models.GroceryItem {
	return &models.GroceryItem{
		ID:        models.ItemID(row.ID),
		Name:      models.ItemName(row.Name),
		Completed: row.Completed,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
