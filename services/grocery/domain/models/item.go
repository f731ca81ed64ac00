package models

import "time"

// State labels reported after a toggle.
const (
	StateCompleted   = "completed"
	StateUncompleted = "uncompleted"
)

// GroceryItem is the core aggregate for this bounded context.
type GroceryItem struct {
	ID        ItemID // zero until the store assigns one
	Name      ItemName
	Completed bool
	CreatedAt time.Time
}

// NewGroceryItem constructs a not-yet-persisted item: not completed, created now.
func NewGroceryItem(name ItemName) *GroceryItem {
	return &GroceryItem{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Rename replaces the name and returns the previous one.
func (i *GroceryItem) Rename(name ItemName) ItemName {
	old := i.Name
	i.Name = name
	return old
}

// Toggle flips the completion flag and returns the new value.
func (i *GroceryItem) Toggle() bool {
	i.Completed = !i.Completed
	return i.Completed
}

// StateLabel returns "completed" or "uncompleted".
func (i *GroceryItem) StateLabel() string {
	if i.Completed {
		return StateCompleted
	}
	return StateUncompleted
}
