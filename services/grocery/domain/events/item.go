package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the grocery repository, one per mutation.
const (
	TopicItemAdded   = "grocery.item.added"
	TopicItemRenamed = "grocery.item.renamed"
	TopicItemToggled = "grocery.item.toggled"
	TopicItemDeleted = "grocery.item.deleted"
)

// CurrentVersion is the schema version written into every ItemEvent.
const CurrentVersion = 1

// AllTopics lists every grocery topic, in lifecycle order.
var AllTopics = []string{TopicItemAdded, TopicItemRenamed, TopicItemToggled, TopicItemDeleted}

// ItemEvent is published after a grocery item is added, renamed, toggled or deleted.
// It always carries the item state after the mutation (for deletions, the state
// just before removal). OldName is only set for renames.
type ItemEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	OldName    string    `json:"old_name,omitempty"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
	OccurredAt time.Time `json:"occurred_at"`
}
