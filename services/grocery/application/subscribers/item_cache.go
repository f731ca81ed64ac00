// Package subscribers holds the worker-side handlers for grocery domain events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/grocerylist/pkg/events"
	"github.com/ghuser/grocerylist/pkg/logger"
	domainevents "github.com/ghuser/grocerylist/services/grocery/domain/events"
)

// ItemCacheEvicter is the subset of cache.ItemCache the projector needs.
type ItemCacheEvicter interface {
	Delete(ctx context.Context, id int64) error
}

// ItemCacheProjector keeps the Redis item read model from going stale. Every
// grocery event evicts its item, and only ItemService.Get fills the cache
// from the store. Each topic has its own subscription, so events for one item
// can arrive in any order; eviction gives the same result in every order.
type ItemCacheProjector struct {
	cache ItemCacheEvicter
	log   logger.Logger
}

// NewItemCacheProjector returns a projector evicting from c.
func NewItemCacheProjector(c ItemCacheEvicter, log logger.Logger) *ItemCacheProjector {
	return &ItemCacheProjector{cache: c, log: log}
}

// Handler returns the message handler for topic, or an error for topics the
// projector does not know.
// Handlers are idempotent, so bus redelivery is harmless.
func (p *ItemCacheProjector) Handler(topic string) (events.Handler, error) {
	switch topic {
	case domainevents.TopicItemAdded, domainevents.TopicItemRenamed, domainevents.TopicItemToggled, domainevents.TopicItemDeleted:
		return p.handle(topic), nil
	default:
		return nil, fmt.Errorf("no cache projection for topic %q", topic)
	}
}

func (p *ItemCacheProjector) handle(topic string) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.ItemEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			// A payload that never decodes would be retried forever; drop it.
			p.log.ErrorContext(ctx, "dropping undecodable event", "topic", topic, "event_id", msg.Metadata.Get(events.MetadataEventID), "error", err)
			return nil
		}
		if evt.Version > domainevents.CurrentVersion {
			p.log.WarnContext(ctx, "event from newer schema", "topic", topic, "version", evt.Version)
		}

		if err := p.cache.Delete(ctx, evt.ItemID); err != nil {
			return fmt.Errorf("%s item %d: %w", topic, evt.ItemID, err)
		}
		p.log.InfoContext(ctx, "item cache evicted", "topic", topic, "item_id", evt.ItemID)
		return nil
	}
}
