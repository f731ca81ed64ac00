package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/grocerylist/services/grocery/domain/events"
)

func TestItemEvent_JSONFieldNames(t *testing.T) {
	evt := events.ItemEvent{
		EventID:    uuid.New(),
		Version:    events.CurrentVersion,
		ItemID:     7,
		Name:       "Oat Milk",
		OldName:    "Milk",
		Completed:  true,
		CreatedAt:  time.Now().UTC(),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "old_name", "completed", "created_at", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestItemEvent_OldNameOmittedWhenEmpty(t *testing.T) {
	data, err := json.Marshal(events.ItemEvent{ItemID: 1, Name: "Eggs"})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	if _, ok := raw["old_name"]; ok {
		t.Errorf("old_name should be omitted for non-rename events: %s", data)
	}
}

func TestTopics_UniqueAndNamespaced(t *testing.T) {
	seen := make(map[string]bool, len(events.AllTopics))
	for _, topic := range events.AllTopics {
		if seen[topic] {
			t.Errorf("duplicate topic %q", topic)
		}
		seen[topic] = true
		if len(topic) < len("grocery.item.") || topic[:len("grocery.item.")] != "grocery.item." {
			t.Errorf("topic %q is not in the grocery.item namespace", topic)
		}
	}
	if len(events.AllTopics) != 4 {
		t.Errorf("expected 4 topics, got %d", len(events.AllTopics))
	}
}
