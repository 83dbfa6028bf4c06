package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context. All events are
// published transactionally with the row changes that caused them.
const (
	TopicItemCreated     = "inventory.item.created"
	TopicItemPublished   = "inventory.item.published"
	TopicSessionConsumed = "inventory.session.consumed"
)

// ItemCreatedEvent is published after a new Item row is inserted, whether by
// direct creation or by intake session promotion.
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	PublicID   uuid.UUID `json:"public_id"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemPublishedEvent is published when an item transitions Draft → Published.
// The worker refreshes the item's search embedding on this event.
type ItemPublishedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	PublicID   uuid.UUID `json:"public_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// SessionConsumedEvent is published when an intake session is promoted into a
// permanent item. Exactly one such event exists per session.
type SessionConsumedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	SessionID  int64     `json:"session_id"`
	ItemID     int64     `json:"item_id"`
	PhotoCount int       `json:"photo_count"`
	OccurredAt time.Time `json:"occurred_at"`
}
