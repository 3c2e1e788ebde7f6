package outbound

import (
	"context"

	"github.com/google/uuid"
)

// EventType represents the type of event being broadcasted
type EventType string

const (
	EventTypeBidUpdate    EventType = "bid:update"
	EventTypeAuctionEnded EventType = "auction:ended"
)

// Event represents a broadcast event for one auction room
type Event struct {
	Type      EventType              `json:"type"`
	AuctionID uuid.UUID              `json:"auction_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp int64                  `json:"timestamp"`
}

// Broadcaster maintains per-auction subscriber rooms and delivers events to
// their current members. Delivery is best-effort: no replay for late joiners,
// no sequence numbers, per-room ordering follows publish order.
type Broadcaster interface {
	// Subscribe adds a client to an auction room. Subscribing twice is a
	// no-op; all rooms a client joins deliver into the same channel.
	Subscribe(ctx context.Context, auctionID uuid.UUID, clientID string, eventChan chan Event) error

	// Unsubscribe removes a client from an auction room
	Unsubscribe(ctx context.Context, auctionID uuid.UUID, clientID string) error

	// UnsubscribeAll removes a client from every room it joined; called when
	// its connection goes away
	UnsubscribeAll(ctx context.Context, clientID string) error

	// Publish delivers an event to all current members of an auction room
	Publish(ctx context.Context, auctionID uuid.UUID, event Event) error

	// GetSubscribers returns the client IDs currently in an auction room
	GetSubscribers(ctx context.Context, auctionID uuid.UUID) ([]string, error)

	// IsSubscribed checks if a client is in an auction room
	IsSubscribed(ctx context.Context, auctionID uuid.UUID, clientID string) bool

	// Close tears down all rooms
	Close() error
}
