package broadcaster

import (
	"context"
	"sync"
	"time"

	"salvage-bidding-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Hub is the in-process fan-out channel: per-auction rooms of subscriber
// channels, delivered in publish order under one lock. It is the default
// driver for single-node deployments; the Redis broadcaster covers
// multi-node fan-out behind the same port.
type Hub struct {
	rooms       map[string]map[string]bool     // auctionID -> clientID -> member
	subscribers map[string]chan outbound.Event // clientID -> local channel
	mu          sync.RWMutex
	closed      bool
	logger      zerolog.Logger
}

type HubParams struct {
	Logger zerolog.Logger
}

// NewHub creates a new in-process broadcaster
func NewHub(params HubParams) *Hub {
	return &Hub{
		rooms:       make(map[string]map[string]bool),
		subscribers: make(map[string]chan outbound.Event),
		logger:      params.Logger.With().Str("component", "hub_broadcaster").Logger(),
	}
}

// Subscribe adds a client to an auction room. Joining a room twice is a
// no-op; every room a client joins delivers into the same channel.
func (h *Hub) Subscribe(ctx context.Context, auctionID uuid.UUID, clientID string, eventChan chan outbound.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	room := auctionID.String()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[string]bool)
	}
	if h.rooms[room][clientID] {
		h.logger.Debug().
			Str("client_id", clientID).
			Str("auction_id", room).
			Msg("Client already in auction room")
		return nil
	}

	h.rooms[room][clientID] = true
	if h.subscribers[clientID] == nil {
		h.subscribers[clientID] = eventChan
	}

	h.logger.Info().
		Str("client_id", clientID).
		Str("auction_id", room).
		Int("room_size", len(h.rooms[room])).
		Msg("Client joined auction room")
	return nil
}

// Unsubscribe removes a client from an auction room. The client's channel is
// released once it belongs to no rooms.
func (h *Hub) Unsubscribe(ctx context.Context, auctionID uuid.UUID, clientID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := auctionID.String()
	if members, exists := h.rooms[room]; exists {
		delete(members, clientID)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}

	if !h.isMemberOfAny(clientID) {
		delete(h.subscribers, clientID)
	}

	h.logger.Info().
		Str("client_id", clientID).
		Str("auction_id", room).
		Msg("Client left auction room")
	return nil
}

// UnsubscribeAll removes a client from every room it joined
func (h *Hub) UnsubscribeAll(ctx context.Context, clientID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, members := range h.rooms {
		delete(members, clientID)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.subscribers, clientID)

	h.logger.Debug().Str("client_id", clientID).Msg("Client removed from all auction rooms")
	return nil
}

// Publish delivers an event to the room's current members. A member whose
// channel is full has the event dropped; there is no replay, a client that
// misses an event re-fetches auction state.
func (h *Hub) Publish(ctx context.Context, auctionID uuid.UUID, event outbound.Event) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	room := auctionID.String()
	delivered := 0
	for clientID := range h.rooms[room] {
		eventChan, exists := h.subscribers[clientID]
		if !exists {
			continue
		}
		select {
		case eventChan <- event:
			delivered++
		default:
			h.logger.Warn().
				Str("client_id", clientID).
				Str("auction_id", room).
				Msg("Subscriber channel full, dropping event")
		}
	}

	h.logger.Debug().
		Str("event_type", string(event.Type)).
		Str("auction_id", room).
		Int("delivered", delivered).
		Msg("Published event to auction room")
	return nil
}

// GetSubscribers returns the client IDs currently in an auction room
func (h *Hub) GetSubscribers(ctx context.Context, auctionID uuid.UUID) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var subscribers []string
	for clientID := range h.rooms[auctionID.String()] {
		subscribers = append(subscribers, clientID)
	}

	return subscribers, nil
}

// IsSubscribed checks if a client is in an auction room
func (h *Hub) IsSubscribed(ctx context.Context, auctionID uuid.UUID, clientID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.rooms[auctionID.String()][clientID]
}

// Close tears down all rooms. Subscriber channels stay open: their owning
// connections close them on disconnect.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	h.subscribers = make(map[string]chan outbound.Event)
	h.rooms = make(map[string]map[string]bool)

	return nil
}

// isMemberOfAny reports whether a client is a member of any room. Callers
// must hold the lock.
func (h *Hub) isMemberOfAny(clientID string) bool {
	for _, members := range h.rooms {
		if members[clientID] {
			return true
		}
	}
	return false
}
