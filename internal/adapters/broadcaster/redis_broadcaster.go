package broadcaster

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"salvage-bidding-service/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisBroadcaster implements the fan-out channel over Redis pub/sub, one
// Redis channel per auction room. It lets multiple service nodes share rooms;
// each node forwards messages from Redis into its local subscriber channels.
type RedisBroadcaster struct {
	client        *redis.Client
	subscribers   map[string]chan outbound.Event // clientID -> local channel
	pubsubs       map[string]*redis.PubSub       // clientID -> pubsub connection
	clientToRooms map[string]map[string]bool     // clientID -> auctionID -> member
	mu            sync.RWMutex
	ctx           context.Context
	cancel        context.CancelFunc
	logger        zerolog.Logger
}

type RedisBroadcasterParams struct {
	RedisClient *redis.Client
	Logger      zerolog.Logger
}

// NewRedisBroadcaster creates a new Redis-backed broadcaster
func NewRedisBroadcaster(params RedisBroadcasterParams) *RedisBroadcaster {
	ctx, cancel := context.WithCancel(context.Background())

	return &RedisBroadcaster{
		client:        params.RedisClient,
		subscribers:   make(map[string]chan outbound.Event),
		pubsubs:       make(map[string]*redis.PubSub),
		clientToRooms: make(map[string]map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
		logger:        params.Logger.With().Str("component", "redis_broadcaster").Logger(),
	}
}

func roomChannel(auctionID uuid.UUID) string {
	return fmt.Sprintf("auction:%s", auctionID.String())
}

// Subscribe adds a client to an auction room
func (r *RedisBroadcaster) Subscribe(ctx context.Context, auctionID uuid.UUID, clientID string, eventChan chan outbound.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clientToRooms[clientID] != nil && r.clientToRooms[clientID][auctionID.String()] {
		r.logger.Debug().
			Str("client_id", clientID).
			Str("auction_id", auctionID.String()).
			Msg("Client already in auction room")
		return nil
	}

	if r.subscribers[clientID] == nil {
		r.subscribers[clientID] = eventChan
	}
	if r.clientToRooms[clientID] == nil {
		r.clientToRooms[clientID] = make(map[string]bool)
	}
	r.clientToRooms[clientID][auctionID.String()] = true

	pubsub, exists := r.pubsubs[clientID]
	if !exists {
		pubsub = r.client.Subscribe(ctx)
		r.pubsubs[clientID] = pubsub
		go r.forwardRedisMessages(pubsub, clientID, eventChan)
	}

	if err := pubsub.Subscribe(ctx, roomChannel(auctionID)); err != nil {
		r.logger.Error().Err(err).
			Str("client_id", clientID).
			Str("auction_id", auctionID.String()).
			Msg("Failed to subscribe to Redis channel")
		return err
	}

	r.logger.Info().
		Str("client_id", clientID).
		Str("auction_id", auctionID.String()).
		Msg("Client joined auction room via Redis")
	return nil
}

// Unsubscribe removes a client from an auction room; its pubsub connection is
// torn down once it belongs to no rooms
func (r *RedisBroadcaster) Unsubscribe(ctx context.Context, auctionID uuid.UUID, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, exists := r.clientToRooms[clientID]
	if !exists {
		return nil
	}

	delete(rooms, auctionID.String())

	if len(rooms) == 0 {
		delete(r.clientToRooms, clientID)
		delete(r.subscribers, clientID)
		if pubsub, ok := r.pubsubs[clientID]; ok {
			if err := pubsub.Close(); err != nil {
				r.logger.Error().Err(err).Str("client_id", clientID).Msg("Error closing Redis pubsub")
			}
			delete(r.pubsubs, clientID)
		}
	} else if pubsub, ok := r.pubsubs[clientID]; ok {
		if err := pubsub.Unsubscribe(ctx, roomChannel(auctionID)); err != nil {
			r.logger.Error().Err(err).
				Str("client_id", clientID).
				Str("auction_id", auctionID.String()).
				Msg("Error unsubscribing from Redis channel")
		}
	}

	r.logger.Info().
		Str("client_id", clientID).
		Str("auction_id", auctionID.String()).
		Msg("Client left auction room")
	return nil
}

// UnsubscribeAll removes a client from every room and tears down its pubsub
// connection
func (r *RedisBroadcaster) UnsubscribeAll(ctx context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clientToRooms, clientID)
	delete(r.subscribers, clientID)
	if pubsub, ok := r.pubsubs[clientID]; ok {
		if err := pubsub.Close(); err != nil {
			r.logger.Error().Err(err).Str("client_id", clientID).Msg("Error closing Redis pubsub")
		}
		delete(r.pubsubs, clientID)
	}

	r.logger.Debug().Str("client_id", clientID).Msg("Client removed from all auction rooms")
	return nil
}

// Publish delivers an event to every node subscribed to the auction's Redis
// channel
func (r *RedisBroadcaster) Publish(ctx context.Context, auctionID uuid.UUID, event outbound.Event) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	result := r.client.Publish(ctx, roomChannel(auctionID), payload)
	if err := result.Err(); err != nil {
		r.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to publish to Redis")
		return fmt.Errorf("failed to publish to Redis: %w", err)
	}

	r.logger.Debug().
		Str("event_type", string(event.Type)).
		Str("auction_id", auctionID.String()).
		Int64("receiver_count", result.Val()).
		Msg("Published event to auction room")
	return nil
}

// GetSubscribers returns the client IDs this node has in an auction room
func (r *RedisBroadcaster) GetSubscribers(ctx context.Context, auctionID uuid.UUID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var subscribers []string
	for clientID, rooms := range r.clientToRooms {
		if rooms[auctionID.String()] {
			subscribers = append(subscribers, clientID)
		}
	}

	return subscribers, nil
}

// IsSubscribed checks if a client is in an auction room
func (r *RedisBroadcaster) IsSubscribed(ctx context.Context, auctionID uuid.UUID, clientID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms, exists := r.clientToRooms[clientID]
	if !exists {
		return false
	}

	return rooms[auctionID.String()]
}

// forwardRedisMessages pumps messages from a client's pubsub connection into
// its local channel. A full local channel drops the event; clients recover by
// re-fetching auction state.
func (r *RedisBroadcaster) forwardRedisMessages(pubsub *redis.PubSub, clientID string, localChan chan outbound.Event) {
	ch := pubsub.Channel()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				r.logger.Debug().Str("client_id", clientID).Msg("Redis pubsub closed for client")
				return
			}

			var event outbound.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.logger.Error().Err(err).Str("client_id", clientID).Msg("Failed to unmarshal Redis message")
				continue
			}

			select {
			case localChan <- event:
			default:
				r.logger.Warn().Str("client_id", clientID).Msg("Subscriber channel full, dropping event")
			}

		case <-r.ctx.Done():
			return
		}
	}
}

// Close tears down all pubsub connections and the Redis client
func (r *RedisBroadcaster) Close() error {
	r.cancel()

	r.mu.Lock()
	defer r.mu.Unlock()

	for clientID, pubsub := range r.pubsubs {
		if err := pubsub.Close(); err != nil {
			r.logger.Error().Err(err).Str("client_id", clientID).Msg("Error closing Redis pubsub")
		}
		delete(r.pubsubs, clientID)
	}
	r.subscribers = make(map[string]chan outbound.Event)
	r.clientToRooms = make(map[string]map[string]bool)

	return r.client.Close()
}
