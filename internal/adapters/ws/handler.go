package ws

import (
	"context"
	"net/http"
	"sync"

	"salvage-bidding-service/internal/adapters/auth"
	"salvage-bidding-service/internal/app"
	"salvage-bidding-service/internal/domain/shared"
	"salvage-bidding-service/internal/ports/inbound"
	"salvage-bidding-service/internal/ports/outbound"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WsHandler manages WebSocket connections and message routing
type WsHandler struct {
	clients        map[string]*WsClient // clientID -> Client
	clientsMu      sync.RWMutex
	eventChannels  map[string]chan outbound.Event // clientID -> local event channel
	channelsMu     sync.RWMutex
	upgrader       websocket.Upgrader
	biddingService inbound.BiddingService
	broadcaster    outbound.Broadcaster
	tokens         *auth.TokenVerifier
	logger         zerolog.Logger
}

type WsHandlerParams struct {
	Upgrader       websocket.Upgrader
	BiddingService inbound.BiddingService
	Broadcaster    outbound.Broadcaster
	Tokens         *auth.TokenVerifier
	Logger         zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(params WsHandlerParams) *WsHandler {
	return &WsHandler{
		clients:        make(map[string]*WsClient),
		eventChannels:  make(map[string]chan outbound.Event),
		upgrader:       params.Upgrader,
		biddingService: params.BiddingService,
		broadcaster:    params.Broadcaster,
		tokens:         params.Tokens,
		logger:         params.Logger.With().Str("component", "ws_handler").Logger(),
	}
}

// HandleWebSocket handles WebSocket connection upgrades.
// The bidder identity comes from a signed token in the query string; the
// connection is refused before the upgrade when it is missing or invalid.
func (handler *WsHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token is required", http.StatusUnauthorized)
		return
	}

	bidderID, err := handler.tokens.Verify(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		handler.logger.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	client := NewClient(WsClientParams{
		BidderID: bidderID,
		Conn:     conn,
		Handler:  handler,
		Logger:   handler.logger,
	})

	handler.registerClient(client)
	handler.createEventChannel(client.id)

	client.Start()

	// Forward broadcast events for this client to its socket
	go handler.listenForClientEvents(client)

	go func() {
		<-client.ctx.Done()
		handler.unregisterClient(client)
	}()

	handler.logger.Info().Str("client_id", client.id).Str("bidder_id", client.bidderID.String()).Msg("WebSocket client connected")
}

// createEventChannel creates a local event channel for a client
func (handler *WsHandler) createEventChannel(clientID string) chan outbound.Event {
	handler.channelsMu.Lock()
	defer handler.channelsMu.Unlock()

	if eventChan, exists := handler.eventChannels[clientID]; exists {
		return eventChan
	}

	eventChan := make(chan outbound.Event, 100)
	handler.eventChannels[clientID] = eventChan
	return eventChan
}

func (handler *WsHandler) getEventChannel(clientID string) chan outbound.Event {
	handler.channelsMu.RLock()
	defer handler.channelsMu.RUnlock()

	return handler.eventChannels[clientID]
}

func (handler *WsHandler) removeEventChannel(clientID string) {
	handler.channelsMu.Lock()
	defer handler.channelsMu.Unlock()

	if eventChan, exists := handler.eventChannels[clientID]; exists {
		close(eventChan)
		delete(handler.eventChannels, clientID)
	}
}

func (handler *WsHandler) registerClient(client *WsClient) {
	handler.clientsMu.Lock()
	defer handler.clientsMu.Unlock()
	handler.clients[client.id] = client
	handler.logger.Debug().Str("client_id", client.id).Int("total_clients", len(handler.clients)).Msg("Client registered")
}

func (handler *WsHandler) unregisterClient(client *WsClient) {
	handler.clientsMu.Lock()
	defer handler.clientsMu.Unlock()

	delete(handler.clients, client.id)

	// Drop room memberships before closing the event channel so the
	// broadcaster never publishes into a closed channel.
	if err := handler.broadcaster.UnsubscribeAll(context.Background(), client.id); err != nil {
		handler.logger.Error().Err(err).Str("client_id", client.id).Msg("Failed to clean up room memberships")
	}

	client.Stop()
	handler.removeEventChannel(client.id)

	handler.logger.Info().Str("client_id", client.id).Str("bidder_id", client.bidderID.String()).Int("total_clients", len(handler.clients)).Msg("WebSocket client disconnected")
}

// listenForClientEvents forwards broadcast events to the client's socket
func (handler *WsHandler) listenForClientEvents(client *WsClient) {
	eventChan := handler.getEventChannel(client.id)
	if eventChan == nil {
		handler.logger.Error().Str("client_id", client.id).Msg("No event channel found for client - this should not happen")
		return
	}

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			wsMessage := handler.convertEventToMessage(event)
			if err := client.Send(wsMessage); err != nil {
				handler.logger.Error().
					Err(err).Str("client_id", client.id).Msg("Failed to send event to WebSocket client")
			}

		case <-client.ctx.Done():
			return
		}
	}
}

func (handler *WsHandler) HandleClientMessage(client *WsClient, msg *ClientMessage) error {
	switch msg.Type {
	case MessageTypeJoin:
		return handler.handleJoin(client, msg)

	case MessageTypeLeave:
		return handler.handleLeave(client, msg)

	case MessageTypeBid:
		return handler.handleBid(client, msg)

	default:
		handler.logger.Warn().Str("client_id", client.id).Str("message_type", string(msg.Type)).Msg("Unknown message type from client")
		return shared.ErrUnknownMessageType
	}
}

func (handler *WsHandler) convertEventToMessage(event outbound.Event) *ServerMessage {
	switch event.Type {
	case outbound.EventTypeBidUpdate:
		return &ServerMessage{
			Type:      MessageTypeBidUpdate,
			AuctionID: &event.AuctionID,
			Data:      event.Data,
			Timestamp: event.Timestamp,
		}
	case outbound.EventTypeAuctionEnded:
		return &ServerMessage{
			Type:      MessageTypeAuctionEnded,
			AuctionID: &event.AuctionID,
			Data:      event.Data,
			Timestamp: event.Timestamp,
		}
	default:
		return &ServerMessage{
			Type:      MessageTypeRoomStatus,
			AuctionID: &event.AuctionID,
			Data:      event.Data,
			Timestamp: event.Timestamp,
		}
	}
}

// GetConnectedClients returns the number of connected clients
func (handler *WsHandler) GetConnectedClients() int {
	handler.clientsMu.RLock()
	defer handler.clientsMu.RUnlock()
	return len(handler.clients)
}

func (handler *WsHandler) handleJoin(client *WsClient, msg *ClientMessage) error {
	ctx := context.Background()

	eventChan := handler.getEventChannel(client.id)
	if eventChan == nil {
		handler.logger.Error().Str("client_id", client.id).Msg("No event channel found for client")
		return shared.ErrClientEventChannelNotFound
	}

	if err := handler.broadcaster.Subscribe(ctx, *msg.AuctionID, client.id, eventChan); err != nil {
		handler.logger.Error().Err(err).Str("client_id", client.id).Str("auction_id", msg.AuctionID.String()).Msg("Failed to join auction room")
		return err
	}

	response := NewServerMessage(MessageTypeRoomStatus)
	response.AuctionID = msg.AuctionID
	response.Data["status"] = "joined"

	handler.logger.Info().Str("client_id", client.id).Str("auction_id", msg.AuctionID.String()).Msg("Client joined auction room")
	return client.Send(response)
}

func (handler *WsHandler) handleLeave(client *WsClient, msg *ClientMessage) error {
	ctx := context.Background()

	if err := handler.broadcaster.Unsubscribe(ctx, *msg.AuctionID, client.id); err != nil {
		return err
	}

	response := NewServerMessage(MessageTypeRoomStatus)
	response.AuctionID = msg.AuctionID
	response.Data["status"] = "left"

	handler.logger.Info().Str("client_id", client.id).Str("auction_id", msg.AuctionID.String()).Msg("Client left auction room")
	return client.Send(response)
}

// handleBid places a bid on behalf of the connected bidder. The submitter
// always gets a bid:result acknowledgement; room members get the bid:update
// broadcast published by the bidding service after the bid commits.
func (handler *WsHandler) handleBid(client *WsClient, msg *ClientMessage) error {
	amount, ok := msg.Amount()
	if !ok {
		return shared.ErrInvalidAmount
	}

	ctx := context.Background()

	placed, err := handler.biddingService.PlaceBid(ctx, inbound.PlaceBidRequest{
		AuctionID: *msg.AuctionID,
		BidderID:  client.bidderID,
		Amount:    amount,
		MaxBid:    msg.MaxBid(),
	})
	if err != nil {
		reason := err.Error()
		if !app.IsRejection(err) {
			// Transient and unexpected failures stay in the log; the bidder
			// only ever sees rejection reasons.
			handler.logger.Error().Err(err).
				Str("auction_id", msg.AuctionID.String()).
				Str("bidder_id", client.bidderID.String()).
				Msg("Bid failed")
			reason = "bid could not be processed"
		}
		return client.Send(NewBidRejected(msg.AuctionID, reason))
	}

	handler.logger.Info().
		Str("bid_id", placed.Bid.ID.String()).
		Str("auction_id", msg.AuctionID.String()).
		Str("bidder_id", client.bidderID.String()).
		Float64("amount", amount).
		Msg("Bid placed successfully")

	ack := NewBidAccepted(*msg.AuctionID, map[string]interface{}{
		"id":           placed.Bid.ID,
		"amount":       placed.Bid.Amount,
		"currentPrice": placed.CurrentPrice,
		"endsAt":       placed.EndsAt,
		"extended":     placed.Extended,
	})
	return client.Send(ack)
}
