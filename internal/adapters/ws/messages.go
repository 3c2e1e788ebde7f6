package ws

import (
	"encoding/json"
	"fmt"
	"time"

	"salvage-bidding-service/internal/domain/shared"

	"github.com/google/uuid"
)

type MessageType string

const (
	// Client to Server message types
	MessageTypeJoin  MessageType = "join"
	MessageTypeLeave MessageType = "leave"
	MessageTypeBid   MessageType = "bid"
	MessageTypePing  MessageType = "ping"

	// Server to Client message types
	MessageTypeBidResult    MessageType = "bid:result"
	MessageTypeBidUpdate    MessageType = "bid:update"
	MessageTypeAuctionEnded MessageType = "auction:ended"
	MessageTypeRoomStatus   MessageType = "room:status"
	MessageTypeError        MessageType = "error"
	MessageTypePong         MessageType = "pong"
)

// ClientMessage represents a message sent from client to server
type ClientMessage struct {
	Type      MessageType            `json:"type"`
	AuctionID *uuid.UUID             `json:"auction_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

// ServerMessage represents a message sent from server to client
type ServerMessage struct {
	Type      MessageType            `json:"type"`
	AuctionID *uuid.UUID             `json:"auction_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Error     *string                `json:"error,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

func NewServerMessage(msgType MessageType) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Data:      make(map[string]interface{}),
		Timestamp: time.Now().Unix(),
	}
}

func NewErrorMessage(err string, auctionID *uuid.UUID) *ServerMessage {
	return &ServerMessage{
		Type:      MessageTypeError,
		AuctionID: auctionID,
		Error:     &err,
		Timestamp: time.Now().Unix(),
	}
}

// NewBidAccepted builds the submitter's acknowledgement for an accepted bid
func NewBidAccepted(auctionID uuid.UUID, placed interface{}) *ServerMessage {
	msg := NewServerMessage(MessageTypeBidResult)
	msg.AuctionID = &auctionID
	msg.Data["success"] = true
	msg.Data["bid"] = placed
	return msg
}

// NewBidRejected builds the submitter's acknowledgement for a rejected bid
func NewBidRejected(auctionID *uuid.UUID, reason string) *ServerMessage {
	msg := NewServerMessage(MessageTypeBidResult)
	msg.AuctionID = auctionID
	msg.Data["success"] = false
	msg.Data["error"] = reason
	return msg
}

// ParseClientMessage parses a JSON message from client
func ParseClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse client message: %w", err)
	}

	if msg.Type == "" {
		return nil, shared.ErrMessageTypeRequired
	}

	return &msg, nil
}

func (m *ClientMessage) validateAuctionID() error {
	if m.AuctionID == nil || *m.AuctionID == uuid.Nil {
		return shared.ErrAuctionIDRequired
	}
	return nil
}

// Amount extracts the bid amount from a bid message
func (m *ClientMessage) Amount() (float64, bool) {
	amount, ok := m.Data["amount"].(float64)
	return amount, ok
}

// MaxBid extracts the optional auto-bid ceiling from a bid message
func (m *ClientMessage) MaxBid() *float64 {
	if maxBid, ok := m.Data["maxBid"].(float64); ok {
		return &maxBid
	}
	return nil
}

// Validate validates a client message
func (m *ClientMessage) Validate() error {
	switch m.Type {
	case MessageTypeJoin, MessageTypeLeave:
		return m.validateAuctionID()

	case MessageTypeBid:
		if err := m.validateAuctionID(); err != nil {
			return err
		}
		if amount, ok := m.Amount(); !ok || amount <= 0 {
			return shared.ErrInvalidAmount
		}
		return nil

	case MessageTypePing:
		return nil

	default:
		return shared.ErrUnknownMessageType
	}
}
