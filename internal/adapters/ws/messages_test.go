package ws

import (
	"fmt"
	"testing"

	"salvage-bidding-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseClientMessage(t *testing.T) {
	auctionID := uuid.New()

	raw := fmt.Sprintf(`{"type":"bid","auction_id":%q,"data":{"amount":1500,"maxBid":2000}}`, auctionID)
	msg, err := ParseClientMessage([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, MessageTypeBid, msg.Type)
	require.Equal(t, auctionID, *msg.AuctionID)

	amount, ok := msg.Amount()
	require.True(t, ok)
	require.Equal(t, 1500.0, amount)

	maxBid := msg.MaxBid()
	require.NotNil(t, maxBid)
	require.Equal(t, 2000.0, *maxBid)
}

func TestParseClientMessage_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "not json", raw: `join auction please`},
		{name: "missing type", raw: `{"auction_id":"b3f1c2d4-5678-4abc-9def-0123456789ab"}`, wantErr: shared.ErrMessageTypeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClientMessage([]byte(tt.raw))
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClientMessageValidate(t *testing.T) {
	auctionID := uuid.New()

	tests := []struct {
		name    string
		msg     ClientMessage
		wantErr error
	}{
		{
			name: "join with auction id",
			msg:  ClientMessage{Type: MessageTypeJoin, AuctionID: &auctionID},
		},
		{
			name:    "join without auction id",
			msg:     ClientMessage{Type: MessageTypeJoin},
			wantErr: shared.ErrAuctionIDRequired,
		},
		{
			name:    "leave without auction id",
			msg:     ClientMessage{Type: MessageTypeLeave},
			wantErr: shared.ErrAuctionIDRequired,
		},
		{
			name: "bid with amount",
			msg: ClientMessage{
				Type:      MessageTypeBid,
				AuctionID: &auctionID,
				Data:      map[string]interface{}{"amount": 100.0},
			},
		},
		{
			name: "bid without amount",
			msg: ClientMessage{
				Type:      MessageTypeBid,
				AuctionID: &auctionID,
				Data:      map[string]interface{}{},
			},
			wantErr: shared.ErrInvalidAmount,
		},
		{
			name: "bid with non-positive amount",
			msg: ClientMessage{
				Type:      MessageTypeBid,
				AuctionID: &auctionID,
				Data:      map[string]interface{}{"amount": 0.0},
			},
			wantErr: shared.ErrInvalidAmount,
		},
		{
			name: "bid without auction id",
			msg: ClientMessage{
				Type: MessageTypeBid,
				Data: map[string]interface{}{"amount": 100.0},
			},
			wantErr: shared.ErrAuctionIDRequired,
		},
		{
			name: "ping needs nothing",
			msg:  ClientMessage{Type: MessageTypePing},
		},
		{
			name:    "unknown type",
			msg:     ClientMessage{Type: "subscribe"},
			wantErr: shared.ErrUnknownMessageType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBidResultMessages(t *testing.T) {
	auctionID := uuid.New()

	accepted := NewBidAccepted(auctionID, map[string]interface{}{"amount": 500.0})
	require.Equal(t, MessageTypeBidResult, accepted.Type)
	require.Equal(t, auctionID, *accepted.AuctionID)
	require.Equal(t, true, accepted.Data["success"])

	rejected := NewBidRejected(&auctionID, "Auction is not active for bidding")
	require.Equal(t, MessageTypeBidResult, rejected.Type)
	require.Equal(t, false, rejected.Data["success"])
	require.Equal(t, "Auction is not active for bidding", rejected.Data["error"])
}
