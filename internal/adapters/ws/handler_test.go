package ws

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salvage-bidding-service/internal/adapters/auth"
	"salvage-bidding-service/internal/adapters/broadcaster"
	"salvage-bidding-service/internal/domain/shared"
	"salvage-bidding-service/internal/ports/inbound"
	"salvage-bidding-service/internal/ports/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "ws-test-secret"

func newTestHandler(t *testing.T) (*WsHandler, *mocks.MockBiddingService) {
	ctrl := gomock.NewController(t)
	bidding := mocks.NewMockBiddingService(ctrl)

	handler := NewHandler(WsHandlerParams{
		Upgrader:       websocket.Upgrader{},
		BiddingService: bidding,
		Broadcaster:    broadcaster.NewHub(broadcaster.HubParams{Logger: zerolog.Nop()}),
		Tokens:         auth.NewTokenVerifier(handlerTestSecret),
		Logger:         zerolog.Nop(),
	})
	return handler, bidding
}

func signedToken(t *testing.T, bidderID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   bidderID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
	})
	signed, err := token.SignedString([]byte(handlerTestSecret))
	require.NoError(t, err)
	return signed
}

func dialHandler(t *testing.T, handler *WsHandler, token string) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	if token != "" {
		url += "?token=" + token
	}

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readReply(t *testing.T, conn *websocket.Conn) *ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return &msg
}

func TestHandleWebSocket_RejectsMissingToken(t *testing.T) {
	handler, _ := newTestHandler(t)

	srv := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestHandleWebSocket_RejectsInvalidToken(t *testing.T) {
	handler, _ := newTestHandler(t)

	srv := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=not.a.token"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestHandleJoin_AcksRoomStatus(t *testing.T) {
	handler, _ := newTestHandler(t)
	conn := dialHandler(t, handler, signedToken(t, uuid.New()))

	auctionID := uuid.New()
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypeJoin, AuctionID: &auctionID}))

	reply := readReply(t, conn)
	require.Equal(t, MessageTypeRoomStatus, reply.Type)
	require.Equal(t, auctionID, *reply.AuctionID)
	require.Equal(t, "joined", reply.Data["status"])
}

func TestHandleBid_AcceptedAck(t *testing.T) {
	handler, bidding := newTestHandler(t)

	bidderID := uuid.New()
	auctionID := uuid.New()
	conn := dialHandler(t, handler, signedToken(t, bidderID))

	bidding.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req inbound.PlaceBidRequest) (*inbound.PlacedBid, error) {
			require.Equal(t, auctionID, req.AuctionID)
			require.Equal(t, bidderID, req.BidderID)
			require.Equal(t, 1500.0, req.Amount)
			return &inbound.PlacedBid{CurrentPrice: 1500}, nil
		})

	require.NoError(t, conn.WriteJSON(ClientMessage{
		Type:      MessageTypeBid,
		AuctionID: &auctionID,
		Data:      map[string]interface{}{"amount": 1500.0},
	}))

	reply := readReply(t, conn)
	require.Equal(t, MessageTypeBidResult, reply.Type)
	require.Equal(t, true, reply.Data["success"])
}

func TestHandleBid_RejectionReachesSubmitter(t *testing.T) {
	handler, bidding := newTestHandler(t)

	auctionID := uuid.New()
	conn := dialHandler(t, handler, signedToken(t, uuid.New()))

	bidding.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, shared.ErrAuctionNotActive)

	require.NoError(t, conn.WriteJSON(ClientMessage{
		Type:      MessageTypeBid,
		AuctionID: &auctionID,
		Data:      map[string]interface{}{"amount": 100.0},
	}))

	reply := readReply(t, conn)
	require.Equal(t, MessageTypeBidResult, reply.Type)
	require.Equal(t, false, reply.Data["success"])
	require.Equal(t, shared.ErrAuctionNotActive.Error(), reply.Data["error"])
}

func TestHandleBid_TransientFailureHidesDetail(t *testing.T) {
	handler, bidding := newTestHandler(t)

	auctionID := uuid.New()
	conn := dialHandler(t, handler, signedToken(t, uuid.New()))

	bidding.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: driver: bad connection", shared.ErrDatabaseTransaction))

	require.NoError(t, conn.WriteJSON(ClientMessage{
		Type:      MessageTypeBid,
		AuctionID: &auctionID,
		Data:      map[string]interface{}{"amount": 100.0},
	}))

	reply := readReply(t, conn)
	require.Equal(t, MessageTypeBidResult, reply.Type)
	require.Equal(t, false, reply.Data["success"])
	require.Equal(t, "bid could not be processed", reply.Data["error"])
}

func TestInvalidMessage_ErrorReplyDelivered(t *testing.T) {
	handler, _ := newTestHandler(t)
	conn := dialHandler(t, handler, signedToken(t, uuid.New()))

	// Bid without an auction id fails validation inside the worker; the
	// reply still has to arrive over the connection's single writer.
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypeBid}))

	reply := readReply(t, conn)
	require.Equal(t, MessageTypeError, reply.Type)
	require.NotNil(t, reply.Error)
	require.Contains(t, *reply.Error, shared.ErrAuctionIDRequired.Error())
}

func TestHandlePing_Pong(t *testing.T) {
	handler, _ := newTestHandler(t)
	conn := dialHandler(t, handler, signedToken(t, uuid.New()))

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypePing}))

	reply := readReply(t, conn)
	require.Equal(t, MessageTypePong, reply.Type)
}
