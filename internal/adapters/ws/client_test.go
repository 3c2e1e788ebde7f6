package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// dialTestConn upgrades a loopback connection and returns the server side
func dialTestConn(t *testing.T) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientSide, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { clientSide.Close() })

	return <-connCh
}

func newTestClient(t *testing.T) *WsClient {
	return NewClient(WsClientParams{
		BidderID: uuid.New(),
		Conn:     dialTestConn(t),
		Logger:   zerolog.Nop(),
	})
}

func TestClient_SendDuringStopDoesNotPanic(t *testing.T) {
	client := newTestClient(t)
	client.Start()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				client.Send(NewServerMessage(MessageTypePong))
			}
		}()
	}

	client.Stop()
	wg.Wait()

	require.Error(t, client.Send(NewServerMessage(MessageTypePong)))
}

func TestClient_StopIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	client.Start()

	client.Stop()
	client.Stop()
}
