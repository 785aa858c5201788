package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	hub     *Hub
	server  *httptest.Server
	mu      sync.Mutex
	clients []*Client
}

func newTestServer(t *testing.T, visitorID uuid.UUID) *testServer {
	t.Helper()
	ts := &testServer{hub: NewHub(nil)}
	upgrader := websocket.Upgrader{}
	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := ts.hub.Register(visitorID, conn)
		ts.mu.Lock()
		ts.clients = append(ts.clients, client)
		ts.mu.Unlock()
	}))
	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func (ts *testServer) waitFor(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return ts.hub.ConnectionCount() == n
	}, time.Second, 10*time.Millisecond)
}

func TestHub_SendToVisitorReachesEveryTab(t *testing.T) {
	visitorID := uuid.New()
	ts := newTestServer(t, visitorID)

	first := ts.dial(t)
	second := ts.dial(t)
	ts.waitFor(t, 2)
	assert.True(t, ts.hub.IsConnected(visitorID))

	require.NoError(t, ts.hub.SendToVisitor(visitorID, Message{
		Type: TypeThemeUpdate,
		Data: map[string]string{"theme": "dark"},
	}))

	for _, conn := range []*websocket.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		var msg struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, TypeThemeUpdate, msg.Type)
		assert.Equal(t, "dark", msg.Data["theme"])
	}
}

func TestHub_UnregisterAndUnknownVisitor(t *testing.T) {
	visitorID := uuid.New()
	ts := newTestServer(t, visitorID)

	ts.dial(t)
	ts.waitFor(t, 1)

	assert.NoError(t, ts.hub.SendToVisitor(uuid.New(), Message{Type: TypePing}))

	ts.mu.Lock()
	client := ts.clients[0]
	ts.mu.Unlock()

	ts.hub.Unregister(client)
	assert.Equal(t, 0, ts.hub.ConnectionCount())
	assert.False(t, ts.hub.IsConnected(visitorID))

	// Unregistering twice is harmless.
	ts.hub.Unregister(client)
	assert.Equal(t, 0, ts.hub.ConnectionCount())
}

func TestHub_Close(t *testing.T) {
	ts := newTestServer(t, uuid.New())
	ts.dial(t)
	ts.dial(t)
	ts.waitFor(t, 2)

	ts.hub.Close()
	assert.Equal(t, 0, ts.hub.ConnectionCount())
}
