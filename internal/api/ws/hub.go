package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"vismify/internal/metrics"
)

const (
	TypeSearch        = "search"
	TypeSearchResults = "search_results"
	TypeThemeUpdate   = "theme_update"
	TypePing          = "ping"
	TypePong          = "pong"
	TypeError         = "error"

	writeWait = 10 * time.Second
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Client is one websocket connection. Writes are serialized per client.
type Client struct {
	VisitorID uuid.UUID
	conn      *websocket.Conn
	mu        sync.Mutex
}

func (c *Client) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

// Ping writes a ping control frame under the same lock as Send.
func (c *Client) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Client) Conn() *websocket.Conn {
	return c.conn
}

// Hub tracks every open connection per visitor. A visitor may have
// several tabs open, each with its own connection.
type Hub struct {
	clients map[uuid.UUID]map[*Client]struct{}
	mu      sync.RWMutex
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		log:     log,
	}
}

func (h *Hub) Register(visitorID uuid.UUID, conn *websocket.Conn) *Client {
	client := &Client{VisitorID: visitorID, conn: conn}

	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[visitorID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[visitorID] = set
	}
	set[client] = struct{}{}
	metrics.WebSocketConnections.Inc()

	h.log.Debug("websocket connected",
		zap.Stringer("visitor", visitorID),
		zap.Int("visitor_connections", len(set)),
	)
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[client.VisitorID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}

	client.conn.Close()
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.VisitorID)
	}
	metrics.WebSocketConnections.Dec()

	h.log.Debug("websocket disconnected", zap.Stringer("visitor", client.VisitorID))
}

// SendToVisitor writes msg to every connection of the visitor and returns
// the first write error. Visitors without connections are a no-op.
func (h *Hub) SendToVisitor(visitorID uuid.UUID, msg Message) error {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients[visitorID]))
	for client := range h.clients[visitorID] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	var firstErr error
	for _, client := range targets {
		if err := client.Send(msg); err != nil {
			h.log.Warn("websocket send failed",
				zap.Stringer("visitor", visitorID),
				zap.String("type", msg.Type),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (h *Hub) IsConnected(visitorID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[visitorID]) > 0
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, set := range h.clients {
		total += len(set)
	}
	return total
}

// Close drops every connection. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for visitorID, set := range h.clients {
		for client := range set {
			client.conn.Close()
			metrics.WebSocketConnections.Dec()
		}
		delete(h.clients, visitorID)
	}
}
