package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vismify/internal/api/dto"
	"vismify/internal/api/middleware"
	"vismify/internal/api/services"
	"vismify/internal/api/ws"
	"vismify/internal/metrics"
)

const (
	pongWait       = 60 * time.Second
	maxMessageSize = 4096
)

type incomingMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type errorData struct {
	Message string `json:"message"`
}

// WebSocketHandler serves live catalog search and theme updates. Each
// connection belongs to the visitor named by the visitor cookie.
type WebSocketHandler struct {
	hub      *ws.Hub
	catalog  *services.CatalogService
	upgrader websocket.Upgrader
	pongWait time.Duration
	log      *zap.Logger
}

func NewWebSocketHandler(hub *ws.Hub, catalog *services.CatalogService, allowedOrigins []string, log *zap.Logger) *WebSocketHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebSocketHandler{
		hub:     hub,
		catalog: catalog,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
		pongWait: pongWait,
		log:      log,
	}
}

// HandleConnection godoc
// @Summary Live catalog channel
// @Description Upgrades to a websocket. Send {"type":"search","data":{...}} to receive search_results; theme changes arrive as theme_update.
// @Tags catalog
// @Router /api/ws [get]
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	visitorID, err := middleware.GetVisitorIDFromContext(c.Request().Context())
	if err != nil {
		visitorID = uuid.New()
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", zap.Error(err))
		return nil
	}

	client := h.hub.Register(visitorID, conn)
	defer h.hub.Unregister(client)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(client, done)

	for {
		var msg incomingMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket read failed", zap.Stringer("visitor", visitorID), zap.Error(err))
			}
			return nil
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))

		reply := h.handleMessage(c, msg)
		if err := client.Send(reply); err != nil {
			h.log.Debug("websocket write failed", zap.Stringer("visitor", visitorID), zap.Error(err))
			return nil
		}
	}
}

// keepAlive pings the client a little more often than pongWait so the
// pong handler keeps pushing the read deadline out on idle tabs.
func (h *WebSocketHandler) keepAlive(client *ws.Client, done <-chan struct{}) {
	ticker := time.NewTicker(h.pongWait * 9 / 10)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.Ping(); err != nil {
				h.log.Debug("websocket ping failed", zap.Stringer("visitor", client.VisitorID), zap.Error(err))
				return
			}
		}
	}
}

func (h *WebSocketHandler) handleMessage(c echo.Context, msg incomingMessage) ws.Message {
	switch msg.Type {
	case ws.TypePing:
		return ws.Message{Type: ws.TypePong}
	case ws.TypeSearch:
		var params dto.SearchParams
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &params); err != nil {
				return errorMessage("invalid search")
			}
		}

		query := params.ToQuery()
		result, err := h.catalog.Search(c.Request().Context(), query)
		if err != nil {
			h.log.Error("catalog search failed", zap.Error(err))
			return errorMessage("catalog unavailable")
		}
		metrics.CatalogSearches.WithLabelValues(string(query.Sort), "ws").Inc()

		return ws.Message{Type: ws.TypeSearchResults, Data: dto.CatalogFromDomain(result)}
	default:
		return errorMessage("unknown message type")
	}
}

func errorMessage(message string) ws.Message {
	return ws.Message{Type: ws.TypeError, Data: errorData{Message: message}}
}

// checkOrigin allows same-host requests, requests without an Origin
// header and any origin in allowed. A "*" entry allows every origin.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		set[strings.TrimRight(strings.ToLower(origin), "/")] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := set["*"]; ok {
			return true
		}
		if _, ok := set[strings.ToLower(origin)]; ok {
			return true
		}

		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}
