package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/metrics"
)

// Room and event names on the wire. Chat rooms are keyed by the event id in
// decimal, or "general" for the lobby.
const (
	RoomGeneral = "general"

	EventMessage           = "message"
	EventMessageDeleted    = "messageDeleted"
	EventMessagesDeleted   = "messagesDeleted"
	EventChatStatusChanged = "user:chatStatusChanged"
)

// Broadcaster is what the services see. Publishing is fire-and-forget; a
// room with no subscribers is a no-op, never an error.
type Broadcaster interface {
	Publish(room, event string, data interface{})
}

// ClientMsg is the only frame clients send: join/leave a room, or ping.
type ClientMsg struct {
	Type string `json:"type"`
	Room string `json:"room"`
}

type frame struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans chat events out to websocket clients grouped by room.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *zap.Logger
	metrics  *metrics.Metrics

	mu sync.RWMutex
	// room -> set of connections
	subs map[string]map[*websocket.Conn]struct{}

	// gorilla connections allow a single writer at a time
	writeMu sync.Mutex
}

func NewHub(logger *zap.Logger, metrics *metrics.Metrics) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		logger:   logger,
		metrics:  metrics,
		subs:     make(map[string]map[*websocket.Conn]struct{}),
	}
}

// HandleWS owns a connection for its lifetime. A client may join several
// rooms; on disconnect it is dropped from all of them.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.WebsocketClients.Inc()
		defer h.metrics.WebsocketClients.Dec()
	}

	for {
		var msg ClientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Type {
		case "join":
			room := msg.Room
			if room == "" {
				room = RoomGeneral
			}
			h.mu.Lock()
			if _, ok := h.subs[room]; !ok {
				h.subs[room] = make(map[*websocket.Conn]struct{})
			}
			h.subs[room][conn] = struct{}{}
			h.mu.Unlock()
		case "leave":
			h.mu.Lock()
			if set, ok := h.subs[msg.Room]; ok {
				delete(set, conn)
				if len(set) == 0 {
					delete(h.subs, msg.Room)
				}
			}
			h.mu.Unlock()
		case "ping":
			h.writeMu.Lock()
			_ = conn.WriteJSON(map[string]string{"type": "pong"})
			h.writeMu.Unlock()
		}
	}

	h.mu.Lock()
	for _, set := range h.subs {
		delete(set, conn)
	}
	h.mu.Unlock()
}

func (h *Hub) Publish(room, event string, data interface{}) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subs[room]))
	for c := range h.subs[room] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()
	if len(conns) == 0 {
		return
	}

	b, err := json.Marshal(frame{Event: event, Data: data})
	if err != nil {
		h.logger.Warn("Failed to marshal realtime frame",
			zap.String("room", room),
			zap.String("event", event),
			zap.Error(err))
		return
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			h.logger.Debug("Dropping slow websocket client", zap.String("room", room), zap.Error(err))
		}
	}
}

// Serve runs the chat socket on its own listener, away from the API port.
func Serve(hub *Hub, port string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.HandleWS)

	srv := &http.Server{Addr: port, Handler: mux}
	go func() {
		logger.Info("Chat socket listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Chat socket stopped", zap.Error(err))
		}
	}()

	return srv
}
