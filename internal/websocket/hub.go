// Package websocket pushes generated-model events to connected viewers so an
// open viewer refreshes without polling.
package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/radityarh/pulseband/domain/entities"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Viewers only send small
	// control messages.
	maxMessageSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Viewers are browser clients on arbitrary origins.
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WriteData is a single outbound websocket frame.
type WriteData struct {
	// Type is websocket.TextMessage or websocket.BinaryMessage.
	Type    int
	Payload []byte
}

// Hub maintains the set of active viewer clients and broadcasts model events
// to them.
type Hub struct {
	// Registered clients keyed by viewer ID.
	clients map[string]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	mu sync.RWMutex

	logger *zap.Logger
}

// NewHub creates a new WebSocket hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.viewerID] = client
			h.mu.Unlock()
			h.logger.Info("Viewer registered", zap.String("viewerID", client.viewerID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.viewerID]; ok {
				delete(h.clients, client.viewerID)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("Viewer unregistered", zap.String("viewerID", client.viewerID))
		}
	}
}

// ViewerCount returns the number of connected viewers.
func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ModelGenerated broadcasts a model_generated event to every connected
// viewer. It satisfies usecase.ViewerNotifier.
func (h *Hub) ModelGenerated(model *entities.BraceletModel) {
	payload, err := marshalMessage(NewModelGeneratedMessage(model))
	if err != nil {
		h.logger.Error("Failed to marshal model event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for viewerID, client := range h.clients {
		select {
		case client.send <- WriteData{Type: websocket.TextMessage, Payload: payload}:
		default:
			// A viewer that cannot keep up loses events, not the server.
			h.logger.Warn("Dropping model event for slow viewer",
				zap.String("viewerID", viewerID))
		}
	}
}
