// Package overlay serves the in-game overlay: a small local HTTP server
// with a WebSocket feed of formatted verdict frames. The browser source
// (or any subscriber) connects to /ws and receives one frame per
// evaluation tick.
package overlay

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Frame is one overlay update. Text is the fully formatted body produced
// by the result formatter; Verdict is carried separately so the client
// can color the panel without parsing the text.
type Frame struct {
	EvaluationID string    `json:"evaluationId"`
	Verdict      string    `json:"verdict"`
	Paused       bool      `json:"paused"`
	Text         string    `json:"text"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

// Hub fans frames out to every connected WebSocket client. Safe for
// concurrent use; the poller publishes while the HTTP server registers
// and unregisters connections.
type Hub struct {
	logger *zap.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	last    *Frame
}

// NewHub creates an empty Hub.
//
// Precondition: logger must be non-nil.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
	}
}

// Register adds a connection to the broadcast set and immediately replays
// the most recent frame so a freshly opened overlay is never blank.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	last := h.last
	h.mu.Unlock()

	if last != nil {
		if err := conn.WriteJSON(last); err != nil {
			h.logger.Debug("replaying last frame failed", zap.Error(err))
		}
	}
}

// Unregister removes a connection from the broadcast set and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// Publish sends a frame to every connected client. Clients whose write
// fails are dropped; a dead overlay tab must not stall the poller.
func (h *Hub) Publish(frame Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = &frame
	for conn := range h.clients {
		if err := conn.WriteJSON(frame); err != nil {
			h.logger.Debug("dropping overlay client",
				zap.Error(err),
			)
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

// ClientCount returns the number of connected overlay clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}
