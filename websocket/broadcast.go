// Package websocket pushes live event state to connected browsers.
// file: websocket/broadcast.go
package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"go-ctf-event/logger"
)

// Hub tracks every open connection and fans broadcast messages out to them.
type Hub struct {
	mu          sync.RWMutex
	connections map[*Connection]bool
	broadcast   chan []byte
	upgrader    websocket.Upgrader

	// greeting, when set, is sent to each new connection and to clients that
	// ask for the current state.
	greeting func() []byte
}

// NewHub creates a hub. Call Run to start delivering messages.
func NewHub(allowedOrigins []string) *Hub {
	return &Hub{
		connections: make(map[*Connection]bool),
		broadcast:   make(chan []byte, hubBufferSize),
		upgrader:    newUpgrader(allowedOrigins),
	}
}

// SetGreeting installs the function that renders the current state.
func (h *Hub) SetGreeting(fn func() []byte) {
	h.mu.Lock()
	h.greeting = fn
	h.mu.Unlock()
}

// Run distributes queued messages until ctx is cancelled, then closes every
// connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case msg := <-h.broadcast:
			h.deliver(msg)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

func (h *Hub) deliver(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		select {
		case c.send <- msg:
		default:
			logger.Warn.Printf("[Hub.deliver] Dropping broadcast message for connection %v", c.conn.RemoteAddr())
		}
	}
}

// Count is the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	h.connections[c] = true
	n := len(h.connections)
	h.mu.Unlock()
	logger.Debug.Printf("[Hub.register] %v connected (%d open)", c.conn.RemoteAddr(), n)
}

// unregister removes c and closes its send channel exactly once.
func (h *Hub) unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.connections {
		delete(h.connections, c)
		close(c.send)
	}
}

func (h *Hub) currentState() []byte {
	h.mu.RLock()
	fn := h.greeting
	h.mu.RUnlock()
	if fn == nil {
		return nil
	}
	return fn()
}
