// file: websocket/messenger.go
package websocket

import (
	"encoding/json"

	"go-ctf-event/logger"
)

var _ Messenger = (*Hub)(nil)

// Messenger is an interface for broadcasting messages.
type Messenger interface {
	BroadcastMessage(action string, payload map[string]interface{})
	BroadcastRaw(msg []byte)
}

// BroadcastMessage adds "action" to payload, marshals it and queues it for
// every connection.
func (h *Hub) BroadcastMessage(action string, payload map[string]interface{}) {
	msg := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		msg[k] = v
	}
	msg["action"] = action

	m, err := json.Marshal(msg)
	if err != nil {
		logger.Error.Printf("[Hub.BroadcastMessage] Error marshalling %s: %v", action, err)
		return
	}
	h.BroadcastRaw(m)
}

// BroadcastRaw queues an already encoded message. It never blocks; the
// message is dropped when the queue is full.
func (h *Hub) BroadcastRaw(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		logger.Warn.Printf("[Hub.BroadcastRaw] broadcast queue full, dropping %d bytes", len(msg))
	}
}
