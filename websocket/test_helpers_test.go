// file: websocket/test_helpers_test.go
package websocket

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// fakeConn implements WSConn. ReadMessage replays inbound and then fails;
// written text frames are recorded.
type fakeConn struct {
	mu      sync.Mutex
	inbound [][]byte
	written [][]byte
	pings   int
	closed  bool
}

func (fc *fakeConn) WriteMessage(messageType int, data []byte) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	switch messageType {
	case websocket.PingMessage:
		fc.pings++
	case websocket.TextMessage:
		fc.written = append(fc.written, data)
	}
	return nil
}

func (fc *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (fc *fakeConn) ReadMessage() (int, []byte, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if len(fc.inbound) == 0 {
		return 0, nil, errors.New("eof")
	}
	msg := fc.inbound[0]
	fc.inbound = fc.inbound[1:]
	return websocket.TextMessage, msg, nil
}

func (fc *fakeConn) Close() error {
	fc.mu.Lock()
	fc.closed = true
	fc.mu.Unlock()
	return nil
}

func (fc *fakeConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 12345}
}

func (fc *fakeConn) SetReadLimit(int64)                {}
func (fc *fakeConn) SetReadDeadline(time.Time) error   { return nil }
func (fc *fakeConn) SetPongHandler(func(string) error) {}

type sentMessage struct {
	action  string
	payload map[string]interface{}
}

// recordingMessenger captures broadcasts instead of sending them.
type recordingMessenger struct {
	mu   sync.Mutex
	msgs []sentMessage
	raw  [][]byte
}

func (r *recordingMessenger) BroadcastMessage(action string, payload map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, sentMessage{action: action, payload: payload})
}

func (r *recordingMessenger) BroadcastRaw(msg []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raw = append(r.raw, msg)
}

func (r *recordingMessenger) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.msgs))
	for i, m := range r.msgs {
		out[i] = m.action
	}
	return out
}

// keyTranslator echoes message IDs.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }
