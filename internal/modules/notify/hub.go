package notify

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client pairs a connection with its write lock. gorilla/websocket allows
// at most one concurrent writer per connection, so every WriteJSON goes
// through writeMu.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// Hub tracks one dashboard connection per user. A reconnect replaces the
// previous connection.
type Hub struct {
	connections map[int64]*client
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		_ = old.conn.Close()
	}
	h.connections[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.connections[userID]; exists && cl != nil {
		_ = cl.conn.Close()
		delete(h.connections, userID)
	}
}

// SendToUser returns false when the user has no live connection or the
// write failed; a failed connection is dropped.
func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	cl, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || cl == nil {
		return false
	}

	cl.writeMu.Lock()
	err := cl.conn.WriteJSON(message)
	cl.writeMu.Unlock()

	if err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, cl := range h.connections {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.connections, id)
	}
}
