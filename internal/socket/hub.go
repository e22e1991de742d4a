package socket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds how long a push may block on a slow or stalled peer.
const writeWait = 10 * time.Second

// Hub tracks WebSocket connections per user. A user may be connected from
// several devices at once; snapshot pushes go to all of them. Each connection
// carries its own write mutex so concurrent pushes never interleave frames.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*websocket.Conn]*sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*websocket.Conn]*sync.Mutex),
	}
}

// Register adds a connection for the given user.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]*sync.Mutex)
	}
	h.clients[userID][conn] = &sync.Mutex{}
	log.Printf("WebSocket client registered for user %s", userID)
}

// Unregister removes a connection for the given user.
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, userID)
		}
		log.Printf("WebSocket client unregistered for user %s", userID)
	}
}

// Connections reports how many connections the given user currently has.
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Broadcast sends a message to every connection of the given user. An offline
// user is not an error. The hub lock is never held across network writes, so a
// stalled peer cannot wedge Register or Unregister; each write carries a
// deadline, and a connection that fails to take the message in time is dropped
// and closed.
func (h *Hub) Broadcast(userID string, message []byte) {
	h.mu.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.clients[userID]))
	for conn, writeMu := range h.clients[userID] {
		conns[conn] = writeMu
	}
	h.mu.RUnlock()

	for conn, writeMu := range conns {
		writeMu.Lock()
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := conn.WriteMessage(websocket.TextMessage, message)
		writeMu.Unlock()

		if err != nil {
			log.Printf("Failed to push message to user %s, dropping connection: %v", userID, err)
			h.Unregister(userID, conn)
			conn.Close()
		}
	}
}
