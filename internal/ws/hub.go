package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// StateMessage is the payload pushed on every phase change. The initial
// snapshot sent on connect carries the phase only.
type StateMessage struct {
	State      string `json:"state"`
	QuestionID uint   `json:"question_id"`
}

type Snapshot struct {
	State string `json:"state"`
}

// Hub is the registry of live client connections. Connections are kept in
// insertion order so a broadcast reaches clients in a deterministic order.
// The mutex also serializes writes to individual connections, which
// gorilla/websocket requires.
type Hub struct {
	mu    sync.Mutex
	conns []*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns = append(h.conns, conn)
	log.Printf("ws: client connected (total: %d)", len(h.conns))
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, c := range h.conns {
		if c == conn {
			h.conns = append(h.conns[:i], h.conns[i+1:]...)
			conn.Close()
			log.Printf("ws: client disconnected (total: %d)", len(h.conns))
			return
		}
	}
}

// Send pushes a single message to one connection, serialized against any
// in-flight broadcast.
func (h *Hub) Send(conn *websocket.Conn, message interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("ws: write error: %v", err)
	}
}

// Broadcast pushes the same message to every registered connection in
// registry order. A write failure drops that connection without aborting
// delivery to the rest.
func (h *Hub) Broadcast(message interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	kept := h.conns[:0]
	for _, conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			continue
		}
		kept = append(kept, conn)
	}
	h.conns = kept
}

// Count reports the number of registered connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
