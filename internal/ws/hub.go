package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// broadcastQueue is how many events may wait for Run before new ones are dropped
const broadcastQueue = 256

// Hub fans ledger change events out to every connected dashboard, in the
// order the ledger produced them
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastQueue),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			online := len(h.Clients)
			h.mutex.Unlock()
			log.Printf("New WS Client Connected (%d online)", online)

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Notify encodes a ledger event and queues it for broadcast. It never blocks
// the caller, which still holds the ledger lock: when the queue is full the
// event is dropped.
func (h *Hub) Notify(payload map[string]interface{}) {
	message, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Warning: failed to encode ws event %v: %v", payload["action"], err)
		return
	}

	select {
	case h.Broadcast <- message:
	default:
		log.Printf("Warning: ws queue full, dropped event %v", payload["action"])
	}
}

// Serve is the per-connection loop mounted on /ws. Incoming frames are read
// only to detect the disconnect.
func (h *Hub) Serve(c *websocket.Conn) {
	h.Register <- c
	defer func() {
		h.Unregister <- c
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
