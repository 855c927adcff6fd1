package ws

import (
	"context"
	"sync"

	"upath/internal/pkg/logger"
)

// Hub fans broadcast messages out to every connected client. A client whose
// send buffer is full is dropped rather than allowed to stall the others.
//
// Register and Unregister mutate the client set under the mutex, so an
// Unregister issued after Register always observes the registration.
type Hub struct {
	clients   map[*Client]bool
	broadcast chan []byte
	stopped   bool
	mutex     sync.RWMutex
	log       *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.NewNop()
	}
	return &Hub{
		clients:   make(map[*Client]bool),
		broadcast: make(chan []byte, 256),
		log:       log,
	}
}

// Run delivers broadcasts until ctx is cancelled, then closes every client.
// Clients registering after that are refused.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			h.stopped = true
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mutex.Unlock()
			return

		case message := <-h.broadcast:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- message:
				default:
					h.remove(client)
				}
			}
			h.log.Debug("ws broadcast", "clients", len(snapshot))
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	h.log.Debug("ws client disconnected", "total_clients", total)
}

// Register adds client to the fan-out set. It reports false when the hub
// has already stopped; the caller owns the connection in that case.
func (h *Hub) Register(client *Client) bool {
	if h == nil || client == nil {
		return false
	}
	h.mutex.Lock()
	if h.stopped {
		h.mutex.Unlock()
		return false
	}
	h.clients[client] = true
	total := len(h.clients)
	h.mutex.Unlock()
	h.log.Debug("ws client connected", "total_clients", total)
	return true
}

// Unregister is idempotent; the client's send channel is closed once.
func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.remove(client)
}

// Broadcast never blocks; messages are dropped when the queue is full.
func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.log.Warn("ws broadcast dropped", "reason", "buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
