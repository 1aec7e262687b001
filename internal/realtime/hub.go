package realtime

import (
	"auction-backend/utils"
)

const broadcastQueueSize = 64

// Hub fans every published event out to all connected viewers, in emission
// order, best effort: there is no replay, and viewers that cannot keep up
// are disconnected rather than allowed to stall the rest.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	clients    map[*Client]struct{}
}

// NewHub creates a hub. Run must be started on its own goroutine before
// clients connect or events are published.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, broadcastQueueSize),
		clients:    make(map[*Client]struct{}),
	}
}

// Run owns the client set; all membership changes and deliveries happen on
// this single goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			utils.Info("viewer connected", map[string]any{
				"session_id": client.id,
				"viewers":    len(h.clients),
			})
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				utils.Info("viewer disconnected", map[string]any{
					"session_id": client.id,
					"viewers":    len(h.clients),
				})
			}
		case event := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// slow viewer: drop it rather than stall the fan-out
					delete(h.clients, client)
					close(client.send)
					utils.Warn("slow viewer dropped", map[string]any{
						"session_id": client.id,
						"event":      event.Name,
					})
				}
			}
		}
	}
}

// Publish enqueues an event for broadcast. Delivery is best effort: if the
// queue is full the event is dropped, never blocking the caller's request.
func (h *Hub) Publish(event Event) {
	select {
	case h.broadcast <- event:
	default:
		utils.Warn("broadcast queue full, event dropped", map[string]any{"event": event.Name})
	}
}
