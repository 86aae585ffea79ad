package push

import "sync"

// Hub tracks connected clients per player and fans state updates out to
// them. A player may have several connections (multiple tabs).
type Hub struct {
	mu      sync.Mutex
	clients map[int64]map[*Client]bool
}

// NewHub returns an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]bool),
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.playerID]
	if !ok {
		set = make(map[*Client]bool)
		h.clients[c.playerID] = set
	}

	set[c] = true
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.playerID]
	if !ok {
		return
	}

	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.playerID)
	}
}

// Broadcast sends the message to every client of the player. Returns the
// number of clients that accepted the message.
func (h *Hub) Broadcast(playerID int64, msg interface{}) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for client := range h.clients[playerID] {
		if client.Send(msg) {
			sent++
		}
	}

	return sent
}

// ClientCount returns the number of connected clients for the player
func (h *Hub) ClientCount(playerID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients[playerID])
}
