package hub

import (
	"encoding/json"
	"sync"
)

// Topics used by the board.
const (
	TopicNotices = "notices"
	TopicBoard   = "board"
)

// ClientBuffer is the capacity of a subscriber channel.
const ClientBuffer = 16

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single subscriber. The SSE handler ranges over it.
type Client chan []byte

// NewClient allocates a buffered client channel.
func NewClient() Client {
	return make(Client, ClientBuffer)
}

// Hub manages topics and their clients.
type Hub struct {
	topics map[string]map[Client]bool
	mu     sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a client to a topic.
func (h *Hub) Subscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[Client]bool)
	}
	h.topics[topic][client] = true
}

// Unsubscribe removes a client from a topic. The channel is closed once the
// client has left its last topic.
func (h *Hub) Unsubscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.topics[topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.topics, topic)
	}
	for _, others := range h.topics {
		if others[client] {
			return
		}
	}
	close(client)
}

// Subscribers reports how many clients listen on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Broadcast sends an event to all clients of a topic.
func (h *Hub) Broadcast(topic string, event Event) error {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.topics[topic] {
		// A full channel means a slow client; it misses this event.
		select {
		case client <- messageBytes:
		default:
		}
	}
	return nil
}
