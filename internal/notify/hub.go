package notify

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one websocket subscriber, pinned to a single channel.
type Client struct {
	Channel string
	Conn    *websocket.Conn
	Mu      sync.Mutex
}

type publication struct {
	channel string
	message []byte
}

// Hub fans events out to the clients subscribed to their channel.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	publish    chan publication
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		publish:    make(chan publication, 16),
	}
}

// Publish implements Notifier. Marshal errors are logged and dropped; the
// caller never waits on delivery beyond the buffered hand-off.
func (h *Hub) Publish(channel string, ev Event) {
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("notify: marshal event failed: %v", err)
		return
	}
	h.publish <- publication{channel: channel, message: body}
}

// Run manages subscriptions and fan-out. Clients whose writes fail are
// unregistered and closed.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Conn.Close()
			}
		case pub := <-h.publish:
			for client := range h.Clients {
				if client.Channel != pub.channel {
					continue
				}
				client.Mu.Lock()
				err := client.Conn.WriteMessage(websocket.TextMessage, pub.message)
				client.Mu.Unlock()
				if err != nil {
					delete(h.Clients, client)
					client.Conn.Close()
				}
			}
		}
	}
}
