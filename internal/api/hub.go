/*
Package api
File: hub.go
Description:
    The WebSocket Hub is the spectator feed of the colony.

    It maintains a registry of all connected clients and a broadcast channel.
    The turn heartbeat publishes a snapshot after every turn, and the colony's
    event sink publishes each event as it happens; the Hub writes both to the
    socket of every connected client.

    Architecture:
    - Hub: The singleton manager.
    - Client: Represents one browser connection.
    - ServeWs: The HTTP handler that upgrades a standard GET request to a WebSocket.
*/

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Envelope types published by the server.
const (
	MsgTurnPulse   = "turn_pulse"
	MsgColonyEvent = "colony_event"
	MsgGameOver    = "game_over"
	MsgSpectator   = "spectator_message"
)

// Message defines the standard JSON envelope for all real-time communication.
type Message struct {
	Type    string      `json:"type"`    // Envelope type (e.g., "turn_pulse", "colony_event")
	Payload interface{} `json:"payload"` // Snapshot, Event or free text
	Sender  string      `json:"sender"`  // "colony" or "spectator"
}

// Client represents a single connected spectator.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // Buffered channel for outbound messages
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients map[*Client]bool

	// Broadcast carries already-encoded envelopes to every client.
	Broadcast chan []byte

	register   chan *Client
	unregister chan *Client
}

// NewHub creates a new Hub instance. Run must be started in its own goroutine.
func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run is the main event loop for the Hub. It blocks.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Println("WS: New Connection Registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop it rather than stall the colony.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish wraps payload in a Message and queues it for broadcast.
// A nil Hub discards the message.
func (h *Hub) Publish(msgType string, payload interface{}) {
	if h == nil {
		return
	}
	b, err := json.Marshal(Message{Type: msgType, Payload: payload, Sender: "colony"})
	if err != nil {
		log.Printf("WS: Error marshaling %s: %v", msgType, err)
		return
	}
	h.Broadcast <- b
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the request and attaches the connection to the Hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WS Upgrade Error:", err)
		return
	}

	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump relays spectator chatter to everyone else.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WS Error: %v", err)
			}
			break
		}
		b, err := json.Marshal(Message{Type: MsgSpectator, Payload: string(message), Sender: "spectator"})
		if err != nil {
			continue
		}
		c.hub.Broadcast <- b
	}
}

// writePump drains the client's send channel onto the socket.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
