package websocket

import (
	"context"
	"log/slog"
)

type outbound struct {
	sessionID string
	data      []byte
}

// Hub keeps the connections of every session and fans game updates out to all of them, so a
// session open in two tabs stays in sync.
type Hub struct {
	logger *slog.Logger

	sessions map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound

	done chan struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger.With("component", "ws_hub"),
		sessions:   make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 64),
		done:       make(chan struct{}),
	}
}

// Run owns the session table until ctx is done.
func (that *Hub) Run(ctx context.Context) {
	defer close(that.done)

	for {
		select {
		case client := <-that.register:
			that.registerClient(client)

		case client := <-that.unregister:
			that.unregisterClient(client)

		case message := <-that.broadcast:
			that.broadcastMessage(message)

		case <-ctx.Done():
			that.logger.Info("hub stopped")
			return
		}
	}
}

// Broadcast queues data for every connection of the session.
func (that *Hub) Broadcast(sessionID string, data []byte) {
	select {
	case that.broadcast <- outbound{sessionID: sessionID, data: data}:
	case <-that.done:
	}
}

func (that *Hub) join(client *Client) {
	select {
	case that.register <- client:
	case <-that.done:
	}
}

func (that *Hub) leave(client *Client) {
	select {
	case that.unregister <- client:
	case <-that.done:
	}
}

func (that *Hub) registerClient(client *Client) {
	if that.sessions[client.sessionID] == nil {
		that.sessions[client.sessionID] = make(map[*Client]bool)
	}
	that.sessions[client.sessionID][client] = true

	that.logger.Debug("client registered", "session", client.sessionID, "clients", len(that.sessions[client.sessionID]))
}

// unregisterClient runs once per client, after its read loop ended, and closes its send queue.
func (that *Hub) unregisterClient(client *Client) {
	if clients, ok := that.sessions[client.sessionID]; ok {
		delete(clients, client)

		if len(clients) == 0 {
			delete(that.sessions, client.sessionID)
		}
	}

	close(client.send)

	that.logger.Debug("client unregistered", "session", client.sessionID)
}

func (that *Hub) broadcastMessage(message outbound) {
	for client := range that.sessions[message.sessionID] {
		client.enqueue(message.data)
	}
}

func (that *Hub) clientCount(sessionID string) int {
	return len(that.sessions[sessionID])
}
