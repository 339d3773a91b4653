package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	sendQueueSize = 64
)

// Client is one browser connection. Requests are handled one at a time on its read loop.
type Client struct {
	logger *slog.Logger
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte

	// set by the connect action, read only on the read loop
	sessionID string
	gameID    string
}

// enqueue drops the connection instead of blocking when the peer cannot keep up.
func (that *Client) enqueue(data []byte) {
	select {
	case that.send <- data:
	default:
		that.logger.Warn("send queue full, closing connection", "session", that.sessionID)
		_ = that.conn.Close()
	}
}

func (that *Client) readPump(ctx context.Context, server *Server) {
	defer func() {
		that.hub.leave(that)
		_ = that.conn.Close()
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				that.logger.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			that.logger.Error("failed to unmarshal message", "error", err)
			server.sendError(that, "", "malformed message", "")
			continue
		}

		server.dispatch(ctx, &message, that)
	}
}

func (that *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case message, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
