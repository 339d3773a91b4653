package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/spinfour-backend/internal/entity"
	"github.com/rocketscienceinc/spinfour-backend/internal/spinfour"
	"github.com/rocketscienceinc/spinfour-backend/internal/usecase"
)

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	NewGame(ctx context.Context, playerID string) (*usecase.Result, error)
	ActiveGame(ctx context.Context, playerID string) (*usecase.Result, error)
	MakeMove(ctx context.Context, playerID, gameID string, row, col int) (*usecase.Result, error)
	Rotate(ctx context.Context, playerID, gameID string) (*usecase.Result, error)
	Reset(ctx context.Context, playerID, gameID string) (*usecase.Result, error)
	SetRotationInterval(ctx context.Context, playerID, gameID string, interval int) (*usecase.Result, error)
}

type handlerFunc func(ctx context.Context, message *Message, client *Client) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	hub         *Hub
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "ws_server"),
		gameUseCase: gameUseCase,
		hub:         NewHub(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionState] = server.handleState
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionRotate] = server.handleRotate
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionInterval] = server.handleInterval

	return server
}

// Handler serves the websocket endpoint at /ws. The hub must be running, see Run.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Run drives the hub until ctx is done.
func (that *Server) Run(ctx context.Context) {
	that.hub.Run(ctx)
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	go that.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := &Client{
		logger: that.logger,
		hub:    that.hub,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
	}

	log.Info("WebSocket connection established")

	go client.writePump()
	go client.readPump(ctx, that)
}

func (that *Server) dispatch(ctx context.Context, message *Message, client *Client) {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		that.sendError(client, message.Action, "unknown action", "")
		return
	}

	if message.Action != actionConnect && client.sessionID == "" {
		that.sendError(client, message.Action, "connect first", "")
		return
	}

	if err := handler(ctx, message, client); err != nil {
		log.Error("error processing message", "error", err)
	}
}

func (that *Server) send(client *Client, action string, payload Payload) error {
	data, err := encode(action, payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	client.enqueue(data)

	return nil
}

func (that *Server) broadcast(sessionID, action string, payload Payload) error {
	data, err := encode(action, payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	that.hub.Broadcast(sessionID, data)

	return nil
}

func (that *Server) sendError(client *Client, action, message string, reason spinfour.Reason) {
	payload := Payload{Action: action, Error: message, Reason: reason}

	if err := that.send(client, actionError, payload); err != nil {
		that.logger.Error("failed to send error response", "error", err)
	}
}
