package rest

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/spinfour-backend/internal/entity"
	"github.com/rocketscienceinc/spinfour-backend/internal/usecase"
)

const sessionHeader = "X-Session-ID"

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	NewGame(ctx context.Context, playerID string) (*usecase.Result, error)
	GetGame(ctx context.Context, playerID, gameID string) (*usecase.Result, error)
	MakeMove(ctx context.Context, playerID, gameID string, row, col int) (*usecase.Result, error)
	Rotate(ctx context.Context, playerID, gameID string) (*usecase.Result, error)
	Reset(ctx context.Context, playerID, gameID string) (*usecase.Result, error)
	SetRotationInterval(ctx context.Context, playerID, gameID string, interval int) (*usecase.Result, error)
}

func NewRouter(logger *slog.Logger, games gameUseCase) *gin.Engine {
	log := logger.With("component", "rest")

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/ping", PingHandler())

	api := r.Group("/api")
	api.POST("/sessions", CreateSessionHandler(log, games))

	gamesAPI := api.Group("/games", requireSession())
	gamesAPI.POST("", NewGameHandler(log, games))
	gamesAPI.GET("/:id", GetGameHandler(log, games))
	gamesAPI.POST("/:id/move", MoveHandler(log, games))
	gamesAPI.POST("/:id/rotate", RotateHandler(log, games))
	gamesAPI.POST("/:id/reset", ResetHandler(log, games))
	gamesAPI.PUT("/:id/rotation-interval", RotationIntervalHandler(log, games))

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
