package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/spinfour-backend/internal/apperror"
	"github.com/rocketscienceinc/spinfour-backend/internal/pkg"
	"github.com/rocketscienceinc/spinfour-backend/internal/spinfour"
	"github.com/rocketscienceinc/spinfour-backend/internal/usecase"
)

const sessionKey = "session"

type moveRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

type intervalRequest struct {
	Interval *int `json:"interval" binding:"required"`
}

// CreateSessionHandler resumes the session named in the header or starts a new one.
func CreateSessionHandler(logger *slog.Logger, games gameUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := c.GetHeader(sessionHeader)
		if !pkg.IsValidSessionID(session) {
			session = ""
		}

		player, err := games.GetOrCreatePlayer(c.Request.Context(), session)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.Header(sessionHeader, player.ID)
		c.JSON(http.StatusOK, gin.H{"player": player})
	}
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := games.NewGame(c.Request.Context(), c.GetString(sessionKey))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, result)
	}
}

func GetGameHandler(logger *slog.Logger, games gameUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := games.GetGame(c.Request.Context(), c.GetString(sessionKey), c.Param("id"))
		writeResult(c, logger, result, err)
	}
}

func MoveHandler(logger *slog.Logger, games gameUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req moveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row and col required"})
			return
		}

		result, err := games.MakeMove(c.Request.Context(), c.GetString(sessionKey), c.Param("id"), *req.Row, *req.Col)
		writeResult(c, logger, result, err)
	}
}

func RotateHandler(logger *slog.Logger, games gameUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := games.Rotate(c.Request.Context(), c.GetString(sessionKey), c.Param("id"))
		writeResult(c, logger, result, err)
	}
}

func ResetHandler(logger *slog.Logger, games gameUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := games.Reset(c.Request.Context(), c.GetString(sessionKey), c.Param("id"))
		writeResult(c, logger, result, err)
	}
}

func RotationIntervalHandler(logger *slog.Logger, games gameUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req intervalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "interval required"})
			return
		}

		result, err := games.SetRotationInterval(c.Request.Context(), c.GetString(sessionKey), c.Param("id"), *req.Interval)
		writeResult(c, logger, result, err)
	}
}

func requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := c.GetHeader(sessionHeader)
		if session == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": sessionHeader + " header required"})
			return
		}

		if !pkg.IsValidSessionID(session) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed " + sessionHeader})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

func writeResult(c *gin.Context, logger *slog.Logger, result *usecase.Result, err error) {
	if err != nil {
		var rejection *spinfour.RejectionError
		if errors.As(err, &rejection) && result != nil {
			c.JSON(http.StatusConflict, gin.H{
				"error":  rejection.Error(),
				"reason": rejection.Reason,
				"game":   result.Game,
				"events": result.Events,
			})
			return
		}

		writeError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func writeError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotYourGame):
		c.JSON(http.StatusForbidden, gin.H{"error": apperror.ErrNotYourGame.Error()})
	case errors.Is(err, apperror.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrPlayerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": apperror.ErrPlayerNotFound.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
