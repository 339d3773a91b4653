package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/spinfour-backend/internal/apperror"
	"github.com/rocketscienceinc/spinfour-backend/internal/pkg"
	"github.com/rocketscienceinc/spinfour-backend/internal/spinfour"
	"github.com/rocketscienceinc/spinfour-backend/internal/usecase"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, client *Client) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		that.sendError(client, msg.Action, "malformed payload", "")
		return err
	}

	var sessionID string
	if payloadReq.Player != nil && pkg.IsValidSessionID(payloadReq.Player.ID) {
		sessionID = payloadReq.Player.ID
	}

	if client.sessionID != "" && sessionID != client.sessionID {
		that.sendError(client, msg.Action, "connection already bound to another session", "")
		return nil
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, sessionID)
	if err != nil {
		that.sendError(client, msg.Action, "failed to create a new player", "")
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if client.sessionID == "" {
		client.sessionID = player.ID
		that.hub.join(client)
	}

	payloadResp := Payload{Player: player}

	if player.GameID != "" {
		result, err := that.gameUseCase.ActiveGame(ctx, player.ID)
		switch {
		case errors.Is(err, apperror.ErrNoActiveGame):
			log.Info("session game expired", "playerID", player.ID)
		case err != nil:
			that.sendError(client, msg.Action, "failed to get the game", "")
			return fmt.Errorf("failed to get active game: %w", err)
		default:
			client.gameID = result.Game.ID
			payloadResp.Game = result.Game
			payloadResp.Events = result.Events
		}
	}

	if err = that.send(client, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, client *Client) error {
	result, err := that.gameUseCase.NewGame(ctx, client.sessionID)
	if err != nil {
		that.sendError(client, msg.Action, "failed to create a new game", "")
		return fmt.Errorf("failed to create game: %w", err)
	}

	client.gameID = result.Game.ID

	return that.broadcast(client.sessionID, actionEvents, Payload{Game: result.Game, Events: result.Events})
}

// handleState redraws the game for the asking connection only.
func (that *Server) handleState(ctx context.Context, msg *Message, client *Client) error {
	result, err := that.gameUseCase.ActiveGame(ctx, client.sessionID)
	if err != nil {
		that.sendFailure(client, msg.Action, err)
		return nil
	}

	client.gameID = result.Game.ID

	return that.send(client, actionEvents, Payload{Game: result.Game, Events: result.Events})
}

func (that *Server) handleMove(ctx context.Context, msg *Message, client *Client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		that.sendError(client, msg.Action, "malformed payload", "")
		return err
	}

	if payloadReq.Row == nil || payloadReq.Col == nil {
		that.sendError(client, msg.Action, "row and col are required", "")
		return nil
	}

	row, col := *payloadReq.Row, *payloadReq.Col

	return that.applyToGame(client, msg.Action, payloadReq, func(gameID string) (*usecase.Result, error) {
		return that.gameUseCase.MakeMove(ctx, client.sessionID, gameID, row, col)
	})
}

func (that *Server) handleRotate(ctx context.Context, msg *Message, client *Client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		that.sendError(client, msg.Action, "malformed payload", "")
		return err
	}

	return that.applyToGame(client, msg.Action, payloadReq, func(gameID string) (*usecase.Result, error) {
		return that.gameUseCase.Rotate(ctx, client.sessionID, gameID)
	})
}

func (that *Server) handleReset(ctx context.Context, msg *Message, client *Client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		that.sendError(client, msg.Action, "malformed payload", "")
		return err
	}

	return that.applyToGame(client, msg.Action, payloadReq, func(gameID string) (*usecase.Result, error) {
		return that.gameUseCase.Reset(ctx, client.sessionID, gameID)
	})
}

func (that *Server) handleInterval(ctx context.Context, msg *Message, client *Client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		that.sendError(client, msg.Action, "malformed payload", "")
		return err
	}

	if payloadReq.Interval == nil {
		that.sendError(client, msg.Action, "interval is required", "")
		return nil
	}

	interval := *payloadReq.Interval

	return that.applyToGame(client, msg.Action, payloadReq, func(gameID string) (*usecase.Result, error) {
		return that.gameUseCase.SetRotationInterval(ctx, client.sessionID, gameID, interval)
	})
}

// applyToGame runs op on the game named in the payload, or on the connection's current game, and
// pushes the outcome to every connection of the session.
func (that *Server) applyToGame(
	client *Client,
	action string,
	payloadReq Payload,
	op func(gameID string) (*usecase.Result, error),
) error {
	gameID := client.gameID
	if payloadReq.Game != nil && payloadReq.Game.ID != "" {
		gameID = payloadReq.Game.ID
	}

	if gameID == "" {
		that.sendError(client, action, apperror.ErrNoActiveGame.Error(), "")
		return nil
	}

	result, err := op(gameID)
	if err != nil {
		that.sendFailure(client, action, err)
		return nil
	}

	client.gameID = result.Game.ID

	return that.broadcast(client.sessionID, actionEvents, Payload{Game: result.Game, Events: result.Events})
}

// sendFailure turns a use case error into an error message for the asking connection.
func (that *Server) sendFailure(client *Client, action string, err error) {
	var rejection *spinfour.RejectionError

	switch {
	case errors.As(err, &rejection):
		that.sendError(client, action, rejection.Error(), rejection.Reason)
	case errors.Is(err, apperror.ErrNotYourGame):
		that.sendError(client, action, apperror.ErrNotYourGame.Error(), "")
	case errors.Is(err, apperror.ErrNoActiveGame):
		that.sendError(client, action, apperror.ErrNoActiveGame.Error(), "")
	case errors.Is(err, apperror.ErrGameNotFound):
		that.sendError(client, action, apperror.ErrGameNotFound.Error(), "")
	default:
		that.logger.Error("request failed", "action", action, "error", err)
		that.sendError(client, action, "internal error", "")
	}
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
