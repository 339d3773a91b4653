package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/spinfour-backend/internal/apperror"
	"github.com/rocketscienceinc/spinfour-backend/internal/entity"
	"github.com/rocketscienceinc/spinfour-backend/internal/pkg"
	"github.com/rocketscienceinc/spinfour-backend/internal/spinfour"
)

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Touch(ctx context.Context, id string) error
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// Result is the game after a request together with every notification the request produced.
type Result struct {
	Game   *entity.Game     `json:"game"`
	Events []spinfour.Event `json:"events"`
}

// GameManager runs hot-seat games for browser sessions. Each request rebuilds the game's controller
// from storage, applies one operation and saves the result; requests for the same game are serialized.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepoDep
	gameRepo   gameRepoDep
	conf       spinfour.Config
	locks      *gameLocks
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepoDep, gameRepo gameRepoDep, conf spinfour.Config) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		conf:       conf,
		locks:      newGameLocks(),
	}
}

// GetOrCreatePlayer returns the session player, creating a new session when id is empty or expired.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		return that.createPlayer(ctx)
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrPlayerNotFound) {
		that.logger.Info("session expired, starting a new one", "playerID", id)

		return that.createPlayer(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// NewGame starts a fresh game for the session, replacing the one it had.
func (that *GameManager) NewGame(ctx context.Context, playerID string) (*Result, error) {
	log := that.logger.With("method", "NewGame", "playerID", playerID)

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID != "" {
		that.deleteGame(ctx, player.GameID)
	}

	recorder := spinfour.NewRecorder()

	controller, err := spinfour.NewGameController(that.logger, that.conf, recorder, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create game controller: %w", err)
	}

	controller.Start()

	game := entity.NewGame(pkg.GenerateGameID(), player.ID, that.conf.GridSize, that.conf.RotationInterval)
	if err = controller.Save(game); err != nil {
		return nil, fmt.Errorf("failed to save new game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	player.GameID = game.ID
	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	log.Info("game created", "gameID", game.ID)

	return &Result{Game: game, Events: recorder.Events()}, nil
}

// GetGame returns the game with the notifications that redraw it from scratch.
func (that *GameManager) GetGame(ctx context.Context, playerID, gameID string) (*Result, error) {
	return that.apply(ctx, playerID, gameID, func(controller *spinfour.GameController) error {
		controller.Start()
		return nil
	}, false)
}

// ActiveGame returns the game the session is currently playing.
func (that *GameManager) ActiveGame(ctx context.Context, playerID string) (*Result, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGame
	}

	result, err := that.GetGame(ctx, playerID, player.GameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("%w: %w", apperror.ErrNoActiveGame, err)
	}

	return result, err
}

// MakeMove drops a stone for whoever is to move. A rejected move returns the unchanged game, the
// rejection notification and an error matching apperror.ErrMoveRejected.
func (that *GameManager) MakeMove(ctx context.Context, playerID, gameID string, row, col int) (*Result, error) {
	return that.apply(ctx, playerID, gameID, func(controller *spinfour.GameController) error {
		return controller.RequestMove(row, col)
	}, true)
}

func (that *GameManager) Rotate(ctx context.Context, playerID, gameID string) (*Result, error) {
	return that.apply(ctx, playerID, gameID, func(controller *spinfour.GameController) error {
		return controller.RequestRotate()
	}, true)
}

func (that *GameManager) Reset(ctx context.Context, playerID, gameID string) (*Result, error) {
	return that.apply(ctx, playerID, gameID, func(controller *spinfour.GameController) error {
		controller.RequestReset()
		return nil
	}, true)
}

func (that *GameManager) SetRotationInterval(ctx context.Context, playerID, gameID string, interval int) (*Result, error) {
	return that.apply(ctx, playerID, gameID, func(controller *spinfour.GameController) error {
		return controller.SetRotationInterval(interval)
	}, true)
}

func (that *GameManager) apply(
	ctx context.Context,
	playerID, gameID string,
	operation func(controller *spinfour.GameController) error,
	save bool,
) (*Result, error) {
	log := that.logger.With("method", "apply", "gameID", gameID)

	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOwner(playerID); err != nil {
		return nil, err
	}

	recorder := spinfour.NewRecorder()

	controller, err := spinfour.RestoreGameController(that.logger, game, recorder, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, err)
	}

	if err = operation(controller); err != nil {
		if errors.Is(err, apperror.ErrMoveRejected) {
			log.Debug("request rejected", "error", err)

			return &Result{Game: game, Events: recorder.Events()}, err
		}

		return nil, err
	}

	if save {
		if err = controller.Save(game); err != nil {
			return nil, fmt.Errorf("failed to save game %s: %w", game.ID, err)
		}

		if err = that.updateGame(ctx, game); err != nil {
			return nil, err
		}

		if game.IsFinished() {
			log.Info("game finished", "result", game.Result())
		}
	}

	that.touchPlayer(ctx, game)

	return &Result{Game: game, Events: recorder.Events()}, nil
}

// touchPlayer keeps the session alive for as long as its game is played. A session that already
// expired is written back so the next connect still finds the game.
func (that *GameManager) touchPlayer(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "touchPlayer", "playerID", game.PlayerID)

	err := that.playerRepo.Touch(ctx, game.PlayerID)
	if errors.Is(err, apperror.ErrPlayerNotFound) {
		log.Info("session expired during play, restoring it", "gameID", game.ID)

		err = that.updatePlayer(ctx, &entity.Player{ID: game.PlayerID, GameID: game.ID})
	}

	if err != nil {
		log.Error("failed to refresh session", "error", err)
	}
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID: pkg.GenerateNewSessionID(),
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, id string) {
	log := that.logger.With("method", "deleteGame", "gameID", id)

	err := that.gameRepo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}
