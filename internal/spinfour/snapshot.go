package spinfour

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/spinfour-backend/internal/board"
	"github.com/rocketscienceinc/spinfour-backend/internal/entity"
)

var ErrInvalidSavedGame = errors.New("saved game is inconsistent")

// Save writes the controller state into game. Only a controller at rest can be saved.
func (that *GameController) Save(game *entity.Game) error {
	if that.isRotating || (!that.gameOver && !that.inputEnabled) {
		return ErrBusy
	}

	size := that.board.Size()
	stones := make([]entity.Stone, 0, size*size)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if stone := that.board.At(row, col); stone != nil {
				stones = append(stones, entity.Stone{ID: stone.ID(), Player: stone.PlayerID(), Row: row, Col: col})
			}
		}
	}

	game.Size = size
	game.Stones = stones
	game.CurrentPlayer = that.currentPlayer
	game.RotationInterval = that.rotationInterval
	game.RotationCountdown = that.rotationCountdown
	game.NextStoneID = that.ids.Next()
	game.Winner = that.outcome.Winner
	game.Draw = that.outcome.Draw
	game.Status = entity.StatusOngoing
	game.UpdatedAt = time.Now().UTC()

	if that.gameOver {
		game.Status = entity.StatusFinished
	}

	return nil
}

// RestoreGameController rebuilds a controller from a saved game.
func RestoreGameController(logger *slog.Logger, game *entity.Game, listener Listener, settler Settler) (*GameController, error) {
	controller, err := NewGameController(logger, Config{GridSize: game.Size, RotationInterval: game.RotationInterval}, listener, settler)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSavedGame, err)
	}

	if err = validateSavedGame(game); err != nil {
		return nil, err
	}

	for _, stone := range game.Stones {
		if controller.board.IsOccupied(stone.Row, stone.Col) {
			return nil, fmt.Errorf("%w: two stones at (%d, %d)", ErrInvalidSavedGame, stone.Row, stone.Col)
		}
		controller.board.Place(stone.Row, stone.Col, board.NewStone(stone.ID, stone.Player))
	}

	if row, col, floating := findFloatingStone(controller.board); floating {
		return nil, fmt.Errorf("%w: stone at (%d, %d) has nothing under it", ErrInvalidSavedGame, row, col)
	}

	controller.ids = board.NewIDAllocator(game.NextStoneID)
	controller.currentPlayer = game.CurrentPlayer
	controller.rotationCountdown = game.RotationCountdown

	if game.IsFinished() {
		controller.gameOver = true
		controller.inputEnabled = false
		controller.outcome = Outcome{Winner: game.Winner, Draw: game.Draw}

		if game.Winner != entity.NoPlayer {
			_, controller.outcome.Line = controller.findWinningLine(game.Winner)
		}
	}

	return controller, nil
}

func validateSavedGame(game *entity.Game) error {
	switch {
	case game.CurrentPlayer != entity.Player1 && game.CurrentPlayer != entity.Player2:
		return fmt.Errorf("%w: current player %d", ErrInvalidSavedGame, game.CurrentPlayer)
	case game.RotationCountdown < 1 || game.RotationCountdown > game.RotationInterval:
		return fmt.Errorf("%w: rotation countdown %d", ErrInvalidSavedGame, game.RotationCountdown)
	case game.Status != entity.StatusOngoing && game.Status != entity.StatusFinished:
		return fmt.Errorf("%w: status %q", ErrInvalidSavedGame, game.Status)
	}

	for _, stone := range game.Stones {
		if stone.Row < 0 || stone.Row >= game.Size || stone.Col < 0 || stone.Col >= game.Size {
			return fmt.Errorf("%w: stone %d at (%d, %d)", ErrInvalidSavedGame, stone.ID, stone.Row, stone.Col)
		}

		if stone.Player != entity.Player1 && stone.Player != entity.Player2 {
			return fmt.Errorf("%w: stone %d owned by %d", ErrInvalidSavedGame, stone.ID, stone.Player)
		}

		if stone.ID >= game.NextStoneID {
			return fmt.Errorf("%w: stone id %d not below next id %d", ErrInvalidSavedGame, stone.ID, game.NextStoneID)
		}
	}

	return nil
}

// findFloatingStone returns the first stone with an empty cell below it. Every column of a settled
// board is one contiguous block resting on the bottom row.
func findFloatingStone(b *board.Board) (int, int, bool) {
	size := b.Size()

	for col := 0; col < size; col++ {
		gap := false

		for row := size - 1; row >= 0; row-- {
			switch {
			case !b.IsOccupied(row, col):
				gap = true
			case gap:
				return row, col, true
			}
		}
	}

	return 0, 0, false
}
