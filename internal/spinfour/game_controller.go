package spinfour

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/spinfour-backend/internal/board"
	"github.com/rocketscienceinc/spinfour-backend/internal/entity"
)

const (
	// WinningRowLength is the number of aligned stones that wins. It is not configurable.
	WinningRowLength = 4

	DefaultGridSize         = 6
	DefaultRotationInterval = 2
)

var ErrInvalidGridSize = errors.New("grid size must be at least the winning row length")

type State int

const (
	AwaitingInput State = iota
	ResolvingMove
	Rotating
	GameOver
)

func (that State) String() string {
	switch that {
	case AwaitingInput:
		return "awaiting_input"
	case ResolvingMove:
		return "resolving_move"
	case Rotating:
		return "rotating"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type Config struct {
	GridSize         int
	RotationInterval int
}

func (that Config) Validate() error {
	if that.GridSize < WinningRowLength {
		return fmt.Errorf("%w: %d", ErrInvalidGridSize, that.GridSize)
	}

	if that.RotationInterval < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRotationInterval, that.RotationInterval)
	}

	return nil
}

// GameController runs the turn and rotation state machine of one game.
//
// It is single-threaded: inputEnabled and isRotating guard against requests that arrive while a
// drop or rotation is still settling, and such requests are rejected as busy rather than queued.
type GameController struct {
	logger   *slog.Logger
	listener Listener
	settler  Settler
	ids      *board.IDAllocator

	board *board.Board

	currentPlayer int
	gameOver      bool
	outcome       Outcome

	inputEnabled bool
	isRotating   bool

	rotationInterval  int
	rotationCountdown int

	// generation changes on reset so continuations started before it are dropped.
	generation uint64
}

// NewGameController creates a controller for a fresh game. A nil listener or settler falls back to
// a no-op listener and ImmediateSettler.
func NewGameController(logger *slog.Logger, conf Config, listener Listener, settler Settler) (*GameController, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	b, err := board.New(conf.GridSize, WinningRowLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if listener == nil {
		listener = nopListener{}
	}

	if settler == nil {
		settler = ImmediateSettler{}
	}

	return &GameController{
		logger:   logger.With("component", "game_controller"),
		listener: listener,
		settler:  settler,
		ids:      board.NewIDAllocator(1),

		board: b,

		currentPlayer: entity.Player1,
		inputEnabled:  true,

		rotationInterval:  conf.RotationInterval,
		rotationCountdown: conf.RotationInterval,
	}, nil
}

// Start announces the whole current state so a freshly attached presentation layer can draw it.
func (that *GameController) Start() {
	that.listener.OnBoardChanged(that.board.Snapshot())
	that.listener.OnRotationCountdownChanged(that.rotationCountdown)

	if that.gameOver {
		that.listener.OnGameOver(that.outcome)
		return
	}

	that.listener.OnTurnChanged(that.currentPlayer)
}

// RequestMove drops a stone for the current player into col. row is the cell the player pointed at;
// it may be at or above the landing row but never below it.
func (that *GameController) RequestMove(row, col int) error {
	if reason, ok := that.validateMove(row, col); !ok {
		return that.reject(reason)
	}

	landing, _ := that.board.NextAvailableRow(col)
	stone := that.ids.NewStone(that.currentPlayer)

	that.inputEnabled = false

	that.settler.Settle(Settle{Step: StepDrop, Col: col, FromRow: row, ToRow: landing}, that.resume(func() {
		that.board.Place(landing, col, stone)
		that.listener.OnBoardChanged(that.board.Snapshot())

		that.afterMove(landing, col)
	}))

	return nil
}

// validateMove applies the checks in order; the first failing one decides the reason.
func (that *GameController) validateMove(row, col int) (Reason, bool) {
	size := that.board.Size()

	switch {
	case that.gameOver:
		return ReasonGameOver, false
	case that.isRotating || !that.inputEnabled:
		return ReasonBusy, false
	case col < 0 || col >= size:
		return ReasonInvalidColumn, false
	case row < 0 || row >= size:
		return ReasonInvalidRow, false
	case that.board.IsOccupied(row, col):
		return ReasonOccupied, false
	}

	landing, ok := that.board.NextAvailableRow(col)
	if !ok {
		return ReasonColumnFull, false
	}

	if row > landing {
		return ReasonInvalidRow, false
	}

	return "", true
}

func (that *GameController) afterMove(row, col int) {
	player := that.currentPlayer

	if that.board.CheckWin(row, col, player) {
		_, line := that.findWinningLine(player)
		that.finish(Outcome{Winner: player, Line: line})
		return
	}

	if that.board.IsFull() {
		that.finish(Outcome{Draw: true})
		return
	}

	that.rotationCountdown--
	if that.rotationCountdown > 0 {
		that.listener.OnRotationCountdownChanged(that.rotationCountdown)
		that.endTurn()
		return
	}

	that.rotationCountdown = that.rotationInterval
	that.listener.OnRotationCountdownChanged(that.rotationCountdown)

	that.rotate(that.endTurn)
}

func (that *GameController) endTurn() {
	that.switchPlayer()
	that.inputEnabled = true
}

// RequestRotate rotates the board on demand. The turn does not change and the countdown is untouched.
func (that *GameController) RequestRotate() error {
	switch {
	case that.gameOver:
		return that.reject(ReasonGameOver)
	case that.isRotating || !that.inputEnabled:
		return that.reject(ReasonBusy)
	}

	that.rotate(func() {
		that.inputEnabled = true
	})

	return nil
}

// rotate turns the board, lets it settle, and looks for a winner anywhere on it. then runs only when
// the game goes on.
func (that *GameController) rotate(then func()) {
	that.isRotating = true
	that.inputEnabled = false

	that.logger.Debug("rotating board", "player", that.currentPlayer)

	that.board.Rotate()
	that.listener.OnBoardChanged(that.board.Snapshot())

	that.settler.Settle(Settle{Step: StepRotation}, that.resume(func() {
		that.board.ApplyGravity()
		that.listener.OnBoardChanged(that.board.Snapshot())

		that.settler.Settle(Settle{Step: StepGravity, Falls: that.board.Falls()}, that.resume(func() {
			if winner, line := that.findWinningLine(entity.NoPlayer); winner != entity.NoPlayer {
				that.finish(Outcome{Winner: winner, Line: line})
				return
			}

			that.isRotating = false
			then()
		}))
	}))
}

// findWinningLine scans the board in row-major order and returns the owner and the run of the first
// stone that completes one. Rotation can make or break lines for either player; a non-zero only
// limits the scan to that player's stones.
func (that *GameController) findWinningLine(only int) (int, []board.Position) {
	size := that.board.Size()

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			stone := that.board.At(row, col)
			if stone == nil || (only != entity.NoPlayer && stone.PlayerID() != only) {
				continue
			}

			if line := that.board.WinningLine(row, col, stone.PlayerID()); line != nil {
				return stone.PlayerID(), line
			}
		}
	}

	return entity.NoPlayer, nil
}

// RequestReset throws the current game away and starts a new one with the same settings.
func (that *GameController) RequestReset() {
	that.generation++

	b, err := board.New(that.board.Size(), WinningRowLength)
	if err != nil {
		// the size was validated when the controller was built
		panic(err)
	}

	that.board = b
	that.currentPlayer = entity.Player1
	that.gameOver = false
	that.outcome = Outcome{}
	that.inputEnabled = true
	that.isRotating = false
	that.rotationCountdown = that.rotationInterval

	that.logger.Debug("game reset")

	that.listener.OnBoardChanged(that.board.Snapshot())
	that.listener.OnTurnChanged(that.currentPlayer)
	that.listener.OnRotationCountdownChanged(that.rotationCountdown)
}

// SetRotationInterval changes the rotation cadence and restarts the countdown from it. Like every
// other input it is refused once the game is over or while a drop or rotation is settling.
func (that *GameController) SetRotationInterval(interval int) error {
	switch {
	case that.gameOver:
		return that.reject(ReasonGameOver)
	case that.isRotating || !that.inputEnabled:
		return that.reject(ReasonBusy)
	case interval < 1:
		return that.reject(ReasonInvalidInterval)
	}

	that.rotationInterval = interval
	that.rotationCountdown = interval
	that.listener.OnRotationCountdownChanged(that.rotationCountdown)

	return nil
}

func (that *GameController) finish(outcome Outcome) {
	that.gameOver = true
	that.outcome = outcome
	that.inputEnabled = false
	that.isRotating = false

	that.logger.Debug("game over", "winner", outcome.Winner, "draw", outcome.Draw)

	that.listener.OnGameOver(outcome)
}

func (that *GameController) switchPlayer() {
	if that.currentPlayer == entity.Player1 {
		that.currentPlayer = entity.Player2
	} else {
		that.currentPlayer = entity.Player1
	}

	that.listener.OnTurnChanged(that.currentPlayer)
}

func (that *GameController) reject(reason Reason) error {
	that.listener.OnMoveRejected(reason)

	return &RejectionError{Reason: reason}
}

// resume wraps a continuation so it runs at most once and only if no reset happened in between.
func (that *GameController) resume(fn func()) func() {
	generation := that.generation
	fired := false

	return func() {
		if fired || generation != that.generation {
			return
		}
		fired = true
		fn()
	}
}

func (that *GameController) State() State {
	switch {
	case that.gameOver:
		return GameOver
	case that.isRotating:
		return Rotating
	case !that.inputEnabled:
		return ResolvingMove
	default:
		return AwaitingInput
	}
}

func (that *GameController) CurrentPlayer() int {
	return that.currentPlayer
}

func (that *GameController) IsGameOver() bool {
	return that.gameOver
}

// Outcome reports the result; ok is false while the game is running.
func (that *GameController) Outcome() (Outcome, bool) {
	return that.outcome, that.gameOver
}

func (that *GameController) InputEnabled() bool {
	return that.inputEnabled
}

func (that *GameController) IsRotating() bool {
	return that.isRotating
}

func (that *GameController) RotationInterval() int {
	return that.rotationInterval
}

func (that *GameController) RotationCountdown() int {
	return that.rotationCountdown
}

func (that *GameController) Size() int {
	return that.board.Size()
}

// Grid returns a copy of the current grid.
func (that *GameController) Grid() board.Grid {
	return that.board.Snapshot()
}
