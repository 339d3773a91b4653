package spinfour

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/spinfour-backend/internal/apperror"
	"github.com/rocketscienceinc/spinfour-backend/internal/board"
)

// Reason tells the presentation layer why a request was refused.
type Reason string

const (
	ReasonOccupied        Reason = "occupied"
	ReasonColumnFull      Reason = "column-full"
	ReasonInvalidRow      Reason = "invalid-row"
	ReasonInvalidColumn   Reason = "invalid-column"
	ReasonGameOver        Reason = "game-over"
	ReasonBusy            Reason = "busy"
	ReasonInvalidInterval Reason = "invalid-interval"
)

var (
	ErrCellOccupied            = errors.New("cell is already occupied")
	ErrColumnFull              = errors.New("column is full")
	ErrInvalidRow              = errors.New("cannot place a stone below the lowest available position")
	ErrInvalidColumn           = errors.New("invalid column index")
	ErrBusy                    = errors.New("a move or rotation is still settling")
	ErrInvalidRotationInterval = errors.New("rotation interval must be a positive integer")

	reasonErrors = map[Reason]error{
		ReasonOccupied:        ErrCellOccupied,
		ReasonColumnFull:      ErrColumnFull,
		ReasonInvalidRow:      ErrInvalidRow,
		ReasonInvalidColumn:   ErrInvalidColumn,
		ReasonGameOver:        apperror.ErrGameFinished,
		ReasonBusy:            ErrBusy,
		ReasonInvalidInterval: ErrInvalidRotationInterval,
	}
)

// RejectionError is returned by every refused request. It matches both the reason's sentinel
// and apperror.ErrMoveRejected with errors.Is.
type RejectionError struct {
	Reason Reason
}

func (that *RejectionError) Error() string {
	return fmt.Sprintf("%s: %v", that.Reason, reasonErrors[that.Reason])
}

func (that *RejectionError) Unwrap() []error {
	return []error{reasonErrors[that.Reason], apperror.ErrMoveRejected}
}

// Outcome is either a winner, with the run that won, or a draw.
type Outcome struct {
	Winner int              `json:"winner,omitempty"`
	Line   []board.Position `json:"line,omitempty"`
	Draw   bool             `json:"draw,omitempty"`
}

// Listener receives state changes. Implementations must not call back into the controller.
type Listener interface {
	OnBoardChanged(grid board.Grid)
	OnMoveRejected(reason Reason)
	OnGameOver(outcome Outcome)
	OnTurnChanged(playerID int)
	OnRotationCountdownChanged(turnsRemaining int)
}

type nopListener struct{}

func (nopListener) OnBoardChanged(board.Grid) {}
func (nopListener) OnMoveRejected(Reason) {}
func (nopListener) OnGameOver(Outcome) {}
func (nopListener) OnTurnChanged(int) {}
func (nopListener) OnRotationCountdownChanged(int) {}

const (
	EventBoardChanged             = "board_changed"
	EventMoveRejected             = "move_rejected"
	EventGameOver                 = "game_over"
	EventTurnChanged              = "turn_changed"
	EventRotationCountdownChanged = "rotation_countdown_changed"
)

// Event is one recorded notification, shaped for JSON transports.
type Event struct {
	Type           string     `json:"type"`
	Grid           board.Grid `json:"grid,omitempty"`
	Reason         Reason     `json:"reason,omitempty"`
	Outcome        *Outcome   `json:"outcome,omitempty"`
	Player         int        `json:"player,omitempty"`
	TurnsRemaining *int       `json:"turns_remaining,omitempty"`
}

// Recorder is a Listener that keeps every notification in order.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (that *Recorder) OnBoardChanged(grid board.Grid) {
	that.events = append(that.events, Event{Type: EventBoardChanged, Grid: grid})
}

func (that *Recorder) OnMoveRejected(reason Reason) {
	that.events = append(that.events, Event{Type: EventMoveRejected, Reason: reason})
}

func (that *Recorder) OnGameOver(outcome Outcome) {
	that.events = append(that.events, Event{Type: EventGameOver, Outcome: &outcome})
}

func (that *Recorder) OnTurnChanged(playerID int) {
	that.events = append(that.events, Event{Type: EventTurnChanged, Player: playerID})
}

func (that *Recorder) OnRotationCountdownChanged(turnsRemaining int) {
	that.events = append(that.events, Event{Type: EventRotationCountdownChanged, TurnsRemaining: &turnsRemaining})
}

func (that *Recorder) Events() []Event {
	return that.events
}

// Countdowns returns the announced countdown values in order.
func (that *Recorder) Countdowns() []int {
	var out []int
	for _, event := range that.events {
		if event.Type == EventRotationCountdownChanged {
			out = append(out, *event.TurnsRemaining)
		}
	}

	return out
}

// Reset drops recorded events.
func (that *Recorder) Reset() {
	that.events = nil
}
