package spinfour

import "github.com/rocketscienceinc/spinfour-backend/internal/board"

type Step int

const (
	StepDrop Step = iota
	StepRotation
	StepGravity
)

func (that Step) String() string {
	switch that {
	case StepDrop:
		return "drop"
	case StepRotation:
		return "rotation"
	case StepGravity:
		return "gravity"
	default:
		return "unknown"
	}
}

// Settle describes what the presentation layer is asked to animate.
type Settle struct {
	Step Step

	// drop only
	Col     int
	FromRow int
	ToRow   int

	// gravity only
	Falls []board.Fall
}

// Settler runs the cosmetic part of a step and calls done when it is over. done may be called
// synchronously; calling it more than once, or after a reset, has no effect.
type Settler interface {
	Settle(settle Settle, done func())
}

// ImmediateSettler completes every step at once.
type ImmediateSettler struct{}

func (ImmediateSettler) Settle(_ Settle, done func()) {
	done()
}
