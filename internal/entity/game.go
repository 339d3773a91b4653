package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/spinfour-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	NoPlayer = 0
	Player1  = 1
	Player2  = 2
)

// Stone is a stone as stored: who owns it and where it rests.
type Stone struct {
	ID     uint64 `json:"id"`
	Player int    `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Game is the saved state of one hot-seat session game.
type Game struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`

	Size   int     `json:"size"`
	Stones []Stone `json:"stones"`

	CurrentPlayer int    `json:"current_player"`
	Status        string `json:"status"`
	Winner        int    `json:"winner,omitempty"`
	Draw          bool   `json:"draw,omitempty"`

	RotationInterval  int `json:"rotation_interval"`
	RotationCountdown int `json:"rotation_countdown"`

	NextStoneID uint64    `json:"next_stone_id"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewGame(id, playerID string, size, rotationInterval int) *Game {
	return &Game{
		ID:                id,
		PlayerID:          playerID,
		Size:              size,
		Stones:            []Stone{},
		CurrentPlayer:     Player1,
		Status:            StatusOngoing,
		RotationInterval:  rotationInterval,
		RotationCountdown: rotationInterval,
		NextStoneID:       1,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// ConfirmOwner checks that the game belongs to the given session player.
func (that *Game) ConfirmOwner(playerID string) error {
	if that.PlayerID != playerID {
		return fmt.Errorf("%w: game %s", apperror.ErrNotYourGame, that.ID)
	}

	return nil
}

// Result describes how the game ended, or "" while it is still running.
func (that *Game) Result() string {
	switch {
	case !that.IsFinished():
		return ""
	case that.Draw:
		return "draw"
	default:
		return fmt.Sprintf("player %d wins", that.Winner)
	}
}
