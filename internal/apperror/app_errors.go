package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotYourGame    = errors.New("game belongs to another session")
	ErrNoActiveGame   = errors.New("no active game")
	ErrMoveRejected   = errors.New("request rejected")
)
