package pkg

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateGameID - generates a short game id that is easy to read out loud.
func GenerateGameID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return id[:12]
}

// IsValidSessionID reports whether id looks like something GenerateNewSessionID produced.
func IsValidSessionID(id string) bool {
	return uuid.Validate(id) == nil
}
