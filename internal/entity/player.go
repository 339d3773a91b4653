package entity

// Player is a browser session. Both players of a hot-seat game share it.
type Player struct {
	ID     string `json:"id"`
	GameID string `json:"game_id,omitempty"`
}
