package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/spinfour-backend/internal/entity"
	"github.com/rocketscienceinc/spinfour-backend/internal/spinfour"
)

const (
	actionConnect  = "connect"
	actionNewGame  = "game:new"
	actionState    = "game:state"
	actionMove     = "game:move"
	actionRotate   = "game:rotate"
	actionReset    = "game:reset"
	actionInterval = "game:interval"

	actionEvents = "game:events"
	actionError  = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is shared by requests and responses; each action reads the fields it needs.
type Payload struct {
	Player *entity.Player   `json:"player,omitempty"`
	Game   *entity.Game     `json:"game,omitempty"`
	Events []spinfour.Event `json:"events,omitempty"`

	Row      *int `json:"row,omitempty"`
	Col      *int `json:"col,omitempty"`
	Interval *int `json:"interval,omitempty"`

	Action string          `json:"action,omitempty"`
	Error  string          `json:"error,omitempty"`
	Reason spinfour.Reason `json:"reason,omitempty"`
}

func encode(action string, payload Payload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: body})
}
