package gateway

import (
	"encoding/json"
	"time"
)

// GameEvent is the frame pushed to WebSocket clients watching a season.
type GameEvent struct {
	ID        string          `json:"id"`        // Event UUID
	GameID    string          `json:"game_id"`   // Game UUID
	SeasonID  string          `json:"season_id"` // Season UUID
	Type      string          `json:"type"`      // Event type
	Timestamp time.Time       `json:"timestamp"` // Event creation time
	Data      json.RawMessage `json:"data"`      // Event-specific payload
}
