package domain

import "time"

// Player represents a registered player's core profile row.
// Registration happens out-of-band; this service never creates players.
type Player struct {
	ID        int        `json:"player_id" db:"player_id"`
	Username  string     `json:"username" db:"username"`
	Level     int        `json:"level" db:"level"`
	LastLogin *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
