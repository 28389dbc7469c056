package store

import "time"

// Session holds per-user conversational state kept in memory between chat
// turns. Lost on restart by design; nothing here is authoritative.
type Session struct {
	UserID     string    `json:"user_id"`
	LastIntent string    `json:"last_intent"`
	LastQuery  string    `json:"last_query"`
	TurnCount  int       `json:"turn_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}
