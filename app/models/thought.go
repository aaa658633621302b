package models

import "time"

// Thought is a motivational quote shown to a branch; the thought of the day
// rotates deterministically through the branch's active thoughts.
type Thought struct {
	ID        string    `json:"id"`
	Quote     string    `json:"quote"`
	Author    string    `json:"author"`
	Branch    string    `json:"branch"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
