package models

import "time"

// Holiday with a nil Branch applies company-wide.
type Holiday struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Day       time.Time `json:"date"`
	Branch    *string   `json:"branch,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
