package models

import "time"

// Policy is an HR policy document entry.
type Policy struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Body        string    `json:"body"`
	DocumentURL *string   `json:"document_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
