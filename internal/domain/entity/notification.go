package entity

import (
	"time"
)

// Notification is one entry in the append-only list under
// notifications/{pnr}. Entries are created by the disruption fan-out and
// never mutated or deleted by the service.
type Notification struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}
