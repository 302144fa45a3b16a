package domain

import "time"

// Event is one best-effort audit log record. Recording failures never block
// or roll back the business operation they describe.
type Event struct {
	EventID   string    `json:"eventID"` // Primary key (UUID)
	UserID    string    `json:"userID"`
	Action    string    `json:"action"` // e.g. "entry.create", "entry.approve"
	Before    string    `json:"before"` // JSON snapshot, empty when not applicable
	After     string    `json:"after"`  // JSON snapshot, empty when not applicable
	Timestamp time.Time `json:"timestamp"`
}
