package models

import "time"

// Event is the DB representation of one audit log record.
type Event struct {
	EventID   string    `db:"event_id"`
	UserID    string    `db:"user_id"`
	Action    string    `db:"action"`
	Before    string    `db:"before"`
	After     string    `db:"after"`
	Timestamp time.Time `db:"timestamp"`
}
