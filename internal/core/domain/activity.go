package domain

import "time"

// Activity is an append-only log entry describing a mutation.
type Activity struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
