package domain

import "time"

// Feedback is a guest review. It has no fan-out copies; all feedback lives
// in a single partition and is range-listed from there.
type Feedback struct {
	ID        string
	UserID    string
	UserName  string
	Message   string
	Rating    *int // optional, 1..5 when present
	CreatedAt time.Time
}
