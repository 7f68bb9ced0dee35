package entity

import "time"

// Feedback is accepted and stored as-is; session and message references are
// not validated against existing rows.
type Feedback struct {
	Id        int64
	SessionId string
	MessageId *int64
	Rating    int
	Comments  string
	CreatedAt time.Time
}
