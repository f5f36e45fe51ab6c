package models

import "time"

// Feedback is an append-only record of user-submitted text with an optional
// 1-5 rating.
type Feedback struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
