package model

import "time"

// Session links an opaque bearer token to a user.
// A session has no expiry; it is valid until an explicit logout deletes it.
type Session struct {
	Token     string    `json:"-"` // Never serialize
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
