package models

import "time"

// Session is the authenticated client state persisted between runs of the
// client binary. A device holds at most one session.
type Session struct {
	// UserID is the server-side identifier of the logged-in user.
	UserID int64 `json:"user_id"`

	// Token is the bearer token presented on every server call.
	Token string `json:"token"`

	// SavedAt is the timestamp when the session was stored locally.
	SavedAt time.Time `json:"saved_at"`
}
