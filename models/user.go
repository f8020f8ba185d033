package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every contact stored on the server belongs to exactly one user.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password carries the user's password during register/login requests.
	// It is hashed with argon2id before it ever reaches storage and is
	// cleared from the struct as soon as the hash is computed.
	Password string `json:"password"`

	// PasswordHash is the argon2id-encoded hash persisted in the database.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
