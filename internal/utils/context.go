// Package utils holds small helpers shared by the server and the client:
// typed context keys, JWT generation and validation, uuid generation and
// JSON response writing.
package utils

import (
	"context"
)

// contextKey is a private key type; it cannot collide with string keys used
// by other packages.
type contextKey string

// String implements [fmt.Stringer].
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's ID in a request context.
// The auth middleware writes it, handlers read it back through
// [GetUserIDFromContext].
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext reads the user ID stored under [UserIDCtxKey].
// ok is false when the value is absent or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
