// Package utils provides general-purpose helpers shared by the server and
// the client: type-safe context keys, JWT tokens, JSON responses, the resty
// HTTP client wrapper and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key under which the auth middleware stores the
// username taken from the token subject.
var UsernameCtxKey = contextKey("username")

// WithUsername returns a copy of ctx carrying username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameCtxKey, username)
}

// GetUsernameFromContext retrieves the authenticated username from ctx.
// ok is false when the value is missing, empty or of an unexpected type.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
