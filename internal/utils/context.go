// Package utils provides small helpers shared by the client, the adapter and
// the fake API used in tests: context keys, request identifiers, JSON
// responses, the resty client constructor, and JWT helpers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key under which the identifier of the outbound
// request is stored. The adapter sends it as X-Request-ID and the service
// logs it next to every failure.
var RequestIDCtxKey = contextKey("requestID")

// UsernameCtxKey is the key the fake API's auth middleware stores the
// verified username under.
var UsernameCtxKey = contextKey("username")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// ok is false when the value is missing or is not a non-empty string.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// GetUsernameFromContext retrieves the authenticated username from the context.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
