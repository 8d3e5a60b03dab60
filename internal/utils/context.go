// Package utils provides small helpers shared by the client engine and the
// stub goals API: typed context keys, JSON response writing, the resty client
// wrapper, JWT issuing/parsing and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here never
// collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey stores the authenticated owner id in a request context.
var OwnerIDCtxKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID int64) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// GetOwnerIDFromContext returns the owner id stored by [WithOwnerID]. ok is
// false when the value is missing or has an unexpected type.
func GetOwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(int64)
	return ownerID, ok
}
