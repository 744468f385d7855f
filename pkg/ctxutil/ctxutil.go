// Package ctxutil carries request-scoped identifiers through context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey ctxKey = "user_id"
	metaKey   ctxKey = "request_meta"
)

// Meta is shared by every layer of one request. Inner middleware record the
// authenticated user here so outer ones, such as the access log, can see it
// after the handler returns.
type Meta struct {
	RequestID string
	UserID    uuid.UUID
}

// WithRequestID starts the request metadata with the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, metaKey, &Meta{RequestID: id})
}

// RequestIDFromCtx returns the request ID, or an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	if m := MetaFromCtx(ctx); m != nil {
		return m.RequestID
	}
	return ""
}

// MetaFromCtx returns the request metadata, or nil outside a request.
func MetaFromCtx(ctx context.Context) *Meta {
	m, _ := ctx.Value(metaKey).(*Meta)
	return m
}

// WithUserID stores the authenticated user ID and records it in the request metadata.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if m := MetaFromCtx(ctx); m != nil {
		m.UserID = id
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
