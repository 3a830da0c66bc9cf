package requestcontext

import (
	"context"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// UserIDKey is the context key for the acting user
	UserIDKey ContextKey = "user_id"
)

// WithRequestID returns ctx carrying requestID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithUserID returns ctx carrying userID
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// FromMessageHeader derives a request ID for a consumed message. The
// JetStream de-duplication id is reused when the publisher set one.
func FromMessageHeader(ctx context.Context, header nats.Header) context.Context {
	if id := header.Get(nats.MsgIdHdr); id != "" {
		return WithRequestID(ctx, id)
	}
	return WithRequestID(ctx, uuid.NewString())
}
