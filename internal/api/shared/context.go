package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the key type for request context values.
type ContextKey string

const (
	// PrincipalContextKey is the context key under which the auth
	// middleware stores the resolved *domain.User.
	PrincipalContextKey ContextKey = "principal"

	// TraceIDKey is the context key for the request trace ID.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16
)

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// Degenerate but non-fatal; requests proceed without correlation.
		return ctx
	}
	return context.WithValue(ctx, TraceIDKey, hex.EncodeToString(b))
}

// GetTraceID retrieves the trace ID from the context, or "" if unset.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
