package log

import "context"

type (
	// private type used to define context keys
	ctxKey int
)

const (
	// CorrelationIDKey carries the per-request correlation id.
	CorrelationIDKey ctxKey = iota
)

// ContextWithCorrelationID returns a new context carrying the given
// correlation id. Loggers append it to every record they emit.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// CorrelationIDFromContext extracts the correlation id, or "" when absent.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}
