package log

import "context"

// Logger is the structured logging interface used across the SDK.
// Keys and values are alternating pairs, zap-sugar style.
// Implementations must be safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...any)
	Info(ctx context.Context, msg string, keysAndValues ...any)
	Warn(ctx context.Context, msg string, keysAndValues ...any)
	Error(ctx context.Context, msg string, keysAndValues ...any)
}
