package log

import "context"

type noopLogger struct{}

// NewNoopLogger returns a Logger that discards everything. It is the
// default for library consumers that do not supply their own logger.
func NewNoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, string, ...any) {}
