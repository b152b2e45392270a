package log

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a Logger backed by zap. Development mode uses console
// encoding; an empty level keeps zap's default (info).
func NewZapLogger(level string, development bool) (Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &zapLogger{sugar: base.Sugar()}, nil
}

func (l *zapLogger) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, l.withCorrelation(ctx, keysAndValues)...)
}

func (l *zapLogger) Info(ctx context.Context, msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, l.withCorrelation(ctx, keysAndValues)...)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, l.withCorrelation(ctx, keysAndValues)...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, l.withCorrelation(ctx, keysAndValues)...)
}

func (l *zapLogger) withCorrelation(ctx context.Context, kvs []any) []any {
	if id := CorrelationIDFromContext(ctx); id != "" {
		return append(kvs, "correlation_id", id)
	}
	return kvs
}
