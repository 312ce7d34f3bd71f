package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the structured logger used across the service.
// Every call takes the request context so that fields attached with
// WithFields (request id, route) follow the log line.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)

	// Infow logs a message with alternating key/value pairs.
	Infow(ctx context.Context, msg string, keysAndValues ...any)

	// WithFields returns a child context whose log lines carry the given
	// key/value pairs in addition to any already attached.
	WithFields(ctx context.Context, keysAndValues ...any) context.Context
}

// Init builds a zap backed Logger from cfg.
func Init(cfg ZapConfig) Logger {
	l := &zapLogger{cfg: &cfg}
	l.init()
	return l
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return newNop()
}

// FromZap wraps an existing zap logger, e.g. one built on an observer core.
func FromZap(z *zap.Logger) Logger {
	return &zapLogger{cfg: &ZapConfig{}, sugarLogger: z.Sugar()}
}
