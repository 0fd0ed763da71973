package diagnostics

import "context"

type loggerKeyT struct{}

var loggerKey loggerKeyT

// WithLogger embeds logger in ctx.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx, or a discarding one so
// callers never need a nil check.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(Logger); ok && logger != nil {
			return logger
		}
	}
	return Discard()
}

// Warn records a warning on the logger carried by ctx.
func Warn(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Warn(format, args...)
}

// Error records an error on the logger carried by ctx.
func Error(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Error(format, args...)
}
