package custody

import (
	"context"

	"github.com/tendermint/tmlibs/log"
)

// DefaultLogger is used for all contexts that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

type loggerContextKey struct{}

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger can be overridden, so no checks.
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none was
// set.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}
