package commands

import (
	"context"
	"time"

	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/pkg/interfaces"
)

// DefaultCommandTimeout bounds a single export, import, or suggestion command
// when the message carries no deadline of its own.
const DefaultCommandTimeout = 30 * time.Second

// EnsureContext falls back to context.Background when the caller passed nil.
func EnsureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// WithCommandTimeout derives a deadline context. A zero or negative timeout
// leaves the parent context untouched.
func WithCommandTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// EnsureLogger substitutes a no-op logger when the handler was built without one.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
