// Package logx sets up the slog logger and carries a run id through contexts.
package logx

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type runIDKey struct{}

// ParseLevel converts string (debug|info|warn|error) to slog.Level. Unknown → info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w with the given level string.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// WithRunID attaches a fresh run id to ctx.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, runIDKey{}, uuid.NewString())
}

// RunID returns the run id stored in ctx, or "".
func RunID(ctx context.Context) string {
	id, ok := ctx.Value(runIDKey{}).(string)
	if !ok {
		return ""
	}
	return id
}

// From returns the default logger tagged with the run id of ctx.
func From(ctx context.Context) *slog.Logger {
	if id := RunID(ctx); id != "" {
		return slog.Default().With(slog.String("run", id))
	}
	return slog.Default()
}
