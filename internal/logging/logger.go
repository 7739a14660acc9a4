// Package logging is the structured logger of the clustermaker command. The
// library itself never logs.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger with clustermaker-specific helpers so that every
// run is reported with the same field names.
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing to w. format is "text" or "json"; level is one
// of debug, info, warn, error.
func New(w io.Writer, format, level string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	return &Logger{Logger: slog.New(handler)}, nil
}

// Noop returns a Logger that discards everything.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithK adds a k field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// LogRun logs the outcome of one pipeline run. Undefined metrics are
// omitted.
func (l *Logger) LogRun(ctx context.Context, algorithm string, metrics map[string]float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"algorithm", algorithm,
			"error", err,
		)
		return
	}
	attrs := []any{"algorithm", algorithm}
	for _, name := range []string{"inertia", "silhouette"} {
		if v, ok := metrics[name]; ok {
			attrs = append(attrs, name, v)
		}
	}
	l.InfoContext(ctx, "clustering completed", attrs...)
}

// LogArtifact logs a file written by the command.
func (l *Logger) LogArtifact(ctx context.Context, kind, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"kind", kind,
			"path", path,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "artifact written",
		"kind", kind,
		"path", path,
	)
}
