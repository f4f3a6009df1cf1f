// Package logging builds the charmbracelet/log logger used across term2048
// and carries it through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New creates a logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "term2048",
	})
}

// Level returns debug when verbose is set, info otherwise.
func Level(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// OpenFile opens path for appending log output, creating parent directories.
// A leading ~ is expanded to the home directory.
func OpenFile(path string) (*os.File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
