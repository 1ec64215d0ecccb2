// Package logctx wraps charmbracelet/log behind a context-carried logger,
// grounded on yaklabco-gomdlint/internal/logging's FromContext/WithLogger
// split plus its field-name-constant catalog.
package logctx

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Field name constants for structured log calls across the toolchain, kept
// as constants so a typo in a field name is a compile error rather than a
// silently dropped key.
const (
	FieldPath        = "path"
	FieldFile        = "file"
	FieldRange       = "range"
	FieldDiagnostics = "diagnostics"
	FieldDuration    = "duration_ms"
	FieldCount       = "count"
	FieldKind        = "kind"
	FieldMode        = "mode"
)

type contextKey struct{}

var loggerKey = contextKey{}

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a logger writing to stderr at the given level ("debug",
// "info", "warn", "error"; unrecognized values fall back to "info").
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	setLevel(logger, level)
	return logger
}

func setLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger { return getDefaultLogger() }

// SetDefault replaces the package-level default logger; later Default calls
// return logger instead of the lazily built "info" logger.
func SetDefault(logger *log.Logger) {
	defaultLoggerOnce.Do(func() {})
	defaultLogger = logger
}

// FromContext retrieves the logger attached to ctx, or the default logger
// if none was attached (or ctx is nil).
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a context carrying logger, retrievable by FromContext.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}
