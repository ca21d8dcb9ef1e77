// Package logging configures the slog logger shared by the agent components.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the level and output format of the logger
type Config struct {
	// Level one of debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	// Format text or json
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=text json"`
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// NewLogger builds a logger writing to w
func NewLogger(w io.Writer, config Config) *slog.Logger {
	level, ok := ParseLevel(config.Level)
	opts := &slog.HandlerOptions{
		Level: level,
	}
	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	if !ok {
		logger.Warn("invalid log level specified, defaulting to INFO", "specified_level", config.Level)
	}
	return logger
}

// InitLogger initializes the global slog logger writing to stderr
func InitLogger(config Config) *slog.Logger {
	logger := NewLogger(os.Stderr, config)
	slog.SetDefault(logger)
	return logger
}

// NewComponentLogger creates a component-specific logger.
// It adds the component name to all log messages.
func NewComponentLogger(base *slog.Logger, component string) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	return base.With(
		slog.String("component", component),
	)
}
