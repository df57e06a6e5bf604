package logger

import (
	"log/slog"
	"strings"
)

// Config holds the logger settings loaded from the config file.
type Config struct {
	// LogLevel is the minimum level to log: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
	// LogFilePath is the output file. Empty or "-" writes to stderr.
	LogFilePath string `toml:"log_file"`
}

// NewConfig returns the default logger configuration.
func NewConfig() Config {
	return Config{LogLevel: "info"}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
