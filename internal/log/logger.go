package log

import (
	"io"
	"log/slog"
	"os"
)

// Config holds configuration for the logger
type Config struct {
	// Verbose enables debug output
	Verbose bool
	// JSONOutput switches from key=value text to one JSON object per line
	JSONOutput bool
	// Writer defaults to os.Stderr so stdout carries only program output
	Writer io.Writer
}

// New creates a structured logger from cfg
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.JSONOutput {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
