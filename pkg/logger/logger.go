package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a logger writing to stderr, so stdout stays free for command output.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg, extractors...)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(WithContext(cfg.handler(w), extractors...))
}

// Discard creates a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
