package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const sentryFlushTimeout = 2 * time.Second

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// NewWithSentry creates a logger that writes to stderr and reports errors to Sentry.
// Failed dispatches logged at error level become Sentry issues.
// If DSN is empty or Sentry fails to initialize, only stderr logging is enabled.
// The returned flush func must be called before the process exits.
func NewWithSentry(cfg Config, sc SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func()) {
	return newWithSentry(os.Stderr, cfg, sc, extractors...)
}

func newWithSentry(w io.Writer, cfg Config, sc SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func()) {
	local := cfg.handler(w)
	noop := func() {}

	if sc.DSN == "" {
		return slog.New(WithContext(local, extractors...)), noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(WithContext(local, extractors...)), noop
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	log := slog.New(WithContext(fanout{local, remote}, extractors...))
	return log, func() { sentry.Flush(sentryFlushTimeout) }
}
