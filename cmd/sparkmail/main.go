// Command sparkmail sends a single email through SparkPost.
//
//	SPARKPOST_API_KEY=... sparkmail -from team@example.com -to "Bob <bob@example.com>" \
//		-subject "Hi" -text "Hello"
//
// Exit status is 1 when the provider or network rejects the send and 2 for
// usage, configuration or validation errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/sparkmail/pkg/logger"
	"github.com/dmitrymomot/sparkmail/pkg/mailer"
	"github.com/dmitrymomot/sparkmail/pkg/mailer/sparkpost"
)

const (
	exitOK       = 0
	exitDispatch = 1
	exitUsage    = 2
)

type config struct {
	SparkPost sparkpost.Config
	Mailer    mailer.Config
	Log       logger.Config
	Sentry    logger.SentryConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintf(stderr, "sparkmail: load config: %v\n", err)
		return exitUsage
	}

	params, err := parseArgs(args, cfg.Mailer.DefaultSender(), stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "sparkmail: %v\n", err)
		return exitUsage
	}

	log, flush := logger.NewWithSentry(cfg.Log, cfg.Sentry, mailer.DispatchIDExtractor)
	defer flush()

	return send(ctx, cfg.SparkPost, params, log)
}

func send(ctx context.Context, cfg sparkpost.Config, params mailer.MessageParams, log *slog.Logger) int {
	msg, err := mailer.NewMessage(params)
	if err != nil {
		log.ErrorContext(ctx, "invalid message", slog.String("error", err.Error()))
		return exitUsage
	}

	provider, err := sparkpost.New(cfg)
	if err != nil {
		log.ErrorContext(ctx, "failed to create sender", slog.String("error", err.Error()))
		return exitUsage
	}

	if err := mailer.WithLogging(provider, log).Send(ctx, msg); err != nil {
		var dispatchErr *mailer.DispatchError
		if errors.As(err, &dispatchErr) {
			return exitDispatch
		}
		return exitUsage
	}
	return exitOK
}
