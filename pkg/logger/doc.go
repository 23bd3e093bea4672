// Package logger builds slog loggers for sparkmail binaries.
//
// Loggers write JSON (or text) to stderr and can enrich every record with
// attributes pulled from the context:
//
//	log := logger.New(logger.Config{Level: "debug"}, mailer.DispatchIDExtractor)
//	log.InfoContext(ctx, "email sent")
//	// {"level":"INFO","msg":"email sent","dispatch_id":"..."}
//
// NewWithSentry additionally forwards warnings and errors to Sentry. With an
// empty DSN it behaves like New, so the same code path works locally.
package logger
