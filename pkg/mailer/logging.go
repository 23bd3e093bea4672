package mailer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type dispatchIDKey struct{}

// WithDispatchID stores a dispatch id in the context.
func WithDispatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, dispatchIDKey{}, id)
}

// DispatchIDFromContext returns the dispatch id set by WithDispatchID or WithLogging.
func DispatchIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(dispatchIDKey{}).(string)
	return id, ok && id != ""
}

// DispatchIDExtractor adds "dispatch_id" to log records.
// It matches logger.ContextExtractor.
func DispatchIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := DispatchIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("dispatch_id", id), true
}

// WithLogging wraps a Sender and logs every dispatch attempt.
// A dispatch id is generated when the context does not carry one.
// Returns next unchanged if log is nil.
func WithLogging(next Sender, log *slog.Logger) Sender {
	if log == nil {
		return next
	}
	return &loggingSender{next: next, log: log}
}

type loggingSender struct {
	next Sender
	log  *slog.Logger
}

func (s *loggingSender) Send(ctx context.Context, msg Message) error {
	if _, ok := DispatchIDFromContext(ctx); !ok {
		ctx = WithDispatchID(ctx, uuid.NewString())
	}

	s.log.DebugContext(ctx, "sending email",
		slog.Int("recipients", len(msg.to)),
		slog.String("subject", msg.subject),
	)

	start := time.Now()
	err := s.next.Send(ctx, msg)
	elapsed := slog.Duration("duration", time.Since(start))

	if err == nil {
		s.log.InfoContext(ctx, "email sent", slog.Int("recipients", len(msg.to)), elapsed)
		return nil
	}

	attrs := []any{elapsed, slog.String("error", err.Error())}
	var dispatchErr *DispatchError
	if errors.As(err, &dispatchErr) {
		attrs = append(attrs, slog.Int("code", dispatchErr.Code))
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		s.log.WarnContext(ctx, "email rejected", append(attrs, slog.String("field", validationErr.Field))...)
		return err
	}
	s.log.ErrorContext(ctx, "email dispatch failed", attrs...)
	return err
}
