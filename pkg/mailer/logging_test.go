package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestWithLogging_NilLoggerReturnsNext(t *testing.T) {
	t.Parallel()

	next := SenderFunc(func(context.Context, Message) error { return nil })
	s := WithLogging(next, nil)

	_, wrapped := s.(*loggingSender)
	assert.False(t, wrapped)
}

func TestWithLogging_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenID string
	next := SenderFunc(func(ctx context.Context, _ Message) error {
		seenID, _ = DispatchIDFromContext(ctx)
		return nil
	})

	msg, err := NewMessage(validParams())
	require.NoError(t, err)
	require.NoError(t, WithLogging(next, log).Send(context.Background(), msg))

	require.NotEmpty(t, seenID, "a dispatch id is generated for the wrapped sender")

	records := decodeLogLines(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "sending email", records[0]["msg"])
	assert.Equal(t, "email sent", records[1]["msg"])
	assert.EqualValues(t, 1, records[1]["recipients"])
}

func TestWithLogging_KeepsExistingDispatchID(t *testing.T) {
	t.Parallel()

	var seenID string
	next := SenderFunc(func(ctx context.Context, _ Message) error {
		seenID, _ = DispatchIDFromContext(ctx)
		return nil
	})

	msg, err := NewMessage(validParams())
	require.NoError(t, err)

	ctx := WithDispatchID(context.Background(), "fixed-id")
	log := slog.New(slog.DiscardHandler)
	require.NoError(t, WithLogging(next, log).Send(ctx, msg))
	assert.Equal(t, "fixed-id", seenID)
}

func TestWithLogging_DispatchFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	dispatchErr := &DispatchError{Code: 1902, Message: "Invalid recipient"}
	next := SenderFunc(func(context.Context, Message) error { return dispatchErr })

	msg, err := NewMessage(validParams())
	require.NoError(t, err)

	err = WithLogging(next, log).Send(context.Background(), msg)
	require.ErrorIs(t, err, dispatchErr, "errors pass through unchanged")

	records := decodeLogLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0]["level"])
	assert.Equal(t, "email dispatch failed", records[0]["msg"])
	assert.EqualValues(t, 1902, records[0]["code"])
}

func TestWithLogging_ValidationFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	next := SenderFunc(func(_ context.Context, msg Message) error { return msg.Validate() })

	err := WithLogging(next, log).Send(context.Background(), Message{})
	require.ErrorIs(t, err, ErrNoSender)

	records := decodeLogLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "from", records[0]["field"])
}

func TestDispatchIDExtractor(t *testing.T) {
	t.Parallel()

	_, ok := DispatchIDExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := DispatchIDExtractor(WithDispatchID(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "dispatch_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	var s Sender = SenderFunc(func(context.Context, Message) error { return want })
	assert.ErrorIs(t, s.Send(context.Background(), Message{}), want)
}
