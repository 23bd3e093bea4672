package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestIDKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNewWithWriter_ExtractsContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: "info"}, requestIDExtractor, nil)

	ctx := context.WithValue(context.Background(), requestIDKey{}, "abc-123")
	log.InfoContext(ctx, "email sent", slog.Int("recipients", 2))

	rec := decode(t, &buf)
	assert.Equal(t, "email sent", rec["msg"])
	assert.Equal(t, "abc-123", rec["request_id"])
	assert.EqualValues(t, 2, rec["recipients"])
}

func TestNewWithWriter_SkipsMissingValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{}, requestIDExtractor)
	log.Info("no context")

	assert.NotContains(t, decode(t, &buf), "request_id")
}

func TestNewWithWriter_WithAttrsAndGroupKeepExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{}, requestIDExtractor).
		With(slog.String("component", "sparkpost")).
		WithGroup("send")

	ctx := context.WithValue(context.Background(), requestIDKey{}, "r1")
	log.InfoContext(ctx, "hello", slog.String("to", "bob"))

	rec := decode(t, &buf)
	assert.Equal(t, "sparkpost", rec["component"])
	group, ok := rec["send"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bob", group["to"])
	assert.Equal(t, "r1", group["request_id"])
}

func TestConfig_SlogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Config{Level: in}.SlogLevel(), in)
	}
}

func TestConfig_LevelFiltersRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Level: "warn"})
	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Equal(t, "kept", decode(t, &buf)["msg"])
}

func TestConfig_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewWithWriter(&buf, Config{Format: "text"}).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestFanout(t *testing.T) {
	t.Parallel()

	var infoBuf, errBuf bytes.Buffer
	h := fanout{
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	log := slog.New(h)

	log.Info("info only")
	assert.NotZero(t, infoBuf.Len())
	assert.Zero(t, errBuf.Len())

	log.Error("both")
	assert.Contains(t, errBuf.String(), "both")

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewWithSentry_EmptyDSNFallsBack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, flush := newWithSentry(&buf, Config{}, SentryConfig{}, requestIDExtractor)
	defer flush()

	log.Error("local only")
	assert.Equal(t, "local only", decode(t, &buf)["msg"])
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
