package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func TestNew_JSONAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, slog.LevelInfo, "json", "/nowhere", requestID)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	l.With("component", "test").InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "test", rec["component"])
	assert.Contains(t, rec, slog.SourceKey)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, slog.LevelWarn, "text", "", nil)
	require.NoError(t, err)

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, slog.LevelInfo, "xml", "", nil)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestPGXTracer_DropsArgs(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, slog.LevelDebug, "json", "", nil)
	require.NoError(t, err)

	tr := NewPGXTracer(l)
	tr.Logger.Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{
		"sql":  "select 1",
		"args": []any{"secret"},
		"pid":  uint32(42),
	})

	out := buf.String()
	assert.Contains(t, out, "select 1")
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, `"pid"`)
}

func TestPGXLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, pgxLevel(tracelog.LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, pgxLevel(tracelog.LogLevelWarn))
	assert.Equal(t, slog.LevelError, pgxLevel(tracelog.LogLevelError))
}
