package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEntry parses the single JSON line written to buf.
func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ─────────────────────────────────────────────
// New / NewLogger
// ─────────────────────────────────────────────

func TestNew_StandardFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("nutritracker-test", &buf)

	l.Info().Msg("meal created")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "nutritracker-test", entry["role"])
	assert.Equal(t, "meal created", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNew_StandardFields")
}

func TestNewLogger_ResetsGlobalLevel(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	require.NotNil(t, NewLogger("level"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("discarded")

	assert.Empty(t, buf.String())
}

// ─────────────────────────────────────────────
// SetLevel
// ─────────────────────────────────────────────

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.Error(t, SetLevel("chatty"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetLevel_FiltersEntries(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := New("filter", &buf)
	require.NoError(t, SetLevel("error"))

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Error().Msg("shown")
	assert.Equal(t, "shown", decodeEntry(t, &buf)["message"])
}

// ─────────────────────────────────────────────
// child loggers
// ─────────────────────────────────────────────

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("parent", &buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("only_child", "yes")
	})

	parent.Info().Msg("from parent")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent", entry["role"])
	assert.NotContains(t, entry, "only_child")
}

func TestWithTraceIDAndUser(t *testing.T) {
	var buf bytes.Buffer
	l := New("server", &buf).WithTraceID("trace-1").WithUser(42, "client")

	l.Warn().Msg("access denied")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.EqualValues(t, 42, entry["user_id"])
	assert.Equal(t, "client", entry["user_role"])
}

// ─────────────────────────────────────────────
// context lookup
// ─────────────────────────────────────────────

func TestFromContext_WithoutLogger(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := New("ctx", &buf).WithTraceID("abc").WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := New("req", &buf).WithTraceID("xyz").WithContext(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "xyz", decodeEntry(t, &buf)["trace_id"])
}
