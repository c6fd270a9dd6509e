package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "json", Level: slog.LevelInfo})
	log.Info("ranking recorded", "name", "karina", "time_ms", 1234)

	out := buf.String()
	assert.Contains(t, out, `"msg":"ranking recorded"`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"name":"karina"`)
}

func TestNew_FormatAutoDetection(t *testing.T) {
	var prod, dev bytes.Buffer
	New(Config{Writer: &prod, Environment: "production"}).Info("hello")
	New(Config{Writer: &dev, Environment: "development"}).Info("hello")

	assert.Contains(t, prod.String(), `"msg":"hello"`)
	assert.Contains(t, dev.String(), "INF")
	assert.NotContains(t, dev.String(), `"msg"`)
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Level: slog.LevelWarn, NoColor: true})
	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WRN shown")
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Level: slog.LevelDebug, NoColor: true})
	log.With("game", "grape").WithGroup("seat").Debug("toggled", "index", 5, "label", "Row 1 Seat 6")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "DBG toggled")
	assert.Contains(t, line, "game=grape")
	assert.Contains(t, line, "seat.index=5")
	assert.Contains(t, line, `seat.label="Row 1 Seat 6"`)
	assert.NotContains(t, line, "\033[")
}

func TestPrettyHandler_Color(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Writer: &buf}).Error("boom")
	assert.Contains(t, buf.String(), colorRed+"ERR"+colorReset)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "podo-rush.log")
	f, err := OpenFile(path)
	require.NoError(t, err)

	New(Config{Writer: f, NoColor: true}).Info("client started")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INF client started")
}
