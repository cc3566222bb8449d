package internal

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), "raw level %q", raw)
	}
}

func TestLogPathWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewstack.log")
	SetLogPath(path)
	t.Cleanup(func() { SetLogPath("") })

	SetRawLogLevel("debug")
	t.Cleanup(func() { SetLogLevel(slog.LevelInfo) })

	GetLogger().Debug("stack swept", "views", 3)
	CloseLogger()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &record))
	assert.Equal(t, "stack swept", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.EqualValues(t, 3, record["views"])
}

func TestLoggerOr(t *testing.T) {
	own := slog.New(slog.NewTextHandler(os.Stderr, nil))
	assert.Same(t, own, LoggerOr(own))
	assert.Same(t, GetLogger(), LoggerOr(nil))
}
