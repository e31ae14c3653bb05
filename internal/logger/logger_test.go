package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := WithComponent(New(&buf, "info", "json"), "assets")

	l.Debug("dropped")
	l.Info("image stored", "image_id", "abc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "image stored", record["msg"])
	assert.Equal(t, "assets", record["component"])
	assert.Equal(t, "abc", record["image_id"])
}

func TestNew_ConsoleNoColorForBuffer(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "console")

	l.Warn("file missing for image", "error", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "file missing for image")
	assert.Contains(t, out, assert.AnError.Error())
	assert.NotContains(t, out, "\x1b[")
}
