package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWritesPlainTextOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("Store opened", "backend", "file")
	logger.Error("Failed to read recipes", "error", errors.New("disk"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Store opened")
	assert.Contains(t, out, "backend=file")
	assert.Contains(t, out, "disk")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewAddsSourceAtDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelDebug).Debug("tracing")

	assert.Contains(t, buf.String(), "logging_test.go")
}
