package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerDefaults(t *testing.T) {
	logger := NewLogger(nil)
	if logger == nil {
		t.Fatal("NewLogger(nil) returned nil")
	}
	if logger.level != LevelInfo {
		t.Errorf("level = %v, want LevelInfo", logger.level)
	}
}

func TestLoggerLevelGating(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("also hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below configured level, got %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected output to contain message, got %q", buf.String())
	}
}

func TestLoggerArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelDebug, Output: &buf})

	logger.Info("spawned", "id", 3, "status", "ready")
	out := buf.String()
	if !strings.Contains(out, "id=3") || !strings.Contains(out, "status=ready") {
		t.Errorf("expected formatted key=value args, got %q", out)
	}
}

func TestDefaultLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(NewLogger(&Config{Level: LevelDebug, Output: &buf}))
	defer SetDefault(NewLogger(nil))

	Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected default logger to receive message, got %q", buf.String())
	}
}
