package log

import (
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_WritesJSON(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithFormat(FormatJSON), WithLevel(LevelInfo))

	logger.InfoContext(t.Context(), "hello", slog.String("key", "value"))

	var entry map[string]any

	if err := json.Unmarshal([]byte(sb.String()), &entry); err != nil {
		t.Fatalf("invalid JSON output %q: %v", sb.String(), err)
	}

	if entry["msg"] != "hello" {
		t.Errorf("expected msg 'hello', got %v", entry["msg"])
	}

	if entry["key"] != "value" {
		t.Errorf("expected key 'value', got %v", entry["key"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithLevel(LevelWarn))

	logger.DebugContext(t.Context(), "dropped debug")
	logger.InfoContext(t.Context(), "dropped info")
	logger.WarnContext(t.Context(), "kept warn")
	logger.ErrorContext(t.Context(), "kept error")

	out := sb.String()

	if strings.Contains(out, "dropped") {
		t.Errorf("expected messages below warn dropped, got %q", out)
	}

	if !strings.Contains(out, "kept warn") ||
		!strings.Contains(out, "kept error") {
		t.Errorf("expected warn and error messages, got %q", out)
	}
}

func TestLogger_ZeroValueIsSilent(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("nothing")
	logger.ErrorContext(t.Context(), "nothing")
}

func TestLogger_Wrap_OverridesConfig(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithLevel(LevelError))
	wrapped := logger.Wrap(WithLevel(LevelDebug))

	if wrapped.Level() != LevelDebug {
		t.Errorf("expected wrapped level debug, got %v", wrapped.Level())
	}

	// Original logger is unchanged.
	if logger.Level() != LevelError {
		t.Errorf("expected original level error, got %v", logger.Level())
	}
}

func TestLogger_With_AddsAttrs(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithFormat(FormatJSON)).
		With(slog.String("component", "engine"))

	logger.InfoContext(t.Context(), "msg")

	if !strings.Contains(sb.String(), `"component":"engine"`) {
		t.Errorf("expected bound attribute in output, got %q", sb.String())
	}
}

func TestLogger_TimeLayoutNoneOmitsTime(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithFormat(FormatJSON), WithTimeLayout("none"))

	logger.InfoContext(t.Context(), "msg")

	if strings.Contains(sb.String(), `"time"`) {
		t.Errorf("expected no time attribute, got %q", sb.String())
	}
}

func TestConfig_UpdatesDefaultLogger(t *testing.T) {
	var sb strings.Builder

	Config(WithOutput(&sb), WithFormat(FormatJSON), WithLevel(LevelDebug))

	defer Config(WithDefaults(nil))

	DebugContext(t.Context(), "visible")

	if !strings.Contains(sb.String(), "visible") {
		t.Errorf("expected default logger output, got %q", sb.String())
	}
}
