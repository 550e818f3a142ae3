package app

import (
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var sb strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &sb})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("also shown")

	out := sb.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "[ERROR]") {
		t.Errorf("missing leveled output: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var sb strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &sb})

	l.WithComponent("render").Info("frame done")

	if !strings.Contains(sb.String(), "component=render") {
		t.Errorf("field missing: %q", sb.String())
	}
}

func TestLoggerFormatArgs(t *testing.T) {
	var sb strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &sb, Prefix: "kyte"})

	l.Info("wrote %s (%d lines)", "a.txt", 3)

	out := sb.String()
	if !strings.Contains(out, "kyte: wrote a.txt (3 lines)") {
		t.Errorf("formatted output wrong: %q", out)
	}
}

func TestNullLoggerIsSilent(t *testing.T) {
	// Must not panic or write anywhere.
	NullLogger.Error("nothing")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"WARN", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
