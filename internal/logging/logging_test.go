package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"moinmd.de/m/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		text string
		exp  slog.Level
	}{
		{"trace", logging.LevelTrace},
		{"TR", logging.LevelTrace},
		{"deb", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"er", slog.LevelError},
		{"", logging.LevelMissing},
		{"nope", logging.LevelMissing},
	}
	for _, tc := range testcases {
		if got := logging.ParseLevel(tc.text); got != tc.exp {
			t.Errorf("ParseLevel(%q) == %v, expected %v", tc.text, got, tc.exp)
		}
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		level slog.Level
		exp   string
	}{
		{logging.LevelTrace, "TRACE"},
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARN"},
		{slog.LevelError, "ERROR"},
		{logging.LevelMandatory, ">>>>>"},
	}
	for _, tc := range testcases {
		if got := logging.LevelString(tc.level); got != tc.exp {
			t.Errorf("LevelString(%v) == %q, expected %q", tc.level, got, tc.exp)
		}
	}
}

func TestReplaceLevelAttr(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level:       logging.LevelTrace,
		ReplaceAttr: logging.ReplaceLevelAttr,
	}))
	logging.LogTrace(logger, "tracing")
	if got := buf.String(); !strings.Contains(got, "level=TRACE") {
		t.Errorf("trace log == %q, expected level=TRACE", got)
	}
}

func TestLogMandatory(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
	logging.LogMandatory(logger, "always visible")
	if got := buf.String(); !strings.Contains(got, "always visible") {
		t.Errorf("mandatory log == %q, expected the message", got)
	}
}
