// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, child loggers, formatters, error
//              logging and timers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/halang/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("Expected default level %v, got %v", DefaultLevel(), logger.GetLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below warn, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "[WRN] shown") {
		t.Errorf("Expected warn line, got %q", buf.String())
	}
}

func TestChildLoggersAreIndependent(t *testing.T) {
	parent, buf := newBufferLogger(LevelDebug, FormatText)
	child := parent.WithField("component", "halang-parser").WithSession("0123456789abcdef")

	if len(parent.contextFields) != 0 {
		t.Error("WithField() should not modify the parent")
	}
	if parent.Session() != "" {
		t.Error("WithSession() should not modify the parent")
	}

	child.Debug("started", Field("tokens", 3))
	out := buf.String()
	for _, want := range []string{"(session=01234567)", "started", "component=halang-parser", "tokens=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.WithName("cli").WithSession("s-1").Info("parsed", Fields{"ok": true})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("Output is not JSON: %v (%q)", err, buf.String())
	}
	if data["message"] != "parsed" || data["logger"] != "cli" || data["session"] != "s-1" {
		t.Errorf("Unexpected JSON entry: %v", data)
	}
	if data["ok"] != true {
		t.Errorf("Expected field ok=true, got %v", data["ok"])
	}
}

func TestLogfmtFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	logger.Info("hello world", Fields{"b": 2, "a": "x"})

	out := buf.String()
	if !strings.Contains(out, `message="hello world"`) {
		t.Errorf("Expected quoted message, got %q", out)
	}
	if !strings.Contains(out, `a="x" b=2`) {
		t.Errorf("Expected sorted fields, got %q", out)
	}
}

func TestConsoleFormatColors(t *testing.T) {
	entry := NewEntry(LevelError, "bad")
	f := NewConsoleFormatter()
	f.DisableTimestamp = true

	data, _ := f.Format(entry)
	if !strings.HasPrefix(string(data), LevelError.Color()) {
		t.Errorf("Expected colored output, got %q", data)
	}

	f.DisableColors = true
	data, _ = f.Format(entry)
	if string(data) != "[ERR] bad\n" {
		t.Errorf("Expected plain output, got %q", data)
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, out string)
	}{
		{
			name: "syntax error logs at info",
			err:  mdwerror.New("expected ')'").WithCode(mdwerror.CodeUnexpectedToken).WithDetail("line", 2),
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "[INF]") {
					t.Errorf("Expected info level, got %q", out)
				}
				if !strings.Contains(out, "error_code=UNEXPECTED_TOKEN") || !strings.Contains(out, "error_line=2") {
					t.Errorf("Expected code and detail fields, got %q", out)
				}
			},
		},
		{
			name: "config error logs at warn",
			err:  mdwerror.New("bad key").WithCode(mdwerror.CodeInvalidConfig),
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "[WRN]") {
					t.Errorf("Expected warn level, got %q", out)
				}
			},
		},
		{
			name: "plain error logs at error",
			err:  errors.New("disk full"),
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "[ERR] disk full") {
					t.Errorf("Expected error level, got %q", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatText)
			logger.LogError(tt.err)
			tt.check(t, buf.String())
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	timer := logger.WithField("component", "test").StartTimer("parse").WithField("nodes", 5)
	time.Sleep(time.Millisecond)

	if d := timer.Stop(); d <= 0 {
		t.Errorf("Expected positive duration, got %v", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("Second Stop() should return 0, got %v", d)
	}

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected exactly one line, got %q", out)
	}
	for _, want := range []string{"parse completed", "nodes=5", "operation=parse", "component=test", "duration="} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)
	logger.StartTimer("parse").StopWithError(errors.New("2 errors"))

	if !strings.Contains(buf.String(), "[WRN]") || !strings.Contains(buf.String(), "parse failed") {
		t.Errorf("Expected warn line for failure, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should have every level disabled")
	}
	logger.Error("nothing")
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	replacement := Discard()
	SetDefault(replacement)
	if GetDefault() != replacement {
		t.Error("SetDefault() should replace the default logger")
	}
}
