// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger construction, level filtering, clone
//              semantics, formatters and structured error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial tests
// - 2026-10-17 v0.2.0: Formatter and level parsing tests merged here

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: &buf,
		Name:   "test",
	}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}

	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level were written: %q", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("expected messages missing: %q", out)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("nothing")
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Nop() logger should not enable any level")
	}
}

func TestWithFieldsDoesNotLeak(t *testing.T) {
	base, buf := newTestLogger(LevelInfo, FormatLogfmt)
	child := base.WithField("component", "presenter")

	base.Info("from base")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("parent logger received child field: %q", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), `component="presenter"`) {
		t.Errorf("child field missing: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatJSON)
	logger.Info("formatted", String("value", "1234.5"), Int("decimals", 2))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	if data["message"] != "formatted" {
		t.Errorf("message = %v", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("level = %v", data["level"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v", data["logger"])
	}
	if data["value"] != "1234.5" {
		t.Errorf("value = %v", data["value"])
	}
	if data["decimals"] != float64(2) {
		t.Errorf("decimals = %v", data["decimals"])
	}
}

func TestTextFormatterSortedFields(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "msg")
	entry.Fields["b"] = 2
	entry.Fields["a"] = 1

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] msg [a=1 b=2]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogError(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatLogfmt)

	err := mdwerror.New("unparseable date").
		WithCode(mdwerror.CodeDateParse).
		WithOperation("presenty.DateIta").
		WithDetail("value", "not-a-date")
	logger.LogError(err)

	out := buf.String()
	for _, want := range []string{"level=debug", "error_code=DATE_PARSE", `error_value="not-a-date"`, `error_operation="presenty.DateIta"`} {
		if !strings.Contains(out, want) {
			t.Errorf("LogError() output missing %q: %q", want, out)
		}
	}

	buf.Reset()
	logger.LogError(errors.New("plain"))
	if !strings.Contains(buf.String(), "level=error") {
		t.Errorf("plain errors should log at error level: %q", buf.String())
	}

	buf.Reset()
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"off", LevelOff, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("logfmt"); err != nil || f != FormatLogfmt {
		t.Errorf("ParseFormat(logfmt) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
