package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestPrettyHandler_Structural(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: LevelDebug}
	h := NewPrettyHandler(&buf, opts, false)
	l := slog.New(h)

	t.Run("WithAttrs", func(t *testing.T) {
		buf.Reset()
		l.With("dir", "i18n").Info("discovered", "count", 3)

		output := buf.String()
		if !strings.Contains(output, "dir=i18n") {
			t.Errorf("output missing persistent attr: %q", output)
		}
		if !strings.Contains(output, "count=3") {
			t.Errorf("output missing record attr: %q", output)
		}
	})

	t.Run("NestedGroups", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("outer").WithGroup("inner").With("key", "val").Info("msg")

		if output := buf.String(); !strings.Contains(output, "outer.inner.key=val") {
			t.Errorf("output missing nested grouped attr: %q", output)
		}
	})
}

func TestRedactAttr(t *testing.T) {
	t.Run("ContentKey", func(t *testing.T) {
		got := RedactAttr(nil, slog.String("value", "Bonjour"))
		if got.Value.String() != "[REDACTED]" {
			t.Fatalf("expected redaction, got %q", got.Value.String())
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		got := RedactAttr(nil, slog.String("Text", "Hello"))
		if got.Value.String() != "[REDACTED]" {
			t.Fatalf("expected redaction, got %q", got.Value.String())
		}
	})

	t.Run("NonSensitive", func(t *testing.T) {
		got := RedactAttr(nil, slog.String("path", "en.data"))
		if got.Value.String() != "en.data" {
			t.Fatalf("unexpected redaction: %q", got.Value.String())
		}
	})
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbose, debug bool
		want           slog.Level
	}{
		{false, false, LevelWarn},
		{true, false, LevelInfo},
		{false, true, LevelDebug},
		{true, true, LevelDebug},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.verbose, tt.debug); got != tt.want {
			t.Errorf("LevelFor(%v, %v) = %v, want %v", tt.verbose, tt.debug, got, tt.want)
		}
	}
}

func captureStderr(t *testing.T) (*os.File, func() string) {
	t.Helper()
	prevStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	return w, func() string {
		_ = w.Close()
		os.Stderr = prevStderr
		out, _ := io.ReadAll(r)
		return string(out)
	}
}

func TestInit_DefaultLevelIsQuiet(t *testing.T) {
	_, done := captureStderr(t)
	Init(LevelWarn, nil)
	Info("not shown")
	Debug("not shown either")
	out := done()
	Init(LevelWarn, nil)

	if out != "" {
		t.Fatalf("expected no output at warn level, got %q", out)
	}
}

func TestInit_NoColorWhenNotTTY(t *testing.T) {
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return false }
	defer func() { isTerminal = prevIsTerminal }()

	_, done := captureStderr(t)
	Init(LevelInfo, nil)
	Info("test message", "key", "value")
	out := done()
	Init(LevelWarn, nil)

	if strings.Contains(out, "\033[") {
		t.Fatalf("unexpected ANSI codes in output: %q", out)
	}
}

func TestInit_LogFileReceivesJSON(t *testing.T) {
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return true }
	defer func() { isTerminal = prevIsTerminal }()

	_, done := captureStderr(t)
	var logBuf bytes.Buffer
	Init(LevelInfo, &logBuf)
	Info("parsed", "path", "en.data", "value", "Bonjour")
	out := done()
	Init(LevelWarn, nil)

	if strings.Contains(out, "\033[") {
		t.Fatalf("unexpected ANSI codes in console output: %q", out)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(logBuf.Bytes()), &rec); err != nil {
		t.Fatalf("log file is not JSONL: %v (%q)", err, logBuf.String())
	}
	if rec["path"] != "en.data" || rec["value"] != "[REDACTED]" {
		t.Fatalf("unexpected JSON record: %v", rec)
	}
}
