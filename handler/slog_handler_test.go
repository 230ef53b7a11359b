package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/formatter"
	"github.com/philipp01105/unifiedlog/oslog"
	"github.com/philipp01105/unifiedlog/oslog/oslogtest"
)

func newTextConsole(buf *bytes.Buffer) *ConsoleHandler {
	return NewConsoleHandler(ConsoleConfig{
		Writer:    buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{IncludeCategory: true}),
	})
}

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(newTextConsole(&bytes.Buffer{}), core.InfoLevel)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	sh := NewSlogHandler(newTextConsole(&buf), core.DebugLevel).WithCategory("com.example.app")
	logger := slog.New(sh)

	logger.Info("test message", "key", "value", "count", 42, "err", errors.New("boom"))

	output := buf.String()
	for _, want := range []string{"com.example.app: test message", "key=value", "count=42", "err=boom"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(newTextConsole(&buf), core.DebugLevel)).With("request_id", "req-123")

	logger.Info("test message")

	if !strings.Contains(buf.String(), "request_id=req-123") {
		t.Errorf("Expected 'request_id=req-123' in output, got: %s", buf.String())
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(newTextConsole(&buf), core.DebugLevel)).WithGroup("auth")

	logger.Info("test message", "user_id", 123, slog.Group("client", "ip", "10.0.0.1", "port", 443))

	output := buf.String()
	for _, want := range []string{"auth.user_id=123", "auth.client.ip=10.0.0.1", "auth.client.port=443"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(newTextConsole(&buf), core.InfoLevel))

	logger.Debug("should not appear")
	if buf.Len() > 0 {
		t.Error("Debug message should not have been logged")
	}

	logger.Info("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("Expected 'should appear' in output, got: %s", buf.String())
	}
}

func TestSlogHandler_OSLog(t *testing.T) {
	rec := oslogtest.NewRecorder()
	l, err := oslog.New(rec, "com.example.app", "slog")
	if err != nil {
		t.Fatalf("oslog.New() error = %v", err)
	}
	logger := slog.New(NewSlogHandler(NewOSLogHandler(OSLogConfig{Logger: l}), core.TraceLevel))

	ctx := context.Background()
	logger.Log(ctx, SlogLevelTrace, "trace")
	logger.Warn("warn")
	logger.Log(ctx, SlogLevelCritical, "critical")

	want := []oslog.Type{oslog.TypeDefault, oslog.TypeError, oslog.TypeFault}
	got := rec.Types()
	if len(got) != len(want) {
		t.Fatalf("got %d native calls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d type = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{SlogLevelTrace, core.TraceLevel},
		{slog.LevelDebug - 1, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 2, core.ErrorLevel},
		{SlogLevelCritical, core.CriticalLevel},
	}

	for _, tt := range tests {
		if got := SlogLevelToCore(tt.slogLevel); got != tt.coreLevel {
			t.Errorf("SlogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
