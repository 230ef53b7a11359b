package handler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/formatter"
)

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{IncludeCategory: true}),
	})
	defer h.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Category = "com.example.app"
	entry.Message = "test message"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if !strings.Contains(buf.String(), "com.example.app: test message") {
		t.Errorf("Expected 'com.example.app: test message' in output, got: %s", buf.String())
	}
	if got := h.Stats().Processed; got != 1 {
		t.Errorf("Processed = %d, want 1", got)
	}
}

func TestConsoleHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})

	entry := core.GetEntry()
	entry.Level = core.CriticalLevel
	entry.Message = "json test"
	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !strings.Contains(buf.String(), `"level":"CRITICAL"`) {
		t.Errorf("Expected CRITICAL level in output, got: %s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestConsoleHandler_WriteError(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: failingWriter{}})

	entry := core.GetEntry()
	entry.Message = "lost"
	if err := h.Handle(entry); err == nil {
		t.Fatal("Handle() expected error")
	}
	if got := h.Stats().Failed; got != 1 {
		t.Errorf("Failed = %d, want 1", got)
	}
}

func TestConsoleHandler_Closed(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	h.Close()

	entry := core.GetEntry()
	entry.Message = "after close"
	if err := h.Handle(entry); !errors.Is(err, ErrClosed) {
		t.Errorf("Handle() error = %v, want ErrClosed", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Closed handler wrote: %s", buf.String())
	}
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	h1 := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf1,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	h2 := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf2,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	multi := NewMultiHandler(h1, h2)
	defer multi.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "multi test"

	if err := multi.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if !strings.Contains(buf1.String(), "multi test") {
		t.Error("First handler did not receive message")
	}

	if !strings.Contains(buf2.String(), "multi test") {
		t.Error("Second handler did not receive message")
	}
	if !multi.CanRecycleEntry() {
		t.Error("CanRecycleEntry() = false with only synchronous children")
	}
}

func TestMultiHandler_ContinuesAfterError(t *testing.T) {
	var buf bytes.Buffer
	bad := NewConsoleHandler(ConsoleConfig{Writer: failingWriter{}})
	good := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	multi := NewMultiHandler(bad, good)

	entry := core.GetEntry()
	entry.Message = "still delivered"
	if err := multi.Handle(entry); err == nil {
		t.Error("Handle() expected the failing child's error")
	}
	if !strings.Contains(buf.String(), "still delivered") {
		t.Error("Second handler did not receive message after first failed")
	}
}
