package handler

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/formatter"
)

// ConsoleHandler writes formatted entries to an io.Writer, one Write
// per entry, serialized by a mutex.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	stats           *Stats
	closed          atomic.Bool
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{IncludeCategory: true})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// Handle formats and writes a log entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		return ErrClosed
	}

	var err error
	if h.writerFormatter != nil {
		h.mu.Lock()
		err = h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err == nil {
			h.mu.Lock()
			_, err = h.writer.Write(data)
			h.mu.Unlock()
		}
	}

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// CanRecycleEntry returns true: writes are synchronous.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. The writer is not closed; it belongs
// to the caller.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
