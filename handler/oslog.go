package handler

import (
	"sync/atomic"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/formatter"
	"github.com/philipp01105/unifiedlog/oslog"
)

// OSLogConfig holds configuration for the os_log handler
type OSLogConfig struct {
	// Logger is the os_log destination (required)
	Logger *oslog.Logger
	// Formatter renders message and fields (default: MessageFormatter)
	Formatter *formatter.MessageFormatter
	// CheckEnabled asks os_log before every write and skips disabled
	// types. Off by default: os_log already discards them cheaply.
	CheckEnabled bool
}

// OSLogHandler writes entries to Apple's unified logging system. Each
// entry becomes exactly one synchronous native call with the type
// oslog.TypeFor(entry.Level); nothing is queued.
type OSLogHandler struct {
	target       *oslog.Logger
	formatter    *formatter.MessageFormatter
	checkEnabled bool
	stats        *Stats
	closed       atomic.Bool
}

// NewOSLogHandler creates a new os_log handler. It panics if cfg.Logger
// is nil.
func NewOSLogHandler(cfg OSLogConfig) *OSLogHandler {
	if cfg.Logger == nil {
		panic("handler: OSLogConfig.Logger is nil")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewMessageFormatter(formatter.Config{})
	}
	return &OSLogHandler{
		target:       cfg.Logger,
		formatter:    cfg.Formatter,
		checkEnabled: cfg.CheckEnabled,
		stats:        NewStats(),
	}
}

// Handle writes the entry to os_log
func (h *OSLogHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		return ErrClosed
	}

	t := oslog.TypeFor(entry.Level)
	if h.checkEnabled && !h.target.IsEnabled(t) {
		h.stats.IncrementSkipped()
		return nil
	}

	h.target.Log(t, h.formatter.Message(entry))
	h.stats.IncrementProcessed()
	return nil
}

// Enabled reports whether os_log currently accepts the type for level.
// Without CheckEnabled it reports true and leaves filtering to os_log.
func (h *OSLogHandler) Enabled(level core.Level) bool {
	if !h.checkEnabled {
		return true
	}
	return h.target.Enabled(level)
}

// CanRecycleEntry returns true: the entry is not retained after Handle.
func (h *OSLogHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *OSLogHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. The native log object is not released; os_log
// objects live for the rest of the process.
func (h *OSLogHandler) Close() error {
	h.closed.Store(true)
	return nil
}
