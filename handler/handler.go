package handler

import (
	"errors"

	"github.com/philipp01105/unifiedlog/core"
)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("handler: closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// LevelEnabler is implemented by handlers that can tell ahead of time
// whether an entry at a level would be written. Loggers consult it to
// skip building entries nobody wants.
type LevelEnabler interface {
	Enabled(level core.Level) bool
}

// recycler is implemented by handlers that are done with an entry once
// Handle returns.
type recycler interface {
	CanRecycleEntry() bool
}

// CanRecycle reports whether the caller may return an entry to the pool
// after h.Handle returns.
func CanRecycle(h Handler) bool {
	rc, ok := h.(recycler)
	return ok && rc.CanRecycleEntry()
}
