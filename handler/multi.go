package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/unifiedlog/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers     []Handler
	recycleEntry bool // true when every child supports entry recycling
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		recycleEntry: true,
	}
	for _, h := range handlers {
		if !CanRecycle(h) {
			m.recycleEntry = false
		}
	}
	return m
}

// Handle sends the entry to every handler, even when an earlier one
// fails, and returns the combined errors.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Enabled reports whether any child would write an entry at level.
// Children that cannot tell are assumed to want it.
func (h *MultiHandler) Enabled(level core.Level) bool {
	for _, handler := range h.handlers {
		le, ok := handler.(LevelEnabler)
		if !ok || le.Enabled(level) {
			return true
		}
	}
	return false
}

// CanRecycleEntry returns true if the caller can recycle the entry after Handle returns.
func (h *MultiHandler) CanRecycleEntry() bool {
	return h.recycleEntry
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
