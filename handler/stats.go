package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	processed atomic.Uint64
	skipped   atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed counts an entry that was written.
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementSkipped counts an entry the destination reported as disabled.
func (s *Stats) IncrementSkipped() {
	s.skipped.Add(1)
}

// IncrementFailed counts an entry whose write returned an error.
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.processed.Store(0)
	s.skipped.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Processed uint64
	Skipped   uint64
	Failed    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: s.processed.Load(),
		Skipped:   s.skipped.Load(),
		Failed:    s.failed.Load(),
	}
}
