// Package oslogtest provides an in-memory oslog.Native for tests that
// cannot reach the real Unified Logging library.
package oslogtest

import (
	"sync"

	"github.com/philipp01105/unifiedlog/oslog"
)

// Entry point names, as recorded in Call.EntryPoint.
const (
	EntryLog         = "Log"
	EntryLogTrace    = "LogTrace"
	EntryLogDebug    = "LogDebug"
	EntryLogInfo     = "LogInfo"
	EntryLogWarning  = "LogWarning"
	EntryLogError    = "LogError"
	EntryLogCritical = "LogCritical"
	EntryLogDefault  = "LogDefault"
)

// entryTypes is the native type each dedicated entry point writes with.
var entryTypes = map[string]oslog.Type{
	EntryLogTrace:    oslog.TypeDefault,
	EntryLogDebug:    oslog.TypeDebug,
	EntryLogInfo:     oslog.TypeInfo,
	EntryLogWarning:  oslog.TypeError,
	EntryLogError:    oslog.TypeError,
	EntryLogCritical: oslog.TypeFault,
	EntryLogDefault:  oslog.TypeDefault,
}

// Call is one recorded write.
type Call struct {
	EntryPoint string
	Handle     oslog.Handle
	Type       oslog.Type
	Message    string
}

// Destination is one recorded Create.
type Destination struct {
	Handle    oslog.Handle
	Subsystem string
	Category  string
}

// Recorder is a thread-safe fake of the native library. The zero value
// is ready to use and reports every type as enabled.
type Recorder struct {
	mu        sync.Mutex
	enabled   func(oslog.Type) bool
	createErr error
	next      oslog.Handle
	created   []Destination
	calls     []Call
	queries   int
}

var _ oslog.Native = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetEnabled installs the function that answers IsEnabled. nil restores
// the default of every type being enabled.
func (r *Recorder) SetEnabled(fn func(oslog.Type) bool) {
	r.mu.Lock()
	r.enabled = fn
	r.mu.Unlock()
}

// SetCreateErr makes subsequent Create calls fail with err. nil clears it.
func (r *Recorder) SetCreateErr(err error) {
	r.mu.Lock()
	r.createErr = err
	r.mu.Unlock()
}

// Create hands out a new handle per call, even for a repeated
// subsystem and category, so tests can tell creations apart.
func (r *Recorder) Create(subsystem, category string) (oslog.Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return 0, r.createErr
	}
	r.next++
	r.created = append(r.created, Destination{Handle: r.next, Subsystem: subsystem, Category: category})
	return r.next, nil
}

// IsEnabled passes the configured answer through.
func (r *Recorder) IsEnabled(_ oslog.Handle, t oslog.Type) bool {
	r.mu.Lock()
	fn := r.enabled
	r.queries++
	r.mu.Unlock()

	if fn == nil {
		return true
	}
	return fn(t)
}

// Log records a generic write with type t.
func (r *Recorder) Log(h oslog.Handle, t oslog.Type, message string) {
	r.record(Call{EntryPoint: EntryLog, Handle: h, Type: t, Message: message})
}

// LogTrace records a trace write.
func (r *Recorder) LogTrace(h oslog.Handle, message string) {
	r.recordEntry(EntryLogTrace, h, message)
}

// LogDebug records a debug write.
func (r *Recorder) LogDebug(h oslog.Handle, message string) {
	r.recordEntry(EntryLogDebug, h, message)
}

// LogInfo records an info write.
func (r *Recorder) LogInfo(h oslog.Handle, message string) {
	r.recordEntry(EntryLogInfo, h, message)
}

// LogWarning records a warning write, typed as an error.
func (r *Recorder) LogWarning(h oslog.Handle, message string) {
	r.recordEntry(EntryLogWarning, h, message)
}

// LogError records an error write.
func (r *Recorder) LogError(h oslog.Handle, message string) {
	r.recordEntry(EntryLogError, h, message)
}

// LogCritical records a critical write, typed as a fault.
func (r *Recorder) LogCritical(h oslog.Handle, message string) {
	r.recordEntry(EntryLogCritical, h, message)
}

// LogDefault records a default write.
func (r *Recorder) LogDefault(h oslog.Handle, message string) {
	r.recordEntry(EntryLogDefault, h, message)
}

func (r *Recorder) recordEntry(entry string, h oslog.Handle, message string) {
	r.record(Call{EntryPoint: entry, Handle: h, Type: entryTypes[entry], Message: message})
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// Calls returns a copy of every recorded write, oldest first.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Types returns the native type of every recorded write.
func (r *Recorder) Types() []oslog.Type {
	calls := r.Calls()
	out := make([]oslog.Type, len(calls))
	for i, c := range calls {
		out[i] = c.Type
	}
	return out
}

// Messages returns the message of every recorded write.
func (r *Recorder) Messages() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Message
	}
	return out
}

// Created returns a copy of every successful Create.
func (r *Recorder) Created() []Destination {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Destination, len(r.created))
	copy(out, r.created)
	return out
}

// CreateCount returns the number of successful Create calls.
func (r *Recorder) CreateCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.created)
}

// Queries returns the number of IsEnabled calls.
func (r *Recorder) Queries() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries
}

// Reset forgets recorded writes and queries. Handles stay unique.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.queries = 0
	r.mu.Unlock()
}
