package oslog

import (
	"errors"
	"fmt"

	"github.com/philipp01105/unifiedlog/core"
)

// Logger writes to one os_log destination, identified by a subsystem and
// a category. It owns the native handle and never hands it out.
// A Logger is safe for concurrent use as long as its Native is.
type Logger struct {
	native    Native
	handle    Handle
	subsystem string
	category  string
}

// New creates the native log object for subsystem and category. A
// failed create is returned at once, wrapped with ErrCreate; there is
// no point retrying a local logging subsystem.
func New(native Native, subsystem, category string) (*Logger, error) {
	if native == nil {
		return nil, fmt.Errorf("%w: no native binding", ErrCreate)
	}

	h, err := native.Create(subsystem, category)
	if err != nil {
		if errors.Is(err, ErrCreate) {
			return nil, fmt.Errorf("oslog: create %q/%q: %w", subsystem, category, err)
		}
		return nil, fmt.Errorf("%w %q/%q: %w", ErrCreate, subsystem, category, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("%w %q/%q: native library returned a nil handle", ErrCreate, subsystem, category)
	}

	return &Logger{
		native:    native,
		handle:    h,
		subsystem: subsystem,
		category:  category,
	}, nil
}

// Subsystem returns the subsystem the logger was created with.
func (l *Logger) Subsystem() string {
	return l.subsystem
}

// Category returns the category the logger was created with.
func (l *Logger) Category() string {
	return l.category
}

// IsEnabled reports what os_log_type_enabled says for t.
func (l *Logger) IsEnabled(t Type) bool {
	return l.native.IsEnabled(l.handle, t)
}

// Enabled is IsEnabled for the native type of level.
func (l *Logger) Enabled(level core.Level) bool {
	return l.native.IsEnabled(l.handle, TypeFor(level))
}

// Log writes message with type t. Error and fault go through their
// dedicated entry points rather than the generic Log.
func (l *Logger) Log(t Type, message string) {
	switch t {
	case TypeError:
		l.native.LogError(l.handle, message)
	case TypeFault:
		l.native.LogCritical(l.handle, message)
	default:
		l.native.Log(l.handle, t, message)
	}
}

// LogLevel writes message with the native type of level.
func (l *Logger) LogLevel(level core.Level, message string) {
	l.Log(TypeFor(level), message)
}

// LogTrace writes message through the trace entry point.
func (l *Logger) LogTrace(message string) {
	l.native.LogTrace(l.handle, message)
}

// LogDebug writes message through the debug entry point.
func (l *Logger) LogDebug(message string) {
	l.native.LogDebug(l.handle, message)
}

// LogInformation writes message through the info entry point.
func (l *Logger) LogInformation(message string) {
	l.native.LogInfo(l.handle, message)
}

// LogWarning writes message through the warning entry point.
func (l *Logger) LogWarning(message string) {
	l.native.LogWarning(l.handle, message)
}

// LogError writes message through the error entry point.
func (l *Logger) LogError(message string) {
	l.native.LogError(l.handle, message)
}

// LogCritical writes message through the critical (fault) entry point.
func (l *Logger) LogCritical(message string) {
	l.native.LogCritical(l.handle, message)
}

// LogNone writes message through the default entry point.
func (l *Logger) LogNone(message string) {
	l.native.LogDefault(l.handle, message)
}
