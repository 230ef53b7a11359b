package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/handler"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	enabler       handler.LevelEnabler
	level         core.Level
	category      string
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	recycleEntry  bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	category      string
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel,
		callerSkip: 3,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCategory sets the category stamped on every entry
func (b *Builder) WithCategory(category string) *Builder {
	b.category = category
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		handler:       b.handler,
		level:         b.level,
		category:      b.category,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
	if b.handler != nil {
		l.enabler, _ = b.handler.(handler.LevelEnabler)
		l.recycleEntry = handler.CanRecycle(b.handler)
	}
	return l
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := *l
	c.fields = newFields
	return &c
}

// Category returns the category stamped on entries.
func (l *Logger) Category() string {
	return l.category
}

// Level returns the minimum level.
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether an entry at level would reach the handler.
func (l *Logger) Enabled(level core.Level) bool {
	if level < l.level || l.handler == nil {
		return false
	}
	if l.enabler != nil {
		return l.enabler.Enabled(level)
	}
	return true
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if level < l.level {
		return
	}
	l.log(level, msg, fields)
}

func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Category = l.category
	entry.Message = msg

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	if err := l.handler.Handle(entry); err != nil {
		return
	}

	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message. Unlike a fatal level it does not
// exit the process.
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if core.CriticalLevel < l.level {
		return
	}
	l.log(core.CriticalLevel, msg, fields)
}

// None logs at NoneLevel, which os_log records with its default type.
func (l *Logger) None(msg string, fields ...core.Field) {
	l.log(core.NoneLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if core.CriticalLevel < l.level {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
