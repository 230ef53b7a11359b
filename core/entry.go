package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Level is the abstract severity of a log entry. The ordering matters:
// a Logger drops every entry whose level is below its own.
type Level int8

const (
	// TraceLevel for the most detailed diagnostic messages
	TraceLevel Level = iota
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for abnormal or unexpected events
	WarnLevel
	// ErrorLevel for failures of the current operation
	ErrorLevel
	// CriticalLevel for unrecoverable failures
	CriticalLevel
	// NoneLevel is the highest level. As a minimum level it silences
	// everything else; entries logged at it go to the default channel.
	NoneLevel
)

var levelNames = [...]string{
	TraceLevel:    "TRACE",
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarnLevel:     "WARN",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
	NoneLevel:     "NONE",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= NoneLevel
}

// Levels returns every defined level in ascending order.
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel, NoneLevel}
}

// Entry represents a log entry with all its metadata
type Entry struct {
	Time     time.Time
	Level    Level
	Category string
	Message  string
	Fields   []Field
	Caller   CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.Category = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
