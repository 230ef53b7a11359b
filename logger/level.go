package logger

import (
	"strings"

	"github.com/philipp01105/unifiedlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	NoneLevel     = core.NoneLevel
)

// ParseLevel converts a string to a Level. Unknown names yield InfoLevel.
func ParseLevel(s string) Level {
	if l, ok := LookupLevel(s); ok {
		return l
	}
	return InfoLevel
}

// LookupLevel converts a string to a Level and reports whether the name
// was recognised. Matching is case-insensitive.
func LookupLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO", "INFORMATION":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "CRITICAL", "FATAL":
		return CriticalLevel, true
	case "NONE":
		return NoneLevel, true
	default:
		return InfoLevel, false
	}
}
