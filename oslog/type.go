package oslog

import "github.com/philipp01105/unifiedlog/core"

// Type is a native os_log severity code. The numeric values are part of
// the binary contract with the native shim and must not be renumbered.
type Type uint8

const (
	// TypeDefault is os_log's default type.
	TypeDefault Type = 0
	// TypeInfo is for helpful but non-essential messages.
	TypeInfo Type = 1
	// TypeDebug is for development-time messages, normally not persisted.
	TypeDebug Type = 2
	// TypeError is for errors in the current process.
	TypeError Type = 10
	// TypeFault is for system-level or multi-process failures.
	TypeFault Type = 11
)

// String returns the os_log name of the type.
func (t Type) String() string {
	switch t {
	case TypeDefault:
		return "default"
	case TypeInfo:
		return "info"
	case TypeDebug:
		return "debug"
	case TypeError:
		return "error"
	case TypeFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Types returns every native type.
func Types() []Type {
	return []Type{TypeDefault, TypeInfo, TypeDebug, TypeError, TypeFault}
}

// levelTypes is indexed by core.Level. Warning maps to TypeError so that
// warnings are persisted alongside errors.
var levelTypes = [...]Type{
	core.TraceLevel:    TypeDefault,
	core.DebugLevel:    TypeDebug,
	core.InfoLevel:     TypeInfo,
	core.WarnLevel:     TypeError,
	core.ErrorLevel:    TypeError,
	core.CriticalLevel: TypeFault,
	core.NoneLevel:     TypeDefault,
}

// TypeFor returns the native type for level. It is total: levels outside
// the defined range map to TypeDefault.
func TypeFor(level core.Level) Type {
	if !level.Valid() {
		return TypeDefault
	}
	return levelTypes[level]
}
