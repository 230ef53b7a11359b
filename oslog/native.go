package oslog

import "errors"

var (
	// ErrUnsupported is returned by Open on platforms without os_log.
	ErrUnsupported = errors.New("oslog: unified logging is not available on this platform")
	// ErrCreate reports that the native library could not create a log object.
	ErrCreate = errors.New("oslog: create log object")
)

// Handle is an opaque reference to a native log object. Only a Native
// implementation interprets it; the zero Handle is never valid.
type Handle uintptr

// Native is the foreign-function boundary. Each method corresponds to
// exactly one exported symbol of the native shim, with the same name.
// Implementations must be safe for concurrent use.
type Native interface {
	Create(subsystem, category string) (Handle, error)
	IsEnabled(h Handle, t Type) bool
	Log(h Handle, t Type, message string)
	LogTrace(h Handle, message string)
	LogDebug(h Handle, message string)
	LogInfo(h Handle, message string)
	LogWarning(h Handle, message string)
	LogError(h Handle, message string)
	LogCritical(h Handle, message string)
	LogDefault(h Handle, message string)
}
