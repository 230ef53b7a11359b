// Package oslog binds Apple's Unified Logging facility (os_log).
//
// The package has three layers:
//
//   - Type is the native severity code os_log understands, and TypeFor
//     maps an abstract core.Level onto it.
//   - Native is the foreign-function boundary. It names the native entry
//     points one to one (Create, IsEnabled, Log, LogTrace, LogDebug,
//     LogInfo, LogWarning, LogError, LogCritical, LogDefault). Open
//     returns the cgo binding on darwin and ErrUnsupported elsewhere.
//   - Logger owns the opaque Handle returned by Create and forwards each
//     write to the matching entry point.
//
// Every call is a single synchronous crossing into the native library.
// Nothing is buffered, batched or retried, and handles are never
// released: os_log objects live for the whole process.
//
//	native, err := oslog.Open()
//	if err != nil {
//	    return err
//	}
//	l, err := oslog.New(native, "com.example.app", "network")
//	if err != nil {
//	    return err
//	}
//	l.LogLevel(core.WarnLevel, "retrying request")
//
// Tests that cannot reach the real library use oslogtest.Recorder.
package oslog
