// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries.
//
// Built-in handlers:
//
//   - OSLogHandler forwards each entry to an oslog.Logger, mapping the
//     entry's level to a native os_log type. One entry is one native
//     call; there is no queue, no batching and no retry.
//   - ConsoleHandler writes formatted entries to any io.Writer (default: stderr).
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler adapts the Handler interface to log/slog.Handler.
//
// Handlers track processed, skipped and failed counts via Stats.
package handler
