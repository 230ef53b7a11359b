// Package formatter defines how log entries are serialized into bytes.
//
// Formatter returns a []byte; WriterFormatter writes straight to an
// io.Writer and is preferred by handlers that have one.
//
// TextFormatter and JSONFormatter produce complete lines for consoles
// and files. MessageFormatter produces only the message and its fields,
// which is what the os_log handler sends: the unified logging system
// stamps time, level, subsystem and category on its own.
//
// Buffers larger than 64 KiB are not returned to the pool.
package formatter
