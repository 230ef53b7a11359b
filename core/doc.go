// Package core defines the shared types used across unifiedlog.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for structured
// key-value pairs.
//
// Level is the abstract, platform independent severity. It is translated
// into a native os_log type only at the edge, by package oslog.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
package core
