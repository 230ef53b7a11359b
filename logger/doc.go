// Package logger is the public logging API of unifiedlog.
//
// A Logger is immutable after construction: fields, level, category and
// handler are set once via the Builder. This makes Logger safe for
// concurrent use without locking on the read path.
//
//	l := logger.NewBuilder().
//	    WithHandler(handler.NewOSLogHandler(handler.OSLogConfig{Logger: osl})).
//	    WithCategory("network").
//	    WithLevel(logger.DebugLevel).
//	    Build()
//	l.Warn("retrying", logger.Int("attempt", 2))
//
// Most programs obtain Loggers from a provider.Provider instead, which
// caches one os_log destination per category.
//
// Levels follow the usual ladder Trace < Debug < Info < Warn < Error <
// Critical < None. Level checks happen before any allocation.
package logger
