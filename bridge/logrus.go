package bridge

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/oslog"
)

// LogrusHook copies logrus entries to os_log.
type LogrusHook struct {
	target *oslog.Logger
	levels []logrus.Level
}

var _ logrus.Hook = (*LogrusHook)(nil)

// NewLogrusHook returns a hook firing for levels, or for every level
// when none are given.
func NewLogrusHook(target *oslog.Logger, levels ...logrus.Level) *LogrusHook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &LogrusHook{target: target, levels: levels}
}

// Levels implements logrus.Hook.
func (h *LogrusHook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook. Fields are appended to the message in
// key order.
func (h *LogrusHook) Fire(e *logrus.Entry) error {
	level := LogrusLevelToCore(e.Level)
	h.target.LogLevel(level, renderMessage(level, e.Message, e.Data))
	return nil
}

// LogrusLevelToCore converts a logrus.Level. Fatal and Panic become
// Critical.
func LogrusLevelToCore(level logrus.Level) core.Level {
	switch level {
	case logrus.TraceLevel:
		return core.TraceLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.ErrorLevel:
		return core.ErrorLevel
	default:
		return core.CriticalLevel
	}
}
