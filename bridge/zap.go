package bridge

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/oslog"
)

// zapEncoderConfig renders only the message and context fields; os_log
// records time and level itself.
var zapEncoderConfig = zapcore.EncoderConfig{
	MessageKey:       "msg",
	StacktraceKey:    "stacktrace",
	ConsoleSeparator: " ",
	EncodeDuration:   zapcore.StringDurationEncoder,
	EncodeTime:       zapcore.RFC3339TimeEncoder,
}

type zapCore struct {
	zapcore.LevelEnabler
	target *oslog.Logger
	enc    zapcore.Encoder
}

// NewZapCore returns a zapcore.Core that writes to target. Messages look
// like `msg {"key": "value"}`, the context rendered by zap's console
// encoder. A nil enab enables DebugLevel and above.
func NewZapCore(target *oslog.Logger, enab zapcore.LevelEnabler) zapcore.Core {
	if enab == nil {
		enab = zapcore.DebugLevel
	}
	return &zapCore{
		LevelEnabler: enab,
		target:       target,
		enc:          zapcore.NewConsoleEncoder(zapEncoderConfig),
	}
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &zapCore{
		LevelEnabler: c.LevelEnabler,
		target:       c.target,
		enc:          c.enc.Clone(),
	}
	for _, f := range fields {
		f.AddTo(clone.enc)
	}
	return clone
}

func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	msg := strings.TrimSuffix(buf.String(), "\n")
	buf.Free()

	c.target.LogLevel(ZapLevelToCore(ent.Level), msg)
	return nil
}

// Sync is a no-op: every Write has already reached os_log.
func (c *zapCore) Sync() error {
	return nil
}

// ZapLevelToCore converts a zapcore.Level. Levels below Debug become
// Trace; DPanic, Panic and Fatal become Critical.
func ZapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level < zapcore.DebugLevel:
		return core.TraceLevel
	case level == zapcore.DebugLevel:
		return core.DebugLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.ErrorLevel:
		return core.ErrorLevel
	default:
		return core.CriticalLevel
	}
}
