package bridge

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/oslog"
)

// ZerologWriter is a zerolog.LevelWriter writing each event to os_log.
// The JSON event is decoded so that os_log gets `message key=value`
// rather than raw JSON; undecodable events are passed through as is.
type ZerologWriter struct {
	target *oslog.Logger
}

var _ zerolog.LevelWriter = (*ZerologWriter)(nil)

// NewZerologWriter returns a writer for zerolog.New.
func NewZerologWriter(target *oslog.Logger) *ZerologWriter {
	return &ZerologWriter{target: target}
}

// Write logs p at NoneLevel, i.e. os_log's default type.
func (w *ZerologWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (w *ZerologWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	l := ZerologLevelToCore(level)
	w.target.LogLevel(l, zerologMessage(l, p))
	return len(p), nil
}

func zerologMessage(level core.Level, p []byte) string {
	p = bytes.TrimRight(p, "\n")

	var event map[string]any
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		return string(p)
	}

	msg, _ := event[zerolog.MessageFieldName].(string)
	delete(event, zerolog.MessageFieldName)
	delete(event, zerolog.LevelFieldName)
	delete(event, zerolog.TimestampFieldName)
	for k, v := range event {
		if n, ok := v.(json.Number); ok {
			event[k] = n.String()
		}
	}
	return renderMessage(level, msg, event)
}

// ZerologLevelToCore converts a zerolog.Level. Fatal and Panic become
// Critical; NoLevel becomes None.
func ZerologLevelToCore(level zerolog.Level) core.Level {
	switch level {
	case zerolog.TraceLevel:
		return core.TraceLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.InfoLevel:
		return core.InfoLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return core.CriticalLevel
	default:
		return core.NoneLevel
	}
}
