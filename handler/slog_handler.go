package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/unifiedlog/core"
)

// slog has no trace or critical level; these sit one step below Debug
// and one step above Error.
const (
	SlogLevelTrace    slog.Level = slog.LevelDebug - 4
	SlogLevelCritical slog.Level = slog.LevelError + 4
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Handler, so a *slog.Logger can write to os_log or any other handler.
type SlogHandler struct {
	handler  Handler
	level    core.Level
	category string
	attrs    []core.Field
	group    string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// WithCategory returns a copy that stamps category on every entry.
func (s *SlogHandler) WithCategory(category string) *SlogHandler {
	c := *s
	c.category = category
	return &c
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l := SlogLevelToCore(level)
	if l < s.level {
		return false
	}
	if le, ok := s.handler.(LevelEnabler); ok {
		return le.Enabled(l)
	}
	return true
}

// Handle converts a slog.Record to a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = SlogLevelToCore(record.Level)
	entry.Category = s.category
	entry.Message = record.Message

	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}

	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = appendSlogAttr(entry.Fields, s.group, a)
		return true
	})

	err := s.handler.Handle(entry)
	if CanRecycle(s.handler) {
		core.PutEntry(entry)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendSlogAttr(newAttrs, s.group, a)
	}
	c := *s
	c.attrs = newAttrs
	return &c
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	c := *s
	if s.group != "" {
		c.group = s.group + "." + name
	} else {
		c.group = name
	}
	return &c
}

// SlogLevelToCore converts a slog.Level to a core.Level.
func SlogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= SlogLevelCritical:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr converts a slog.Attr to fields, prefixing the key with
// group. Group attrs are flattened into dotted keys.
func appendSlogAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.Uint64Type, Int64: int64(a.Value.Uint64())})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendSlogAttr(fields, key, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
