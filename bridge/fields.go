package bridge

import (
	"slices"
	"time"

	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/formatter"
	"github.com/philipp01105/unifiedlog/logger"
)

var messageFormatter = formatter.NewMessageFormatter(formatter.Config{})

// fieldFromValue picks the narrowest core.Field type for v.
func fieldFromValue(key string, v any) core.Field {
	switch val := v.(type) {
	case string:
		return logger.String(key, val)
	case error:
		return core.Field{Key: key, Type: core.ErrorType, Str: val.Error()}
	case int:
		return logger.Int(key, val)
	case int32:
		return logger.Int64(key, int64(val))
	case int64:
		return logger.Int64(key, val)
	case uint:
		return logger.Uint64(key, uint64(val))
	case uint64:
		return logger.Uint64(key, val)
	case float64:
		return logger.Float64(key, val)
	case bool:
		return logger.Bool(key, val)
	case time.Time:
		return logger.Time(key, val)
	case time.Duration:
		return logger.Duration(key, val)
	default:
		return logger.Any(key, v)
	}
}

// renderMessage formats msg followed by the fields of m in key order.
func renderMessage(level core.Level, msg string, m map[string]any) string {
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		entry.Fields = append(entry.Fields, fieldFromValue(k, m[k]))
	}

	s := messageFormatter.Message(entry)
	core.PutEntry(entry)
	return s
}
