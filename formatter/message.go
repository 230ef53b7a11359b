package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/unifiedlog/core"
)

// MessageFormatter renders only the message and its fields. It is meant
// for sinks such as os_log that record the timestamp, level and category
// themselves.
type MessageFormatter struct {
	Config
}

// NewMessageFormatter creates a message formatter. TimestampFormat and
// IncludeCategory are ignored.
func NewMessageFormatter(cfg Config) *MessageFormatter {
	return &MessageFormatter{Config: cfg}
}

// Format returns the rendered message without a trailing newline.
func (f *MessageFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// Message is Format returning a string.
func (f *MessageFormatter) Message(entry *core.Entry) string {
	if len(entry.Fields) == 0 && !(f.IncludeCaller && entry.Caller.Defined) {
		return entry.Message
	}

	buf := getBuffer()
	f.formatToBuffer(entry, buf)
	s := buf.String()
	putBuffer(buf)
	return s
}

func (f *MessageFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(entry.Message)
	appendFields(buf, entry.Fields)

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteString(" (")
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteByte(')')
	}
}
