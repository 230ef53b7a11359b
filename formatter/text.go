package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/unifiedlog/core"
)

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

var levelBrackets = [...]string{
	core.TraceLevel:    " [TRACE] ",
	core.DebugLevel:    " [DEBUG] ",
	core.InfoLevel:     " [INFO] ",
	core.WarnLevel:     " [WARN] ",
	core.ErrorLevel:    " [ERROR] ",
	core.CriticalLevel: " [CRITICAL] ",
	core.NoneLevel:     " [NONE] ",
}

func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if f.IncludeCategory && entry.Category != "" {
		buf.WriteString(entry.Category)
		buf.WriteString(": ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)
	appendFields(buf, entry.Fields)
	buf.WriteByte('\n')
}
