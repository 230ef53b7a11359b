package formatter

import (
	"bytes"
	"io"
	"strconv"
	"sync"

	"github.com/philipp01105/unifiedlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// IncludeCategory writes the entry's category, when set
	IncludeCategory bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// appendFields writes " key=value" for every field. Values containing
// spaces, quotes or control characters are quoted.
func appendFields(buf *bytes.Buffer, fields []core.Field) {
	for _, field := range fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		start := buf.Len()
		buf.Write(field.AppendValue(buf.AvailableBuffer()))
		if needsQuoting(buf.Bytes()[start:]) {
			v := string(buf.Bytes()[start:])
			buf.Truncate(start)
			buf.Write(strconv.AppendQuote(buf.AvailableBuffer(), v))
		}
	}
}

func needsQuoting(v []byte) bool {
	for _, c := range v {
		if c <= ' ' || c == '"' || c == '=' || c == 0x7f {
			return true
		}
	}
	return false
}
