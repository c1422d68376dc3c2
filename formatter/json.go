package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/moonstroke/clog/core"
)

// JSONFormatter renders log entries as objects in one JSON document of
// the shape {"log": [ ... ]}. A comma is written before every record
// except the first; the first-record flag is reset by Preamble, so a
// destination using this format must be initialized in truncate mode.
type JSONFormatter struct {
	Config

	wroteRecord bool
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	return &JSONFormatter{Config: cfg}
}

// Preamble writes the document opener and resets the record separator
// state
func (f *JSONFormatter) Preamble(w io.Writer) error {
	f.wroteRecord = false
	_, err := io.WriteString(w, "{\n\t\"log\": [")
	return err
}

// FormatTo formats an entry as a JSON object and writes it to the
// writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// Postamble closes the array and the document. No trailing newline is
// written after the closing brace.
func (f *JSONFormatter) Postamble(w io.Writer) error {
	_, err := io.WriteString(w, "\n\t]\n}")
	return err
}

// formatToBuffer builds the record object manually, without
// encoding/json, so the dispatch path stays allocation-free
func (f *JSONFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	attrs := f.Attributes

	if f.wroteRecord {
		buf.WriteByte(',')
	}
	f.wroteRecord = true

	buf.WriteString("\n\t\t{")

	if attrs.Has(core.AttrTime) {
		buf.WriteString(`"time": "`)
		appendTime(buf, entry.Time, f.timestampFormat())
		buf.WriteString(`", `)
	}
	if attrs.Has(core.AttrFile) {
		buf.WriteString(`"file": "`)
		appendJSONString(buf, entry.File)
		buf.WriteString(`", "line": `)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Line), 10))
		buf.WriteString(`, `)
	}
	if attrs.Has(core.AttrFunc) {
		buf.WriteString(`"func": "`)
		appendJSONString(buf, entry.Func)
		buf.WriteString(`", `)
	}

	buf.WriteString(`"level": "`)
	buf.WriteString(entry.Level.String())
	buf.WriteString(`", "msg": "`)
	appendJSONString(buf, entry.Message)
	buf.WriteString(`"}`)
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
