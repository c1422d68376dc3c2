package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/moonstroke/clog/core"
)

// XMLFormatter renders log entries as elements of one XML document.
// The document is framed by Preamble and Postamble, so a destination
// using this format must be initialized in truncate mode.
type XMLFormatter struct {
	Config
}

// NewXMLFormatter creates a new XML formatter
func NewXMLFormatter(cfg Config) *XMLFormatter {
	return &XMLFormatter{Config: cfg}
}

const xmlPreamble = "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n" +
	"<!DOCTYPE log SYSTEM \"clog.dtd\">\n" +
	"<log>\n"

// Preamble writes the XML declaration, doctype and root opening tag
func (f *XMLFormatter) Preamble(w io.Writer) error {
	_, err := io.WriteString(w, xmlPreamble)
	return err
}

// FormatTo formats an entry as a <message> element and writes it to
// the writer
func (f *XMLFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// Postamble writes the root closing tag
func (f *XMLFormatter) Postamble(w io.Writer) error {
	_, err := io.WriteString(w, "</log>\n")
	return err
}

func (f *XMLFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	attrs := f.Attributes

	buf.WriteString("\t<message ")
	if attrs.Has(core.AttrTime) {
		buf.WriteString(`time="`)
		appendTime(buf, entry.Time, f.timestampFormat())
		buf.WriteString(`" `)
	}
	if attrs.Has(core.AttrFile) {
		buf.WriteString(`file="`)
		appendXMLEscaped(buf, entry.File)
		buf.WriteString(`" line="`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Line), 10))
		buf.WriteString(`" `)
	}
	if attrs.Has(core.AttrFunc) {
		buf.WriteString(`func="`)
		appendXMLEscaped(buf, entry.Func)
		buf.WriteString(`" `)
	}
	buf.WriteString(`level="`)
	buf.WriteString(entry.Level.String())
	buf.WriteString(`">`)

	appendXMLEscaped(buf, entry.Message)

	buf.WriteString("</message>\n")
}

// appendXMLEscaped writes s with the five XML special characters
// replaced by their entities. Runs of ordinary characters are flushed
// in one WriteString call.
func appendXMLEscaped(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '&':
			esc = "&amp;"
		case '"':
			esc = "&quot;"
		case '\'':
			esc = "&apos;"
		default:
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		buf.WriteString(esc)
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}
