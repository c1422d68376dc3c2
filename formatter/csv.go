package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/moonstroke/clog/core"
)

// CSVFormatter renders log entries as tab-separated rows. Preamble
// writes a header row naming exactly the enabled columns, in the same
// order the record rows use: time, file, line, func, level, message.
type CSVFormatter struct {
	Config
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(cfg Config) *CSVFormatter {
	return &CSVFormatter{Config: cfg}
}

// Preamble writes the header row for the enabled columns
func (f *CSVFormatter) Preamble(w io.Writer) error {
	buf := getBuffer()

	attrs := f.Attributes
	if attrs.Has(core.AttrTime) {
		buf.WriteString("time\t")
	}
	if attrs.Has(core.AttrFile) {
		buf.WriteString("file\tline\t")
	}
	if attrs.Has(core.AttrFunc) {
		buf.WriteString("func\t")
	}
	buf.WriteString("level\tmessage\n")

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatTo formats an entry as one row and writes it to the writer
func (f *CSVFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// Postamble writes nothing; a table needs no closing row
func (f *CSVFormatter) Postamble(w io.Writer) error {
	return nil
}

func (f *CSVFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	attrs := f.Attributes

	if attrs.Has(core.AttrTime) {
		appendTime(buf, entry.Time, f.timestampFormat())
		buf.WriteByte('\t')
	}
	if attrs.Has(core.AttrFile) {
		buf.WriteString(entry.File)
		buf.WriteByte('\t')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Line), 10))
		buf.WriteByte('\t')
	}
	if attrs.Has(core.AttrFunc) {
		buf.WriteString(entry.Func)
		buf.WriteByte('\t')
	}
	buf.WriteString(entry.Level.String())
	buf.WriteByte('\t')

	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
