package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/moonstroke/clog/core"
)

// TextFormatter renders log entries as human-readable text lines. The
// header layout is fixed: color open, time, file:line, func, then the
// level name padded to seven columns and two separating dashes.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// pre-padded level names to avoid per-call fmt padding
var paddedNames = [...]string{
	core.TraceLevel:   "TRACE  ",
	core.DebugLevel:   "DEBUG  ",
	core.VerboseLevel: "VERBOSE",
	core.InfoLevel:    "INFO   ",
	core.NoticeLevel:  "NOTICE ",
	core.WarningLevel: "WARNING",
	core.ErrorLevel:   "ERROR  ",
	core.FatalLevel:   "FATAL  ",
}

// colorCodes holds the ANSI SGR parameter for each level
var colorCodes = [...]string{
	core.TraceLevel:   "90",   // dim
	core.DebugLevel:   "34",   // blue
	core.VerboseLevel: "36",   // cyan
	core.InfoLevel:    "32",   // green
	core.NoticeLevel:  "33",   // yellow
	core.WarningLevel: "35",   // magenta
	core.ErrorLevel:   "31",   // red
	core.FatalLevel:   "1;31", // bold red
}

// Preamble writes nothing; text destinations have no document wrapper
func (f *TextFormatter) Preamble(w io.Writer) error {
	return nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// Postamble writes nothing
func (f *TextFormatter) Postamble(w io.Writer) error {
	return nil
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	attrs := f.Attributes

	if attrs.Has(core.AttrColored) {
		buf.WriteString("\x1b[")
		buf.WriteString(colorCode(entry.Level))
		buf.WriteByte('m')
	}
	if attrs.Has(core.AttrTime) {
		buf.WriteByte('[')
		appendTime(buf, entry.Time, f.timestampFormat())
		buf.WriteString("] ")
	}
	if attrs.Has(core.AttrFile) {
		buf.WriteString(entry.File)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Line), 10))
		if attrs.Has(core.AttrFunc) {
			buf.WriteByte(',')
		}
		buf.WriteByte(' ')
	}
	if attrs.Has(core.AttrFunc) {
		buf.WriteString(entry.Func)
		buf.WriteString("() ")
	}
	buf.WriteString(paddedName(entry.Level))
	buf.WriteString(" -- ")
	if attrs.Has(core.AttrColored) {
		buf.WriteString("\x1b[0m")
	}

	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}

func paddedName(lvl core.Level) string {
	if 0 <= int(lvl) && int(lvl) < len(paddedNames) {
		return paddedNames[lvl]
	}
	return "UNKNOWN"
}

func colorCode(lvl core.Level) string {
	if 0 <= int(lvl) && int(lvl) < len(colorCodes) {
		return colorCodes[lvl]
	}
	return "0"
}
