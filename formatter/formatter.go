package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/moonstroke/clog/core"
)

// Formatter serializes log entries for one output format. A destination
// holds exactly one Formatter for its lifetime: Preamble is written
// once at initialization, FormatTo once per record, and Postamble once
// at termination.
type Formatter interface {
	// Preamble writes the format's document opener, if any
	Preamble(w io.Writer) error

	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error

	// Postamble writes the format's document closer, if any
	Postamble(w io.Writer) error

	// Reconfigure swaps the formatter's configuration in place,
	// preserving any cross-record state (the JSON record separator).
	// Destinations call it when attributes or the timestamp layout
	// change mid-document.
	Reconfigure(cfg Config)
}

// Config holds common formatter configuration
type Config struct {
	// Attributes selects the header fields to render
	Attributes core.Attribute
	// TimestampFormat specifies the time format (empty for HH:MM:SS)
	TimestampFormat string
}

// DefaultTimestampFormat is the wall-clock layout used when the config
// leaves TimestampFormat empty.
const DefaultTimestampFormat = "15:04:05"

// Reconfigure replaces the configuration. Every renderer embeds Config,
// so this one method satisfies the interface for all of them without
// touching renderer-local state.
func (c *Config) Reconfigure(cfg Config) {
	*c = cfg
}

func (c *Config) timestampFormat() string {
	if c.TimestampFormat == "" {
		return DefaultTimestampFormat
	}
	return c.TimestampFormat
}

// ForFormat returns the Formatter for the given output format. The
// switch is exhaustive over core.Format; unknown values fall back to
// text so a destination never ends up without a renderer.
func ForFormat(f core.Format, cfg Config) Formatter {
	switch f {
	case core.FormatXML:
		return NewXMLFormatter(cfg)
	case core.FormatCSV:
		return NewCSVFormatter(cfg)
	case core.FormatJSON:
		return NewJSONFormatter(cfg)
	case core.FormatText:
		return NewTextFormatter(cfg)
	default:
		return NewTextFormatter(cfg)
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
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

// appendTime writes the entry time in the configured layout
func appendTime(buf *bytes.Buffer, t time.Time, layout string) {
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), layout))
}
