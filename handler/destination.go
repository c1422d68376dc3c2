package handler

import (
	"fmt"
	"io"
	"os"

	"github.com/moonstroke/clog/core"
	"github.com/moonstroke/clog/formatter"
)

// Mode selects how Init opens a log file
type Mode int8

const (
	// Truncate discards any previous content of the file
	Truncate Mode = iota
	// Append keeps previous content and writes after it. Cannot be
	// combined with a self-delimiting format (XML, JSON).
	Append
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case Truncate:
		return "truncate"
	case Append:
		return "append"
	default:
		return "unknown"
	}
}

// Destination holds the sink a logger writes to together with its
// output configuration: the target writer, the output format and the
// header attribute set. The zero value is ready to use and writes
// plain text to standard error.
//
// A Destination performs no locking of its own; serialization of
// concurrent writes is the caller's responsibility (see the logger
// package's lock hook).
type Destination struct {
	writer io.Writer
	file   *os.File // non-nil only when Init opened the file itself

	format      core.Format
	attrs       core.Attribute
	tsFormat    string
	fmtr        formatter.Formatter
	initialized bool
}

// NewDestination creates a Destination with default settings: lazy
// standard error sink, text format, minimal attributes.
func NewDestination() *Destination {
	return &Destination{}
}

// SetWriter re-targets the destination to a caller-supplied writer.
// Setting nil is legal and causes a lazy default to standard error on
// the next write. Caller-supplied writers are never closed.
func (d *Destination) SetWriter(w io.Writer) {
	d.writer = w
	d.file = nil
}

// Writer returns the active sink, defaulting it to standard error if
// none was ever set. The default is persisted, not transient.
func (d *Destination) Writer() io.Writer {
	if d.writer == nil {
		d.writer = os.Stderr
	}
	return d.writer
}

// SetFormat changes the output format. Once Init has written a
// preamble the format is fixed for the destination's lifetime and
// changing it is an error; Terminate and re-Init instead.
func (d *Destination) SetFormat(f core.Format) error {
	if d.initialized {
		return fmt.Errorf("clog: cannot change format to %s: destination already initialized with %s", f, d.format)
	}
	d.format = f
	d.fmtr = nil
	return nil
}

// Format returns the active output format
func (d *Destination) Format() core.Format {
	return d.format
}

// SetAttributes changes the header attribute set. The active renderer
// is reconfigured in place, so an initialized JSON document keeps its
// record separator state. Changing attributes after Init is safe for
// text output but skews the column set of an already-written CSV
// header row.
func (d *Destination) SetAttributes(a core.Attribute) {
	d.attrs = a
	d.reconfigure()
}

// Attributes returns the active header attribute set
func (d *Destination) Attributes() core.Attribute {
	return d.attrs
}

// SetTimestampFormat overrides the wall-clock layout used in headers
func (d *Destination) SetTimestampFormat(layout string) {
	d.tsFormat = layout
	d.reconfigure()
}

// reconfigure pushes the current attribute and timestamp settings into
// the active renderer without rebuilding it, so mid-document state
// survives configuration changes. With no renderer built yet there is
// nothing to update; the next build picks the settings up.
func (d *Destination) reconfigure() {
	if d.fmtr == nil {
		return
	}
	d.fmtr.Reconfigure(formatter.Config{
		Attributes:      d.attrs,
		TimestampFormat: d.tsFormat,
	})
}

// Init directs the destination to standard error and writes the
// format's preamble.
func (d *Destination) Init(format core.Format, attrs core.Attribute) error {
	return d.initTo(os.Stderr, nil, format, attrs)
}

// InitFile opens the named file and writes the format's preamble. The
// combination of Append with a self-delimiting format (XML, JSON) is
// rejected before the file is touched, since appending would corrupt
// the document wrapper. The file is owned by the destination and
// closed by Terminate.
func (d *Destination) InitFile(path string, mode Mode, format core.Format, attrs core.Attribute) error {
	if mode == Append && format.SelfDelimiting() {
		return fmt.Errorf("clog: %s format cannot be appended to", format)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if mode == Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return err
	}

	if err := d.initTo(f, f, format, attrs); err != nil {
		f.Close()
		return err
	}
	return nil
}

func (d *Destination) initTo(w io.Writer, owned *os.File, format core.Format, attrs core.Attribute) error {
	fmtr := formatter.ForFormat(format, formatter.Config{
		Attributes:      attrs,
		TimestampFormat: d.tsFormat,
	})
	if err := fmtr.Preamble(w); err != nil {
		return err
	}

	d.writer = w
	d.file = owned
	d.format = format
	d.attrs = attrs
	d.fmtr = fmtr
	d.initialized = true
	return nil
}

// Terminate writes the format's postamble and closes the file if the
// destination opened it itself. The destination returns to its
// uninitialized state and can be re-initialized with any format.
func (d *Destination) Terminate() error {
	if !d.initialized {
		return nil
	}

	err := d.renderer().Postamble(d.Writer())

	if d.file != nil {
		if syncErr := d.file.Sync(); err == nil {
			err = syncErr
		}
		if closeErr := d.file.Close(); err == nil {
			err = closeErr
		}
		d.file = nil
		d.writer = nil
	}
	d.initialized = false
	d.fmtr = nil
	return err
}

// Write renders one entry with the active format's renderer
func (d *Destination) Write(entry *core.Entry) error {
	return d.renderer().FormatTo(entry, d.Writer())
}

// WriteRaw writes the string verbatim, bypassing the renderer. This is
// the escape hatch for blank messages, which carry no header.
func (d *Destination) WriteRaw(s string) error {
	_, err := io.WriteString(d.Writer(), s)
	return err
}

// renderer lazily builds the formatter for destinations that were
// never explicitly initialized (plain SetWriter usage)
func (d *Destination) renderer() formatter.Formatter {
	if d.fmtr == nil {
		d.fmtr = formatter.ForFormat(d.format, formatter.Config{
			Attributes:      d.attrs,
			TimestampFormat: d.tsFormat,
		})
	}
	return d.fmtr
}
