package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/moonstroke/clog/core"
	"github.com/moonstroke/clog/handler"
)

// Logger ties a destination, a filter level and an optional lock hook
// together into the logging facility. All configuration can be changed
// at run time through the setters; the setters themselves are not
// serialized by the lock hook.
type Logger struct {
	dest       *handler.Destination
	filter     core.Level
	lock       sync.Locker
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	writer     io.Writer
	filter     core.Level
	attrs      core.Attribute
	format     core.Format
	lock       sync.Locker
	callerSkip int
}

// NewBuilder creates a new logger builder. The defaults match the
// zero configuration: every level passes, minimal attributes, text
// format, lazy standard error sink, no lock hook.
func NewBuilder() *Builder {
	return &Builder{
		filter:     core.FilterAll,
		callerSkip: 3, // Default skip for GetCaller from leveled methods
	}
}

// WithWriter sets the destination writer
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithFilter sets the minimum level a message needs to be emitted
func (b *Builder) WithFilter(level core.Level) *Builder {
	b.filter = level
	return b
}

// WithAttributes sets the header attribute bit-set
func (b *Builder) WithAttributes(attrs core.Attribute) *Builder {
	b.attrs = attrs
	return b
}

// WithFormat sets the output format
func (b *Builder) WithFormat(format core.Format) *Builder {
	b.format = format
	return b
}

// WithLock installs the cooperative mutual-exclusion hook invoked
// around every dispatch
func (b *Builder) WithLock(lock sync.Locker) *Builder {
	b.lock = lock
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	dest := handler.NewDestination()
	if b.writer != nil {
		dest.SetWriter(b.writer)
	}
	dest.SetFormat(b.format) // never initialized yet, cannot fail
	dest.SetAttributes(b.attrs)

	return &Logger{
		dest:       dest,
		filter:     b.filter,
		lock:       b.lock,
		callerSkip: b.callerSkip,
	}
}

// SetWriter re-targets output to a caller-owned writer. nil is legal
// and causes a lazy default to standard error on the next write.
func (l *Logger) SetWriter(w io.Writer) {
	l.dest.SetWriter(w)
}

// Writer returns the active destination writer, defaulting it to
// standard error if none was ever set
func (l *Logger) Writer() io.Writer {
	return l.dest.Writer()
}

// SetFilterLevel sets the minimum level a message needs to be emitted
func (l *Logger) SetFilterLevel(level core.Level) {
	l.filter = level
}

// FilterLevel returns the active filter level
func (l *Logger) FilterLevel() core.Level {
	return l.filter
}

// FilterName returns the display name of the active filter level
func (l *Logger) FilterName() string {
	return l.filter.String()
}

// SetOutputAttrs sets the header attribute bit-set
func (l *Logger) SetOutputAttrs(attrs core.Attribute) {
	l.dest.SetAttributes(attrs)
}

// OutputAttrs returns the active header attribute bit-set
func (l *Logger) OutputAttrs() core.Attribute {
	return l.dest.Attributes()
}

// SetOutputFormat changes the output format. It fails once Init has
// written a preamble; Term and re-Init to switch formats.
func (l *Logger) SetOutputFormat(format core.Format) error {
	return l.dest.SetFormat(format)
}

// OutputFormat returns the active output format
func (l *Logger) OutputFormat() core.Format {
	return l.dest.Format()
}

// SetLock installs the cooperative mutual-exclusion hook invoked
// around every dispatch. Passing nil removes the hook. Without a hook,
// concurrent use of the logger from multiple goroutines is a data
// race the caller owns.
func (l *Logger) SetLock(lock sync.Locker) {
	l.lock = lock
}

// Init directs output to standard error and writes the format's
// preamble
func (l *Logger) Init(format core.Format, attrs core.Attribute) error {
	return l.dest.Init(format, attrs)
}

// InitFile opens the named file and writes the format's preamble.
// Append mode combined with XML or JSON is rejected without touching
// the file.
func (l *Logger) InitFile(path string, mode handler.Mode, format core.Format, attrs core.Attribute) error {
	return l.dest.InitFile(path, mode, format, attrs)
}

// Term writes the format's postamble and closes the log file if Init
// opened it
func (l *Logger) Term() error {
	return l.dest.Terminate()
}

// Log is the variadic core every entry point funnels into. It acquires
// the lock hook, lazily defaults the destination to standard error,
// applies the level filter and renders the message with the active
// format.
//
// Two special cases apply to the raw format string, before argument
// interpolation: a blank message (only whitespace) is written verbatim
// with no header, and a message starting with a line feed emits one
// bare newline first, with the leading character stripped.
//
// Write failures on the destination are absorbed; logging is
// best-effort by design.
func (l *Logger) Log(file string, line int, fn string, level core.Level, format string, args ...interface{}) {
	if lock := l.lock; lock != nil {
		lock.Lock()
		defer lock.Unlock()
	}

	// Resolve the lazy stderr default now so it persists even when
	// this message ends up filtered.
	l.dest.Writer()

	if level < l.filter {
		return
	}

	// Blank check runs on the raw format string: a whitespace-only
	// format never carries interpolation directives.
	if core.IsBlank(format) {
		_ = l.dest.WriteRaw(format)
		return
	}
	if core.HasLeadingNewline(format) {
		_ = l.dest.WriteRaw("\n")
		format = format[1:]
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.File = file
	entry.Line = line
	entry.Func = fn
	entry.Message = msg

	_ = l.dest.Write(entry)

	core.PutEntry(entry)
}

// emit captures the call site and forwards to Log
func (l *Logger) emit(level core.Level, format string, args []interface{}) {
	caller := core.GetCaller(l.callerSkip)
	l.Log(caller.File, caller.Line, caller.Function, level, format, args...)
}

// Trace logs a control-flow marker message
func (l *Logger) Trace(format string, args ...interface{}) {
	if core.TraceLevel < l.filter {
		return
	}
	l.emit(core.TraceLevel, format, args)
}

// Debug logs a debugging message
func (l *Logger) Debug(format string, args ...interface{}) {
	if core.DebugLevel < l.filter {
		return
	}
	l.emit(core.DebugLevel, format, args)
}

// Verbose logs a detailed information message
func (l *Logger) Verbose(format string, args ...interface{}) {
	if core.VerboseLevel < l.filter {
		return
	}
	l.emit(core.VerboseLevel, format, args)
}

// Info logs a basic information message
func (l *Logger) Info(format string, args ...interface{}) {
	if core.InfoLevel < l.filter {
		return
	}
	l.emit(core.InfoLevel, format, args)
}

// Notice logs an information message that requires attention
func (l *Logger) Notice(format string, args ...interface{}) {
	if core.NoticeLevel < l.filter {
		return
	}
	l.emit(core.NoticeLevel, format, args)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	if core.WarningLevel < l.filter {
		return
	}
	l.emit(core.WarningLevel, format, args)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	if core.ErrorLevel < l.filter {
		return
	}
	l.emit(core.ErrorLevel, format, args)
}

// Fatal logs a fatal error message. Unlike most Go loggers it does
// not exit the process; use it right before a call to os.Exit or a
// return from main.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.emit(core.FatalLevel, format, args)
}
