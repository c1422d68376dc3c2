package logger

import (
	"io"
	"sync"

	"github.com/moonstroke/clog/core"
	"github.com/moonstroke/clog/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Zero configuration: every level passes, minimal attributes,
	// text format, lazy standard error sink.
	defaultLogger = NewBuilder().Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger.
//
// The leveled functions capture the caller themselves before
// forwarding, so file and line always point at the user's call site.

// callerSkip for the package-level leveled functions: GetCaller's
// runtime.Caller frame, the function itself, then the user.
const pkgCallerSkip = 2

func logDefault(level core.Level, format string, args []interface{}) {
	l := Default()
	if level < l.filter {
		return
	}
	caller := core.GetCaller(pkgCallerSkip + 1) // +1 for this helper
	l.Log(caller.File, caller.Line, caller.Function, level, format, args...)
}

// Trace logs a control-flow marker message using the default logger
func Trace(format string, args ...interface{}) {
	logDefault(core.TraceLevel, format, args)
}

// Debug logs a debugging message using the default logger
func Debug(format string, args ...interface{}) {
	logDefault(core.DebugLevel, format, args)
}

// Verbose logs a detailed information message using the default logger
func Verbose(format string, args ...interface{}) {
	logDefault(core.VerboseLevel, format, args)
}

// Info logs a basic information message using the default logger
func Info(format string, args ...interface{}) {
	logDefault(core.InfoLevel, format, args)
}

// Notice logs an information message that requires attention using the
// default logger
func Notice(format string, args ...interface{}) {
	logDefault(core.NoticeLevel, format, args)
}

// Warning logs a warning message using the default logger
func Warning(format string, args ...interface{}) {
	logDefault(core.WarningLevel, format, args)
}

// Error logs an error message using the default logger
func Error(format string, args ...interface{}) {
	logDefault(core.ErrorLevel, format, args)
}

// Fatal logs a fatal error message using the default logger. It does
// not exit the process.
func Fatal(format string, args ...interface{}) {
	logDefault(core.FatalLevel, format, args)
}

// Log logs a message with explicit call-site information using the
// default logger
func Log(file string, line int, fn string, level core.Level, format string, args ...interface{}) {
	Default().Log(file, line, fn, level, format, args...)
}

// SetWriter re-targets the default logger's output
func SetWriter(w io.Writer) {
	Default().SetWriter(w)
}

// Writer returns the default logger's destination writer
func Writer() io.Writer {
	return Default().Writer()
}

// SetFilterLevel sets the default logger's filter level
func SetFilterLevel(level core.Level) {
	Default().SetFilterLevel(level)
}

// FilterLevel returns the default logger's filter level
func FilterLevel() core.Level {
	return Default().FilterLevel()
}

// FilterName returns the display name of the default logger's filter
// level
func FilterName() string {
	return Default().FilterName()
}

// SetOutputAttrs sets the default logger's header attributes
func SetOutputAttrs(attrs core.Attribute) {
	Default().SetOutputAttrs(attrs)
}

// OutputAttrs returns the default logger's header attributes
func OutputAttrs() core.Attribute {
	return Default().OutputAttrs()
}

// SetOutputFormat changes the default logger's output format
func SetOutputFormat(format core.Format) error {
	return Default().SetOutputFormat(format)
}

// OutputFormat returns the default logger's output format
func OutputFormat() core.Format {
	return Default().OutputFormat()
}

// SetLock installs the default logger's lock hook
func SetLock(lock sync.Locker) {
	Default().SetLock(lock)
}

// Init directs the default logger to standard error and writes the
// format's preamble
func Init(format core.Format, attrs core.Attribute) error {
	return Default().Init(format, attrs)
}

// InitFile opens the named file for the default logger and writes the
// format's preamble
func InitFile(path string, mode handler.Mode, format core.Format, attrs core.Attribute) error {
	return Default().InitFile(path, mode, format, attrs)
}

// Term writes the postamble and closes the default logger's file if
// Init opened it
func Term() error {
	return Default().Term()
}
