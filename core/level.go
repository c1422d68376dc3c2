package core

// Level represents the priority of a log message. Levels are ordered:
// a message passes the destination filter when its level compares
// greater than or equal to the configured minimum.
type Level int8

const (
	// TraceLevel marks control-flow checkpoints
	TraceLevel Level = iota
	// DebugLevel for messages that help the programmer while developing
	DebugLevel
	// VerboseLevel for detailed information messages
	VerboseLevel
	// InfoLevel for general information messages (default)
	InfoLevel
	// NoticeLevel for information that requires attention
	NoticeLevel
	// WarningLevel indicates an unexpected state of the system
	WarningLevel
	// ErrorLevel denotes a severe unexpected behavior
	ErrorLevel
	// FatalLevel marks a non-recoverable error; the caller is expected
	// to exit afterwards
	FatalLevel
)

// Filter aliases. These are only meaningful as arguments to the filter
// setter, not as message levels.
const (
	// FilterAll lets every message through
	FilterAll = TraceLevel
	// FilterNone is the most quiet setting; only fatal messages pass
	FilterNone = FatalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case VerboseLevel:
		return "VERBOSE"
	case InfoLevel:
		return "INFO"
	case NoticeLevel:
		return "NOTICE"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}
