package logger

import (
	"strings"

	"github.com/moonstroke/clog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel   = core.TraceLevel
	DebugLevel   = core.DebugLevel
	VerboseLevel = core.VerboseLevel
	InfoLevel    = core.InfoLevel
	NoticeLevel  = core.NoticeLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel

	FilterAll  = core.FilterAll
	FilterNone = core.FilterNone
)

// Attribute re-exports
type Attribute = core.Attribute

const (
	AttrMinimal = core.AttrMinimal
	AttrTime    = core.AttrTime
	AttrFile    = core.AttrFile
	AttrFunc    = core.AttrFunc
	AttrColored = core.AttrColored
	AttrVerbose = core.AttrVerbose
)

// Format re-exports
type Format = core.Format

const (
	FormatText = core.FormatText
	FormatXML  = core.FormatXML
	FormatCSV  = core.FormatCSV
	FormatJSON = core.FormatJSON
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return TraceLevel
	case "DEBUG":
		return DebugLevel
	case "VERBOSE":
		return VerboseLevel
	case "INFO":
		return InfoLevel
	case "NOTICE":
		return NoticeLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL":
		return FatalLevel
	default:
		return InfoLevel
	}
}
