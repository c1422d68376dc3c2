package core

// Attribute is a bit-set of independent header decoration flags.
// Flags combine with the bitwise OR operator.
type Attribute uint8

const (
	// AttrMinimal renders plain output with only the level name
	AttrMinimal Attribute = 0x0
	// AttrTime renders the logging time in the header
	AttrTime Attribute = 0x1
	// AttrFile renders the source file name and line number
	AttrFile Attribute = 0x2
	// AttrFunc renders the name of the calling function
	AttrFunc Attribute = 0x4
	// AttrColored wraps the header in ANSI color escape sequences keyed
	// by level. Only the header is colored, not the message itself.
	AttrColored Attribute = 0x10

	// AttrVerbose renders time, file, line and function info
	AttrVerbose = AttrTime | AttrFile | AttrFunc
)

// Has reports whether every flag in the argument is set
func (a Attribute) Has(flag Attribute) bool {
	return a&flag == flag
}
