package core

// Format selects the serialization scheme applied to every record a
// destination emits. A destination keeps one format for its lifetime.
type Format int8

const (
	// FormatText is simple line-oriented text (default)
	FormatText Format = iota
	// FormatXML wraps messages in an XML document. Cannot be combined
	// with append mode, since appending would corrupt the document.
	FormatXML
	// FormatCSV emits one tab-separated row per message, preceded by a
	// header row listing the enabled columns
	FormatCSV
	// FormatJSON wraps messages in a JSON document. Cannot be combined
	// with append mode.
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatXML:
		return "xml"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// SelfDelimiting reports whether the format writes a document wrapper
// at initialization that a later append would corrupt
func (f Format) SelfDelimiting() bool {
	return f == FormatXML || f == FormatJSON
}
