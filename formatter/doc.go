// Package formatter defines how log entries are serialized into bytes.
//
// Each output format (text, XML, CSV, JSON) has its own renderer
// behind the Formatter interface. The renderers share the upstream
// decision of which header fields to emit (the Attribute bit-set in
// Config) but differ in how fields are escaped and delimited, which
// is why they are four direct implementations rather than one
// parameterized templating engine.
//
// Preamble and Postamble frame the destination's document: the XML
// renderer writes the declaration, doctype and <log> root, the JSON
// renderer opens and closes the {"log": [...]} array, and the CSV
// renderer emits a header row naming the enabled columns. The text
// renderer writes no framing at all.
//
// All renderers stage each record in a pooled bytes.Buffer and emit it
// with a single Write call, relying on Go's Append-style functions
// (time.AppendFormat, strconv.AppendInt) to avoid per-call
// allocations. Buffers larger than 64 KiB are not returned to the pool
// to prevent a single large log line from permanently inflating memory
// usage.
package formatter
