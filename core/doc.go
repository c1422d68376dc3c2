// Package core defines the shared types used across the clog library.
//
// It provides the Level type for severity filtering, the Attribute
// bit-set that controls header decoration (time, file, function,
// color), the Format enum selecting the output serialization, and the
// Entry type that represents a single pending log message.
//
// Entry objects are pooled via sync.Pool to keep the dispatch path
// allocation-free. Callers get an Entry with GetEntry and must return
// it with PutEntry once the destination has consumed it.
//
// The package also hosts the message classifiers. IsBlank identifies
// messages made of blank characters only, which the dispatcher writes
// verbatim without a header, to allow clearer output and a hierarchy
// in the display. HasLeadingNewline identifies messages that request a
// blank line before their header.
package core
