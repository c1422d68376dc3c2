// Package handler manages the destination a logger writes to: the
// target writer, the output format, the header attribute set and the
// init/terminate lifecycle around self-delimiting formats.
//
// A Destination writes synchronously: no queue, no background
// goroutine, no rotation. Every record is staged by the formatter and
// emitted with a single Write call.
//
// Two ways to set up a Destination exist. SetWriter simply re-targets
// output to a caller-owned writer, which the destination will never
// close; if no writer is ever supplied, the first write lazily
// defaults to standard error. Init and InitFile additionally write the
// format's document preamble (the XML declaration and <log> root, the
// JSON array opener, or the CSV header row), and Terminate writes the
// matching postamble, closing the file only when InitFile opened it.
//
// InitFile rejects the combination of append mode with a
// self-delimiting format (XML, JSON) before touching the file, because
// appending records after a closed document wrapper would corrupt it.
package handler
