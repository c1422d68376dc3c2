// Package logger is the public API of clog. Most users only need to
// import this package.
//
// Messages go to standard error by default; the destination, the
// filter level, the header attributes and the output format can all be
// changed at run time:
//
//	logger.SetFilterLevel(logger.InfoLevel)
//	logger.SetOutputAttrs(logger.AttrTime | logger.AttrColored)
//	logger.Warning("disk at %d%%", 91)
//
// Each leveled call captures its own file, line and function, which
// the AttrFile and AttrFunc attributes render in the header. A message
// made only of blank characters is written verbatim with no header,
// and a message starting with a line feed is preceded by one blank
// line. Both allow clearer output and a hierarchy in the display.
//
// For the XML, CSV and JSON formats, Init or InitFile must bracket the
// destination's lifetime with Term so the document preamble and
// postamble are written:
//
//	if err := logger.InitFile("app.log", handler.Truncate,
//		logger.FormatJSON, logger.AttrVerbose); err != nil {
//		// ...
//	}
//	defer logger.Term()
//
// The library performs no synchronization of its own. In concurrent
// programs, install a lock hook and the dispatcher will bracket every
// record with it:
//
//	logger.SetLock(&sync.Mutex{})
//
// Custom instances are built with the Builder and can replace the
// package default via SetDefault:
//
//	log := logger.NewBuilder().
//	    WithWriter(os.Stdout).
//	    WithFilter(logger.DebugLevel).
//	    WithAttributes(logger.AttrVerbose).
//	    Build()
package logger
