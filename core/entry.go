package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Entry represents a single pending log message with its metadata.
// Entries are produced at the call site, consumed entirely within one
// dispatch, and never stored.
type Entry struct {
	Time    time.Time
	Level   Level
	File    string
	Line    int
	Func    string
	Message string
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File     string
	Line     int
	Function string
	Defined  bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.File = ""
	e.Func = ""
	e.Message = ""
	entryPool.Put(e)
}

// GetCaller retrieves caller information. The file name is reduced to
// its base so headers stay readable regardless of build paths.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:     filepath.Base(file),
		Line:     line,
		Function: funcName,
		Defined:  true,
	}
}
