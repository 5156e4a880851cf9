// FILE: chanlog/src/internal/sink/sink.go
package sink

// Appender represents an output destination for formatted log lines.
// The file-backed implementation opens and closes per call; a buffered
// or rotating implementation can be swapped in without touching the
// filter or formatter.
type Appender interface {
	// Append writes the line plus a newline terminator to the file at
	// path, creating the file if absent.
	Append(path string, line []byte) error
}
