// FILE: chanlog/src/internal/sink/file.go
package sink

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/log"
)

// FileAppender appends lines to flat text files. Every call performs an
// independent open/append/close: no persistent handle, no buffering, no
// locking. The per-call open trades throughput for freedom from handle
// lifetime and rotation bookkeeping; concurrent writers to the same
// file are a documented limitation, not something this appender fixes.
type FileAppender struct {
	logger *log.Logger

	// Statistics
	totalWrites  atomic.Uint64
	failedWrites atomic.Uint64
	lastWrite    atomic.Value // time.Time
}

// Creates a new file appender
func NewFileAppender(logger *log.Logger) *FileAppender {
	fa := &FileAppender{
		logger: logger,
	}
	fa.lastWrite.Store(time.Time{})
	return fa
}

// Append opens the file in append mode (creating it if missing), writes
// the line plus a newline terminator, and closes the file. An I/O
// failure is fatal for this single line: it propagates with no retry
// and no fallback destination.
func (fa *FileAppender) Append(path string, line []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fa.failedWrites.Add(1)
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	_, writeErr := f.Write(append(line, '\n'))
	closeErr := f.Close()

	if writeErr != nil {
		fa.failedWrites.Add(1)
		return fmt.Errorf("failed to write log file %s: %w", path, writeErr)
	}
	if closeErr != nil {
		fa.failedWrites.Add(1)
		return fmt.Errorf("failed to close log file %s: %w", path, closeErr)
	}

	fa.totalWrites.Add(1)
	fa.lastWrite.Store(time.Now())
	return nil
}

// GetStats returns appender statistics
func (fa *FileAppender) GetStats() map[string]any {
	lastWrite, _ := fa.lastWrite.Load().(time.Time)

	return map[string]any{
		"type":          "file",
		"total_writes":  fa.totalWrites.Load(),
		"failed_writes": fa.failedWrites.Load(),
		"last_write":    lastWrite,
	}
}
