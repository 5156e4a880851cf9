// FILE: chanlog/src/internal/source/source.go
package source

import (
	"time"

	"chanlog/src/internal/core"
)

// Source represents an input stream of channel events
type Source interface {
	// Returns a channel that receives events
	Subscribe() <-chan core.Event

	// Begins reading from the source
	Start() error

	// Gracefully shuts down the source
	Stop()

	// Returns source statistics
	GetStats() SourceStats
}

// Contains statistics about a source
type SourceStats struct {
	Type           string
	TotalEvents    uint64
	MalformedLines uint64
	StartTime      time.Time
	LastEventTime  time.Time
}
