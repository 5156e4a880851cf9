// FILE: chanlog/src/internal/format/format.go
package format

import (
	"fmt"
	"time"

	"chanlog/src/internal/core"

	"github.com/lixenwraith/log"
)

// Formatter defines the interface for rendering an event as a log line.
type Formatter interface {
	// Format renders the event using ts for the timestamp and the
	// strftime-style timestampFmt from the current options. The result
	// carries no trailing newline; the appender owns the terminator.
	Format(ev core.Event, ts time.Time, timestampFmt string) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// New creates a new Formatter based on the requested type.
func New(name string, logger *log.Logger) (Formatter, error) {
	// Default to the line formatter if no format specified
	if name == "" {
		name = "line"
	}

	switch name {
	case "line":
		return NewLineFormatter(logger), nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
