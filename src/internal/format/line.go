// FILE: chanlog/src/internal/format/line.go
package format

import (
	"fmt"
	"time"

	"chanlog/src/internal/core"

	"github.com/lixenwraith/log"
)

// LineFormatter produces the classic channel-log line:
//
//	[<channel> <timestamp>] <<who>> <body>
//	[<channel> <timestamp>] JOIN: <who>
//	[<channel> <timestamp>] PART: <who>
//
// The timestamp is the wall-clock instant the caller passes in, not a
// time carried on the event. Under delayed dispatch the logged time is
// the dispatch time; that behavior is kept for compatibility.
type LineFormatter struct {
	logger *log.Logger
}

// Creates a new line formatter
func NewLineFormatter(logger *log.Logger) *LineFormatter {
	return &LineFormatter{
		logger: logger,
	}
}

// Formats the event as a single log line without a trailing newline
func (f *LineFormatter) Format(ev core.Event, ts time.Time, timestampFmt string) ([]byte, error) {
	var text string
	switch ev.Kind {
	case core.EventMessage:
		text = fmt.Sprintf("<%s> %s", ev.Who, ev.Body)
	case core.EventJoin:
		text = "JOIN: " + ev.Who
	case core.EventPart:
		text = "PART: " + ev.Who
	default:
		return nil, fmt.Errorf("unknown event kind: %d", ev.Kind)
	}

	stamp := ts.Format(Layout(timestampFmt))
	line := fmt.Sprintf("[%s %s] %s", ev.Channel, stamp, text)
	return []byte(line), nil
}

// Returns the formatter name
func (f *LineFormatter) Name() string {
	return "line"
}
