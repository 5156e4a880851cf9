// FILE: chanlog/src/internal/core/event.go
package core

// EventKind discriminates the variants of Event.
type EventKind int

const (
	EventMessage EventKind = iota
	EventJoin
	EventPart
)

func (k EventKind) String() string {
	switch k {
	case EventMessage:
		return "message"
	case EventJoin:
		return "join"
	case EventPart:
		return "part"
	default:
		return "unknown"
	}
}

// Event represents a single channel occurrence dispatched by the host
type Event struct {
	Kind EventKind

	// Channel name, includes the leading '#'
	Channel string

	// Sender identifier
	Who string

	// Message text, EventMessage only
	Body string

	// Set when the message is directed at the bot's nickname
	Address string
}
