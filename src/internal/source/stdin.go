// FILE: chanlog/src/internal/source/stdin.go
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"chanlog/src/internal/core"

	"github.com/lixenwraith/log"
)

// StdinSource reads channel events from standard input, one per line:
//
//	msg <channel> <who> <text...>
//	join <channel> <who>
//	part <channel> <who>
//
// It is the local stand-in for the bot framework's dispatch: a replay
// harness, not a network protocol.
type StdinSource struct {
	reader         io.Reader
	subscribers    []chan core.Event
	done           chan struct{}
	totalEvents    atomic.Uint64
	malformedLines atomic.Uint64
	startTime      time.Time
	lastEventTime  atomic.Value // time.Time
	logger         *log.Logger
}

func NewStdinSource(logger *log.Logger) *StdinSource {
	s := &StdinSource{
		reader:      os.Stdin,
		subscribers: make([]chan core.Event, 0),
		done:        make(chan struct{}),
		logger:      logger,
		startTime:   time.Now(),
	}
	s.lastEventTime.Store(time.Time{})
	return s
}

func (s *StdinSource) Subscribe() <-chan core.Event {
	ch := make(chan core.Event, 64)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *StdinSource) Start() error {
	go s.readLoop()
	s.logger.Info("msg", "Stdin source started", "component", "stdin_source")
	return nil
}

func (s *StdinSource) Stop() {
	close(s.done)
	s.logger.Info("msg", "Stdin source stopped", "component", "stdin_source")
}

func (s *StdinSource) GetStats() SourceStats {
	lastEvent, _ := s.lastEventTime.Load().(time.Time)

	return SourceStats{
		Type:           "stdin",
		TotalEvents:    s.totalEvents.Load(),
		MalformedLines: s.malformedLines.Load(),
		StartTime:      s.startTime,
		LastEventTime:  lastEvent,
	}
}

func (s *StdinSource) readLoop() {
	defer func() {
		for _, ch := range s.subscribers {
			close(ch)
		}
	}()

	scanner := bufio.NewScanner(s.reader)
	for scanner.Scan() {
		select {
		case <-s.done:
			return
		default:
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			ev, err := ParseLine(line)
			if err != nil {
				s.malformedLines.Add(1)
				s.logger.Warn("msg", "Skipping malformed event line",
					"component", "stdin_source",
					"error", err)
				continue
			}

			s.publish(ev)
		}
	}

	if err := scanner.Err(); err != nil {
		s.logger.Error("msg", "Scanner error reading stdin",
			"component", "stdin_source",
			"error", err)
	}
}

func (s *StdinSource) publish(ev core.Event) {
	s.totalEvents.Add(1)
	s.lastEventTime.Store(time.Now())

	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		case <-s.done:
			return
		}
	}
}

// ParseLine parses one harness input line into an event.
func ParseLine(line string) (core.Event, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return core.Event{}, fmt.Errorf("expected '<kind> <channel> <who> [text]', got %q", line)
	}

	ev := core.Event{
		Channel: fields[1],
		Who:     fields[2],
	}

	switch fields[0] {
	case "msg":
		if len(fields) < 4 {
			return core.Event{}, fmt.Errorf("msg line without text: %q", line)
		}
		ev.Kind = core.EventMessage
		ev.Body = strings.Join(fields[3:], " ")
	case "join":
		ev.Kind = core.EventJoin
	case "part":
		ev.Kind = core.EventPart
	default:
		return core.Event{}, fmt.Errorf("unknown event kind %q", fields[0])
	}

	return ev, nil
}
