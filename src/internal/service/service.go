// FILE: chanlog/src/internal/service/service.go
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"chanlog/src/internal/core"
	"chanlog/src/internal/plugin"
	"chanlog/src/internal/source"

	"github.com/lixenwraith/log"
)

// Service wires an event source to the plugin. A single dispatch
// goroutine hands events to the handlers one at a time, in arrival
// order; each handler runs to completion before the next event is
// taken. This mirrors the host framework's cooperative dispatch, so
// the plugin never sees concurrent invocations.
type Service struct {
	plugin *plugin.Plugin
	source source.Source
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Statistics
	startTime        time.Time
	totalDispatched  atomic.Uint64
	totalHandlerErrs atomic.Uint64
}

// New creates a service dispatching events from src to p.
func New(ctx context.Context, p *plugin.Plugin, src source.Source, logger *log.Logger) *Service {
	serviceCtx, cancel := context.WithCancel(ctx)
	return &Service{
		plugin:    p,
		source:    src,
		logger:    logger,
		ctx:       serviceCtx,
		cancel:    cancel,
		startTime: time.Now(),
	}
}

// Start subscribes to the source and begins dispatching.
func (s *Service) Start() error {
	events := s.source.Subscribe()

	if err := s.source.Start(); err != nil {
		return err
	}

	s.wg.Add(1)
	go s.dispatchLoop(events)

	s.logger.Info("msg", "Service started", "component", "service")
	return nil
}

// Shutdown stops the source and waits for the dispatch loop to drain.
func (s *Service) Shutdown() {
	s.logger.Info("msg", "Service shutdown initiated", "component", "service")

	s.source.Stop()
	s.cancel()
	s.wg.Wait()

	s.logger.Info("msg", "Service shutdown complete",
		"component", "service",
		"dispatched", s.totalDispatched.Load(),
		"handler_errors", s.totalHandlerErrs.Load())
}

func (s *Service) dispatchLoop(events <-chan core.Event) {
	defer s.wg.Done()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.dispatch(ev)
		case <-s.ctx.Done():
			// Drain events already queued before exiting so a shutdown
			// does not drop lines the source has handed over.
			for {
				select {
				case ev, ok := <-events:
					if !ok {
						return
					}
					s.dispatch(ev)
				default:
					return
				}
			}
		}
	}
}

// dispatch routes one event to its handler. A handler error is fatal
// for that event's logging attempt only; the loop carries on.
func (s *Service) dispatch(ev core.Event) {
	s.totalDispatched.Add(1)

	var err error
	switch ev.Kind {
	case core.EventMessage:
		err = s.plugin.Seen(ev)
	case core.EventJoin:
		err = s.plugin.ChanJoin(ev)
	case core.EventPart:
		err = s.plugin.ChanPart(ev)
	}

	if err != nil {
		s.totalHandlerErrs.Add(1)
		s.logger.Error("msg", "Event logging failed",
			"component", "service",
			"kind", ev.Kind.String(),
			"channel", ev.Channel,
			"error", err)
	}
}

// GetStats returns service statistics
func (s *Service) GetStats() map[string]any {
	return map[string]any{
		"start_time":     s.startTime,
		"dispatched":     s.totalDispatched.Load(),
		"handler_errors": s.totalHandlerErrs.Load(),
		"source":         s.source.GetStats(),
		"plugin":         s.plugin.GetStats(),
	}
}
