// FILE: chanlog/src/internal/plugin/plugin.go
package plugin

import (
	"fmt"
	"sync/atomic"
	"time"

	"chanlog/src/internal/config"
	"chanlog/src/internal/core"
	"chanlog/src/internal/filter"
	"chanlog/src/internal/format"
	"chanlog/src/internal/sink"

	"github.com/lixenwraith/log"
)

// HelpText is surfaced to users asking what the plugin does.
const HelpText = "Logs all activities in a channel."

// Plugin appends formatted channel activity to per-channel, per-day log
// files. The host dispatches events to Seen, ChanJoin and ChanPart one
// at a time; each handler runs filter -> format -> resolve -> append to
// completion before returning. The plugin holds no per-event state
// beyond the option store and the files on disk.
type Plugin struct {
	store     config.OptionStore
	filter    *filter.Filter
	formatter format.Formatter
	appender  sink.Appender
	clock     func() time.Time
	logger    *log.Logger

	// Statistics
	totalLogged atomic.Uint64
}

// New creates the plugin for the given bot nickname. Options are read
// through store on every event, so changes take effect immediately.
func New(botNick string, store config.OptionStore, logger *log.Logger) *Plugin {
	return &Plugin{
		store:     store,
		filter:    filter.New(botNick, logger),
		formatter: format.NewLineFormatter(logger),
		appender:  sink.NewFileAppender(logger),
		clock:     time.Now,
		logger:    logger,
	}
}

// Seen handles a chat message event.
func (p *Plugin) Seen(ev core.Event) error {
	ev.Kind = core.EventMessage
	return p.handle(ev)
}

// ChanJoin handles a channel join event.
func (p *Plugin) ChanJoin(ev core.Event) error {
	ev.Kind = core.EventJoin
	return p.handle(ev)
}

// ChanPart handles a channel part event.
func (p *Plugin) ChanPart(ev core.Event) error {
	ev.Kind = core.EventPart
	return p.handle(ev)
}

func (p *Plugin) handle(ev core.Event) error {
	opts, err := p.store.Options()
	if err != nil {
		return fmt.Errorf("failed to read options: %w", err)
	}

	ok, err := p.filter.ShouldLog(ev, opts)
	if err != nil {
		return err
	}
	if !ok {
		// Policy suppression, a designed no-op
		return nil
	}

	// One wall-clock instant feeds both the timestamp and the filename
	// date, so a line never straddles a midnight rollover.
	now := p.clock()

	line, err := p.formatter.Format(ev, now, opts.TimestampFmt)
	if err != nil {
		return err
	}

	path, err := sink.Resolve(opts.LogPath, ev.Channel, now)
	if err != nil {
		return err
	}

	if err := p.appender.Append(path, line); err != nil {
		return err
	}

	p.totalLogged.Add(1)
	return nil
}

// GetStats returns plugin statistics
func (p *Plugin) GetStats() map[string]any {
	return map[string]any{
		"total_logged": p.totalLogged.Load(),
		"filter":       p.filter.GetStats(),
	}
}
