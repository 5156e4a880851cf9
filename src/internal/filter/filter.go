// FILE: chanlog/src/internal/filter/filter.go
package filter

import (
	"fmt"
	"regexp"
	"sync"
	"sync/atomic"

	"chanlog/src/internal/config"
	"chanlog/src/internal/core"

	"github.com/lixenwraith/log"
)

// Filter decides per event whether it is eligible for logging.
// The decision is a pure function of (event, options, bot nickname);
// the only state is the compiled-pattern cache and stats counters.
type Filter struct {
	botNick string
	logger  *log.Logger

	// Cache of the last compiled ignore pattern. Options are re-read on
	// every event, so the pattern is recompiled whenever its source
	// string changes.
	mu         sync.Mutex
	patternSrc string
	pattern    *regexp.Regexp

	// Statistics
	totalProcessed  atomic.Uint64
	totalSuppressed atomic.Uint64
}

// New creates a filter for the given bot nickname
func New(botNick string, logger *log.Logger) *Filter {
	return &Filter{
		botNick: botNick,
		logger:  logger,
	}
}

// ShouldLog reports whether the event survives the suppression rules.
// A malformed ignore pattern fails the event it was consulted for; it
// is never validated at configuration-set time.
func (f *Filter) ShouldLog(ev core.Event, opts config.Options) (bool, error) {
	f.totalProcessed.Add(1)

	switch ev.Kind {
	case core.EventJoin, core.EventPart:
		if opts.IgnoreJoinPart {
			f.suppress(ev, "joinpart")
			return false, nil
		}
		return true, nil

	case core.EventMessage:
		if opts.IgnoreBot && (ev.Who == f.botNick || ev.Address == f.botNick) {
			f.suppress(ev, "bot")
			return false, nil
		}

		if opts.IgnorePattern != "" {
			re, err := f.compiled(opts.IgnorePattern)
			if err != nil {
				return false, fmt.Errorf("invalid ignore pattern %q: %w", opts.IgnorePattern, err)
			}
			// Search, not full match
			if re.MatchString(ev.Body) {
				f.suppress(ev, "pattern")
				return false, nil
			}
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown event kind: %d", ev.Kind)
	}
}

// compiled returns the regexp for src, recompiling only when the
// configured string changed since the last event.
func (f *Filter) compiled(src string) (*regexp.Regexp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pattern != nil && f.patternSrc == src {
		return f.pattern, nil
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}

	f.patternSrc = src
	f.pattern = re

	f.logger.Debug("msg", "Ignore pattern compiled",
		"component", "filter",
		"pattern", src)
	return re, nil
}

func (f *Filter) suppress(ev core.Event, rule string) {
	f.totalSuppressed.Add(1)
	f.logger.Debug("msg", "Event suppressed",
		"component", "filter",
		"kind", ev.Kind.String(),
		"channel", ev.Channel,
		"rule", rule)
}

// GetStats returns filter statistics
func (f *Filter) GetStats() map[string]any {
	return map[string]any{
		"total_processed":  f.totalProcessed.Load(),
		"total_suppressed": f.totalSuppressed.Load(),
	}
}
