// FILE: chanlog/src/internal/config/options.go
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Host-facing option keys, as exposed by the bot framework's per-plugin
// key-value store. Booleans travel as integers (0/1) in the store.
const (
	KeyIgnorePattern  = "user_ignore_pattern"
	KeyLogPath        = "user_log_path"
	KeyTimestampFmt   = "user_timestamp_fmt"
	KeyIgnoreBot      = "user_ignore_bot"
	KeyIgnoreJoinPart = "user_ignore_joinpart"
)

// Options holds the plugin's five settings with typed fields.
// A zero IgnorePattern means no pattern-based suppression.
type Options struct {
	// Regex suppressing messages whose body matches it (search, not full match)
	IgnorePattern string `toml:"ignore_pattern"`

	// Directory for log files
	LogPath string `toml:"log_path"`

	// strftime-style timestamp format for log lines
	TimestampFmt string `toml:"timestamp_fmt"`

	// Suppress messages from or addressed to the bot itself
	IgnoreBot bool `toml:"ignore_bot"`

	// Suppress join/part logging
	IgnoreJoinPart bool `toml:"ignore_joinpart"`
}

// DefaultOptions returns the documented option defaults applied at
// plugin initialization.
func DefaultOptions() Options {
	return Options{
		IgnorePattern:  "",
		LogPath:        ".",
		TimestampFmt:   "%H:%M:%S",
		IgnoreBot:      true,
		IgnoreJoinPart: false,
	}
}

// OptionStore is the host's key-value store scoped to this plugin.
// Options are read through it on every event, never cached, so a Set
// takes effect on the next event dispatched.
type OptionStore interface {
	// Options returns a snapshot of the current values with defaults
	// applied for anything unset.
	Options() (Options, error)

	// SetOption updates a single option by its host-facing key.
	SetOption(key string, value any) error
}

// set applies a host-facing key/value pair to the options.
// A malformed ignore pattern is deliberately NOT rejected here; it
// surfaces per-event from the filter.
func (o *Options) set(key string, value any) error {
	switch key {
	case KeyIgnorePattern:
		s, err := toString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		o.IgnorePattern = s
	case KeyLogPath:
		s, err := toString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		o.LogPath = s
	case KeyTimestampFmt:
		s, err := toString(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		o.TimestampFmt = s
	case KeyIgnoreBot:
		b, err := toBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		o.IgnoreBot = b
	case KeyIgnoreJoinPart:
		b, err := toBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		o.IgnoreJoinPart = b
	default:
		return fmt.Errorf("unknown option key: %s", key)
	}
	return nil
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string value, got %T", v)
	}
	return s, nil
}

// toBool accepts the boolean-as-integer store convention alongside
// native bool and string forms.
func toBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case int:
		return val != 0, nil
	case int64:
		return val != 0, nil
	case string:
		s := strings.TrimSpace(val)
		if n, err := strconv.Atoi(s); err == nil {
			return n != 0, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("expected boolean or 0/1, got %q", val)
		}
		return b, nil
	default:
		return false, fmt.Errorf("expected boolean or 0/1, got %T", v)
	}
}
