// FILE: chanlog/src/internal/filter/filter_test.go
package filter

import (
	"testing"

	"chanlog/src/internal/config"
	"chanlog/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestFilter_ShouldLog(t *testing.T) {
	defaults := config.DefaultOptions()

	testCases := []struct {
		name     string
		botNick  string
		opts     config.Options
		event    core.Event
		expected bool
	}{
		{
			name:     "PlainMessagePasses",
			botNick:  "logbot",
			opts:     defaults,
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "Foobar!"},
			expected: true,
		},
		{
			name:     "BotAuthoredSuppressed",
			botNick:  "logbot",
			opts:     defaults,
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "logbot", Body: "hi"},
			expected: false,
		},
		{
			name:     "BotAddressedSuppressed",
			botNick:  "logbot",
			opts:     defaults,
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "help", Address: "logbot"},
			expected: false,
		},
		{
			name:    "BotAuthoredLoggedWhenIgnoreBotOff",
			botNick: "logbot",
			opts: config.Options{
				LogPath:      ".",
				TimestampFmt: "%H:%M:%S",
				IgnoreBot:    false,
			},
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "logbot", Body: "hi"},
			expected: true,
		},
		{
			name:    "PatternMatchSuppressed",
			botNick: "logbot",
			opts: config.Options{
				IgnorePattern: "^!",
				LogPath:       ".",
				TimestampFmt:  "%H:%M:%S",
				IgnoreBot:     true,
			},
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "!roll 2d6"},
			expected: false,
		},
		{
			name:    "PatternSearchNotFullMatch",
			botNick: "logbot",
			opts: config.Options{
				IgnorePattern: "secret",
				LogPath:       ".",
				TimestampFmt:  "%H:%M:%S",
				IgnoreBot:     true,
			},
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "the secret word"},
			expected: false,
		},
		{
			name:    "PatternNoMatchPasses",
			botNick: "logbot",
			opts: config.Options{
				IgnorePattern: "^!",
				LogPath:       ".",
				TimestampFmt:  "%H:%M:%S",
				IgnoreBot:     true,
			},
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "hello !world"},
			expected: true,
		},
		{
			name:     "JoinDefaultPasses",
			botNick:  "logbot",
			opts:     defaults,
			event:    core.Event{Kind: core.EventJoin, Channel: "#botzone", Who: "bob"},
			expected: true,
		},
		{
			name:    "JoinSuppressedWhenIgnoreJoinPart",
			botNick: "logbot",
			opts: config.Options{
				LogPath:        ".",
				TimestampFmt:   "%H:%M:%S",
				IgnoreBot:      true,
				IgnoreJoinPart: true,
			},
			event:    core.Event{Kind: core.EventJoin, Channel: "#botzone", Who: "bob"},
			expected: false,
		},
		{
			name:    "PartSuppressedWhenIgnoreJoinPart",
			botNick: "logbot",
			opts: config.Options{
				LogPath:        ".",
				TimestampFmt:   "%H:%M:%S",
				IgnoreBot:      true,
				IgnoreJoinPart: true,
			},
			event:    core.Event{Kind: core.EventPart, Channel: "#botzone", Who: "bob"},
			expected: false,
		},
		{
			name:    "JoinIgnoresPatternAndBotRules",
			botNick: "logbot",
			opts: config.Options{
				IgnorePattern: ".*",
				LogPath:       ".",
				TimestampFmt:  "%H:%M:%S",
				IgnoreBot:     true,
			},
			event:    core.Event{Kind: core.EventJoin, Channel: "#botzone", Who: "logbot"},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := New(tc.botNick, newTestLogger())
			got, err := f.ShouldLog(tc.event, tc.opts)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	f := New("logbot", newTestLogger())

	opts := config.DefaultOptions()
	opts.IgnorePattern = "["

	ev := core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "hi"}

	// The malformed pattern fails the event it was consulted for
	ok, err := f.ShouldLog(ev, opts)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "invalid ignore pattern")

	// A later event with a fixed pattern recovers
	opts.IgnorePattern = "^!"
	ok, err = f.ShouldLog(ev, opts)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestFilter_PatternRecompiledOnChange(t *testing.T) {
	f := New("logbot", newTestLogger())

	ev := core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "!cmd"}

	opts := config.DefaultOptions()
	opts.IgnorePattern = "^!"
	ok, err := f.ShouldLog(ev, opts)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Changing the configured pattern takes effect on the next event
	opts.IgnorePattern = "^\\?"
	ok, err = f.ShouldLog(ev, opts)
	assert.NoError(t, err)
	assert.True(t, ok)
}
