// FILE: chanlog/src/internal/format/line_test.go
package format

import (
	"testing"
	"time"

	"chanlog/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFormatter_Format(t *testing.T) {
	f := NewLineFormatter(newTestLogger())
	ts := time.Date(2024, 3, 17, 9, 21, 37, 0, time.Local)

	testCases := []struct {
		name     string
		event    core.Event
		fmt      string
		expected string
	}{
		{
			name:     "Message",
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "Foobar!"},
			fmt:      "%H:%M:%S",
			expected: "[#botzone 09:21:37] <bob> Foobar!",
		},
		{
			name:     "Join",
			event:    core.Event{Kind: core.EventJoin, Channel: "#botzone", Who: "bob"},
			fmt:      "%H:%M:%S",
			expected: "[#botzone 09:21:37] JOIN: bob",
		},
		{
			name:     "Part",
			event:    core.Event{Kind: core.EventPart, Channel: "#botzone", Who: "bob"},
			fmt:      "%H:%M:%S",
			expected: "[#botzone 09:21:37] PART: bob",
		},
		{
			name:     "CustomTimestampFormat",
			event:    core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "hi"},
			fmt:      "%Y-%m-%d %H:%M",
			expected: "[#botzone 2024-03-17 09:21] <bob> hi",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := f.Format(tc.event, ts, tc.fmt)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(line))
		})
	}
}

func TestLineFormatter_Deterministic(t *testing.T) {
	f := NewLineFormatter(newTestLogger())
	ts := time.Date(2024, 3, 17, 9, 21, 37, 0, time.Local)
	ev := core.Event{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "Foobar!"}

	first, err := f.Format(ev, ts, "%H:%M:%S")
	require.NoError(t, err)
	second, err := f.Format(ev, ts, "%H:%M:%S")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLineFormatter_NoTrailingNewline(t *testing.T) {
	f := NewLineFormatter(newTestLogger())
	line, err := f.Format(core.Event{Kind: core.EventJoin, Channel: "#a", Who: "x"}, time.Now(), "%H:%M:%S")
	require.NoError(t, err)
	assert.NotEqual(t, byte('\n'), line[len(line)-1])
}

func TestLayout(t *testing.T) {
	testCases := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "Default", format: "%H:%M:%S", expected: "15:04:05"},
		{name: "Date", format: "%Y%m%d", expected: "20060102"},
		{name: "Mixed", format: "%a %d %b %H:%M", expected: "Mon 02 Jan 15:04"},
		{name: "LiteralPercent", format: "%%H", expected: "%H"},
		{name: "UnknownVerb", format: "%Q", expected: "%Q"},
		{name: "TrailingPercent", format: "%H%", expected: "15%"},
		{name: "NoVerbs", format: "plain", expected: "plain"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Layout(tc.format))
		})
	}
}
