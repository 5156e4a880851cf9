// FILE: chanlog/src/internal/service/service_test.go
package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chanlog/src/internal/config"
	"chanlog/src/internal/core"
	"chanlog/src/internal/plugin"
	"chanlog/src/internal/source"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

// stubSource feeds a fixed slice of events and closes.
type stubSource struct {
	events []core.Event
	ch     chan core.Event
}

func (s *stubSource) Subscribe() <-chan core.Event {
	s.ch = make(chan core.Event, len(s.events))
	return s.ch
}

// Start queues every event before returning; the channel is buffered
// for the full slice, so the dispatch loop sees all of them even when
// Shutdown follows immediately.
func (s *stubSource) Start() error {
	for _, ev := range s.events {
		s.ch <- ev
	}
	close(s.ch)
	return nil
}

func (s *stubSource) Stop() {}

func (s *stubSource) GetStats() source.SourceStats {
	return source.SourceStats{Type: "stub", TotalEvents: uint64(len(s.events))}
}

func TestService_DispatchesInOrder(t *testing.T) {
	dir := t.TempDir()
	store := config.NewMemoryStore()
	require.NoError(t, store.SetOption(config.KeyLogPath, dir))

	p := plugin.New("logbot", store, newTestLogger())

	src := &stubSource{events: []core.Event{
		{Kind: core.EventJoin, Channel: "#botzone", Who: "bob"},
		{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "hello"},
		{Kind: core.EventPart, Channel: "#botzone", Who: "bob"},
	}}

	svc := New(context.Background(), p, src, newTestLogger())
	require.NoError(t, svc.Start())

	// The stub has already queued and closed its channel; shutdown
	// drains the dispatch loop.
	svc.Shutdown()

	name := "botzone_" + time.Now().Format("20060102") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	lines := string(data)
	join := "JOIN: bob"
	msg := "<bob> hello"
	part := "PART: bob"
	assert.Contains(t, lines, join)
	assert.Contains(t, lines, msg)
	assert.Contains(t, lines, part)

	// Events were handled one at a time, in arrival order
	assert.Less(t, strings.Index(lines, join), strings.Index(lines, msg))
	assert.Less(t, strings.Index(lines, msg), strings.Index(lines, part))
}

func TestService_HandlerErrorDoesNotStopDispatch(t *testing.T) {
	dir := t.TempDir()
	store := config.NewMemoryStore()
	require.NoError(t, store.SetOption(config.KeyLogPath, dir))

	p := plugin.New("logbot", store, newTestLogger())

	src := &stubSource{events: []core.Event{
		// Unsafe channel name, resolver rejects it
		{Kind: core.EventMessage, Channel: "#../evil", Who: "bob", Body: "x"},
		{Kind: core.EventMessage, Channel: "#botzone", Who: "bob", Body: "still here"},
	}}

	svc := New(context.Background(), p, src, newTestLogger())
	require.NoError(t, svc.Start())
	svc.Shutdown()

	name := "botzone_" + time.Now().Format("20060102") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<bob> still here")

	stats := svc.GetStats()
	assert.Equal(t, uint64(2), stats["dispatched"])
	assert.Equal(t, uint64(1), stats["handler_errors"])
}
