// FILE: chanlog/src/internal/config/store.go
package config

import (
	"sync"
)

// MemoryStore is an in-process OptionStore. It stands in for the host
// framework's store in tests and when no store file is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	opts Options
}

// NewMemoryStore creates a store seeded with the documented defaults.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWith(DefaultOptions())
}

// NewMemoryStoreWith creates a store seeded with the given values.
func NewMemoryStoreWith(opts Options) *MemoryStore {
	return &MemoryStore{
		opts: opts,
	}
}

// Options returns the current values. The copy is taken under the lock
// so a concurrent SetOption never yields a torn snapshot.
func (s *MemoryStore) Options() (Options, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts, nil
}

func (s *MemoryStore) SetOption(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.set(key, value)
}
