// FILE: chanlog/src/internal/config/filestore.go
package config

import (
	"fmt"
	"strings"
	"sync"

	lconfig "github.com/lixenwraith/config"
)

// storedOptions is the TOML shape of the persistent store file.
type storedOptions struct {
	Plugin Options `toml:"plugin"`
}

// FileStore is an OptionStore persisted to a TOML file. Every SetOption
// writes through and saves atomically, so values survive restarts for
// the module's lifetime.
type FileStore struct {
	path string
	mu   sync.Mutex
	lcfg *lconfig.Config
}

// keyPath maps a host-facing option key to its TOML path in the store.
func keyPath(key string) (string, error) {
	switch key {
	case KeyIgnorePattern:
		return "plugin.ignore_pattern", nil
	case KeyLogPath:
		return "plugin.log_path", nil
	case KeyTimestampFmt:
		return "plugin.timestamp_fmt", nil
	case KeyIgnoreBot:
		return "plugin.ignore_bot", nil
	case KeyIgnoreJoinPart:
		return "plugin.ignore_joinpart", nil
	default:
		return "", fmt.Errorf("unknown option key: %s", key)
	}
}

// NewFileStore opens (or creates) the store file at path and seeds the
// documented defaults for anything unset.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("cannot create option store: path is empty")
	}

	defaults := &storedOptions{Plugin: DefaultOptions()}

	lcfg, err := lconfig.NewBuilder().
		WithDefaults(defaults).
		WithFile(path).
		WithFileFormat("toml").
		Build()
	if err != nil {
		// A missing store file is not an error, defaults apply
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load option store: %w", err)
		}
	}

	s := &FileStore{
		path: path,
		lcfg: lcfg,
	}

	// Persist the seeded defaults so the store file always holds the
	// full option set.
	if err := s.lcfg.Save(path); err != nil {
		return nil, fmt.Errorf("failed to initialize option store: %w", err)
	}

	return s, nil
}

func (s *FileStore) Options() (Options, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var opts Options
	if err := s.lcfg.Scan(&opts, "plugin"); err != nil {
		return Options{}, fmt.Errorf("failed to read option store: %w", err)
	}
	return opts, nil
}

func (s *FileStore) SetOption(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := keyPath(key)
	if err != nil {
		return err
	}

	// Normalize through the typed setter first so the store never holds
	// a value of the wrong type.
	var opts Options
	if err := s.lcfg.Scan(&opts, "plugin"); err != nil {
		return fmt.Errorf("failed to read option store: %w", err)
	}
	if err := opts.set(key, value); err != nil {
		return err
	}

	if err := s.lcfg.Set(path, normalizedValue(key, opts)); err != nil {
		return fmt.Errorf("failed to update option store: %w", err)
	}

	if err := s.lcfg.Save(s.path); err != nil {
		return fmt.Errorf("failed to save option store: %w", err)
	}
	return nil
}

func normalizedValue(key string, opts Options) any {
	switch key {
	case KeyIgnorePattern:
		return opts.IgnorePattern
	case KeyLogPath:
		return opts.LogPath
	case KeyTimestampFmt:
		return opts.TimestampFmt
	case KeyIgnoreBot:
		return opts.IgnoreBot
	default:
		return opts.IgnoreJoinPart
	}
}
