package config

import (
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/invtweaks/pkg/inventory"
	"github.com/arthur-debert/invtweaks/pkg/logging"
	"github.com/arthur-debert/invtweaks/pkg/rules"
	"github.com/arthur-debert/invtweaks/pkg/tree"
)

// State is the lifecycle state of a Store
type State int32

// Store states
const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Store holds the configuration in effect. Loads run one at a time; readers
// always see a complete snapshot, either the one before a load or the one
// after it.
type Store struct {
	tree tree.CategoryTree
	inv  inventory.Inventory

	loadMu  sync.Mutex
	current atomic.Pointer[Config]
	state   atomic.Int32
	lastErr atomic.Pointer[error]
}

// NewStore creates a store holding the default, empty configuration
func NewStore(t tree.CategoryTree, inv inventory.Inventory) *Store {
	s := &Store{tree: t, inv: inv}
	s.current.Store(newEmpty(t, inv))
	return s
}

// Load replaces the configuration with one parsed from text
func (s *Store) Load(text string) error {
	return s.swap(func() (*Config, error) {
		return Load(text, s.tree, s.inv)
	})
}

// LoadFile replaces the configuration with one read from path
func (s *Store) LoadFile(path string) error {
	return s.swap(func() (*Config, error) {
		return LoadFile(path, s.tree, s.inv)
	})
}

// swap runs a load under the store lock. A failed load installs the empty
// configuration rather than keeping the previous one.
func (s *Store) swap(load func() (*Config, error)) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	logger := logging.GetLogger("config.store")
	s.state.Store(int32(StateLoading))

	cfg, err := load()
	if err != nil {
		s.current.Store(newEmpty(s.tree, s.inv))
		logging.ApplyLevel(VerbosityNormal.LogLevel())
		s.lastErr.Store(&err)
		s.state.Store(int32(StateFailed))
		logger.Error().Err(err).Msg("Configuration load failed")
		return err
	}

	s.current.Store(cfg)
	s.lastErr.Store(nil)
	s.state.Store(int32(StateReady))
	logging.ApplyLevel(cfg.Verbosity().LogLevel())
	logger.Debug().Str("loadID", cfg.LoadID()).Msg("Configuration installed")
	return nil
}

// Current returns the snapshot in effect
func (s *Store) Current() *Config {
	return s.current.Load()
}

// State returns the lifecycle state
func (s *Store) State() State {
	return State(s.state.Load())
}

// Err returns the error of the last load, nil after a successful one
func (s *Store) Err() error {
	if err := s.lastErr.Load(); err != nil {
		return *err
	}
	return nil
}

// Rules returns the current sorting rules
func (s *Store) Rules() []rules.Rule { return s.Current().Rules() }

// LockedSlots returns the current lock table
func (s *Store) LockedSlots() []int { return s.Current().LockedSlots() }

// IsMiddleClickEnabled reports the current middle-click setting
func (s *Store) IsMiddleClickEnabled() bool { return s.Current().IsMiddleClickEnabled() }

// Verbosity returns the current verbosity
func (s *Store) Verbosity() Verbosity { return s.Current().Verbosity() }

// CanBeAutoReplaced checks id against the current auto-replace sequence
func (s *Store) CanBeAutoReplaced(id tree.ItemID) bool { return s.Current().CanBeAutoReplaced(id) }

// InvalidKeywords returns the current diagnostics
func (s *Store) InvalidKeywords() []string { return s.Current().InvalidKeywords() }
