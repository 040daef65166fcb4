package config

import (
	"github.com/arthur-debert/invtweaks/pkg/inventory"
	"github.com/arthur-debert/invtweaks/pkg/rules"
	"github.com/arthur-debert/invtweaks/pkg/tree"
	"github.com/rs/zerolog"
)

// Directive keywords
const (
	AutoReplaceKeyword = "autoreplace"
	AutoReplaceNothing = "nothing"
	DisableMiddleClick = "disablemiddleclick"
	DebugKeyword       = "debug"
)

const (
	defaultAutoReplace = true
	defaultMiddleClick = true
	textSource         = "<text>"
	unlocked           = 0
)

// Verbosity is the logging verbosity requested by the configuration
type Verbosity int

const (
	// VerbosityNormal logs warnings and errors only
	VerbosityNormal Verbosity = iota
	// VerbosityVerbose also logs informational messages
	VerbosityVerbose
)

func (v Verbosity) String() string {
	if v == VerbosityVerbose {
		return "verbose"
	}
	return "normal"
}

// LogLevel maps the verbosity to a zerolog level
func (v Verbosity) LogLevel() zerolog.Level {
	if v == VerbosityVerbose {
		return zerolog.InfoLevel
	}
	return zerolog.WarnLevel
}

// Config is a loaded configuration. It is never modified after Load returns,
// and every accessor returns a copy.
type Config struct {
	loadID string
	source string
	tree   tree.CategoryTree

	rules           []rules.Rule
	lockedSlots     []int
	autoReplace     []string
	invalidKeywords []string
	middleClick     bool
	verbosity       Verbosity
}

// newEmpty returns the configuration that is in effect before any load and
// after a failed one
func newEmpty(t tree.CategoryTree, inv inventory.Inventory) *Config {
	return &Config{
		tree:        t,
		lockedSlots: make([]int, max(inv.Capacity(), 0)),
		middleClick: defaultMiddleClick,
		verbosity:   VerbosityNormal,
	}
}

// LoadID identifies the load that produced this snapshot
func (c *Config) LoadID() string { return c.loadID }

// Source is the file the snapshot was read from, or "<text>"
func (c *Config) Source() string { return c.source }

// Rules returns the sorting rules, highest priority first
func (c *Config) Rules() []rules.Rule {
	return append([]rules.Rule(nil), c.rules...)
}

// LockedSlots returns the lock priority of every slot, 0 meaning unlocked
func (c *Config) LockedSlots() []int {
	return append([]int(nil), c.lockedSlots...)
}

// IsLocked reports whether the slot carries a lock
func (c *Config) IsLocked(slot int) bool {
	return slot >= 0 && slot < len(c.lockedSlots) && c.lockedSlots[slot] != unlocked
}

// AutoReplaceKeywords returns the auto-replace sequence in declaration order
func (c *Config) AutoReplaceKeywords() []string {
	return append([]string(nil), c.autoReplace...)
}

// InvalidKeywords returns rule keywords the category tree did not know
func (c *Config) InvalidKeywords() []string {
	return append([]string(nil), c.invalidKeywords...)
}

// IsMiddleClickEnabled reports whether middle-click sorting is on
func (c *Config) IsMiddleClickEnabled() bool { return c.middleClick }

// Verbosity returns the requested logging verbosity
func (c *Config) Verbosity() Verbosity { return c.verbosity }

// CanBeAutoReplaced reports whether a depleted item may be restocked. The
// auto-replace sequence is walked in order: "nothing" rejects, a matching
// keyword accepts. Items nothing matched are accepted.
func (c *Config) CanBeAutoReplaced(id tree.ItemID) bool {
	items := c.tree.Items(id)
	for _, keyword := range c.autoReplace {
		if keyword == AutoReplaceNothing {
			return false
		}
		if c.tree.Matches(items, keyword) {
			return true
		}
	}
	return defaultAutoReplace
}
