// Package export renders a loaded configuration as TOML or YAML, for
// inspection and for handing the parsed rule set to other tools.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/invtweaks/pkg/config"
	"github.com/arthur-debert/invtweaks/pkg/errors"
	"github.com/arthur-debert/invtweaks/pkg/inventory"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an export format
type Format string

// Supported formats
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown export format: %s", s)
	}
}

// Document is the exported form of a configuration
type Document struct {
	Source          string   `toml:"source" yaml:"source"`
	LoadID          string   `toml:"load_id" yaml:"load_id"`
	MiddleClick     bool     `toml:"middle_click" yaml:"middle_click"`
	Verbosity       string   `toml:"verbosity" yaml:"verbosity"`
	AutoReplace     []string `toml:"auto_replace" yaml:"auto_replace"`
	InvalidKeywords []string `toml:"invalid_keywords,omitempty" yaml:"invalid_keywords,omitempty"`
	Locks           []Lock   `toml:"locks,omitempty" yaml:"locks,omitempty"`
	Rules           []Rule   `toml:"rules,omitempty" yaml:"rules,omitempty"`
}

// Rule is an exported sorting rule
type Rule struct {
	Pattern  string   `toml:"pattern" yaml:"pattern"`
	Keyword  string   `toml:"keyword" yaml:"keyword"`
	Type     string   `toml:"type" yaml:"type"`
	Priority int      `toml:"priority" yaml:"priority"`
	Slots    []string `toml:"slots" yaml:"slots,flow"`
}

// Lock is an exported locked slot
type Lock struct {
	Slot     string `toml:"slot" yaml:"slot"`
	Priority int    `toml:"priority" yaml:"priority"`
}

// FromConfig builds the exported document of cfg
func FromConfig(cfg *config.Config) Document {
	doc := Document{
		Source:          cfg.Source(),
		LoadID:          cfg.LoadID(),
		MiddleClick:     cfg.IsMiddleClickEnabled(),
		Verbosity:       cfg.Verbosity().String(),
		AutoReplace:     cfg.AutoReplaceKeywords(),
		InvalidKeywords: cfg.InvalidKeywords(),
	}

	for slot, priority := range cfg.LockedSlots() {
		if priority != 0 {
			doc.Locks = append(doc.Locks, Lock{Slot: inventory.SlotName(slot), Priority: priority})
		}
	}

	for _, r := range cfg.Rules() {
		positions := r.Positions()
		slots := make([]string, len(positions))
		for i, p := range positions {
			slots[i] = inventory.SlotName(p)
		}
		doc.Rules = append(doc.Rules, Rule{
			Pattern:  r.Pattern(),
			Keyword:  r.Keyword(),
			Type:     r.Type().String(),
			Priority: r.Priority(),
			Slots:    slots,
		})
	}
	return doc
}

// Write encodes cfg to w in the given format
func Write(w io.Writer, cfg *config.Config, format Format) error {
	doc := FromConfig(cfg)

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return errors.Wrap(err, errors.ErrExport, "failed to encode TOML")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, errors.ErrExport, "failed to encode YAML")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.ErrExport, "failed to flush YAML")
		}
	default:
		return errors.New(errors.ErrExport, fmt.Sprintf("unsupported format %q", format))
	}
	return nil
}
