package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	MarginLeft int    `yaml:"marginLeft,omitempty"`
}

// StylesConfig represents the complete styles configuration
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// styleRegistry maps semantic names to lipgloss styles
var styleRegistry = map[string]lipgloss.Style{}

func init() {
	// The embedded file is validated by tests; a broken one leaves
	// everything unstyled.
	_ = LoadStylesFromData(embeddedStyles)
}

// LoadStylesFromData replaces the style registry with styles parsed from YAML
func LoadStylesFromData(data []byte) error {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			color, ok := colors[def.Foreground]
			if !ok {
				return fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
			}
			style = style.Foreground(color)
		}
		if def.MarginLeft > 0 {
			style = style.MarginLeft(def.MarginLeft)
		}
		registry[name] = style
	}

	styleRegistry = registry
	return nil
}

// GetStyle returns a style by name, or an unstyled style if not found
func GetStyle(name string) lipgloss.Style {
	if style, ok := styleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// HasStyle reports whether name is a registered style
func HasStyle(name string) bool {
	_, ok := styleRegistry[name]
	return ok
}
