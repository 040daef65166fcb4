package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for invtweaks
	EnvConfigDir = "INVTWEAKS_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for invtweaks
	EnvStateDir = "INVTWEAKS_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "invtweaks"

	// SettingsFileName is the tool settings file (TOML or YAML)
	SettingsFileName = "settings.toml"

	// SettingsYAMLFileName is the YAML variant of the settings file
	SettingsYAMLFileName = "settings.yaml"

	// RulesFileName is the default rules file
	RulesFileName = "invtweaks.txt"

	// TreeFileName is the default category tree file
	TreeFileName = "tree.xml"

	// LogFileName is the name of the log file
	LogFileName = "invtweaks.log"
)

// ConfigDir returns the directory holding settings, rules and tree files
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding the log file
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	// xdg caches the environment at init, tests override XDG_STATE_HOME later
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// SettingsPath returns the settings file path, preferring an existing YAML
// file over the default TOML name
func SettingsPath() string {
	yamlPath := filepath.Join(ConfigDir(), SettingsYAMLFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// RulesPath returns the default rules file path
func RulesPath() string {
	return filepath.Join(ConfigDir(), RulesFileName)
}

// TreePath returns the default category tree path
func TreePath() string {
	return filepath.Join(ConfigDir(), TreeFileName)
}

// LogFilePath returns the log file path
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Resolve expands ~ and makes relative paths relative to the config dir
func Resolve(path string) string {
	if path == "" {
		return ""
	}
	path = expandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ConfigDir(), path)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
