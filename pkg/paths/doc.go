// Package paths provides centralized path handling for invtweaks.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/invtweaks (settings, rules file, category tree)
//   - State: $XDG_STATE_HOME/invtweaks (log file)
//
// # Environment Variables
//
//   - INVTWEAKS_CONFIG_DIR: Override the config directory
//   - INVTWEAKS_STATE_DIR: Override the state directory
package paths
