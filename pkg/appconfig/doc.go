// Package appconfig loads the settings of the invtweaks tool itself: where
// the rules file and category tree live, the inventory capacity and how the
// watcher and the terminal output behave.
//
// Settings are layered with koanf: embedded defaults, then the user's
// settings file (TOML or YAML), then INVTWEAKS_* environment variables, then
// explicit overrides such as command-line flags. Nested keys are written
// with a double underscore in the environment (INVTWEAKS_WATCH__DEBOUNCE).
package appconfig
