package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Inspect and validate inventory sorting rules"
	MsgVersionShort     = "Print version information"
	MsgVersionLong      = "Print detailed version information including commit hash and build date"
	MsgCheckShort       = "Load the rules file and report problems"
	MsgRulesShort       = "List sorting rules in evaluation order"
	MsgLocksShort       = "Show which slots are locked"
	MsgAutoReplaceShort = "Check whether an item may be auto-replaced"
	MsgDumpShort        = "Write the loaded configuration as TOML or YAML"
	MsgWatchShort       = "Reload the rules file whenever it changes"
	MsgCompletionShort  = "Generate shell completion script"

	// Flags
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSettings = "Settings file (default is $XDG_CONFIG_HOME/invtweaks/settings.toml)"
	MsgFlagRules    = "Rules file to load, overrides the settings"
	MsgFlagTree     = "Category tree XML file, overrides the settings"
	MsgFlagFormat   = "Output format: auto, term or text"
	MsgFlagStrict   = "Fail when a keyword cannot be resolved"
	MsgFlagDump     = "Dump format: toml or yaml"

	// Version output
	MsgVersionFormat = "invtweaks version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Watch output
	MsgWatching     = "Watching %s (Ctrl+C to stop)\n"
	MsgInitialError = "Initial load failed: %v\n"

	// Error messages
	MsgErrSettings     = "failed to load settings: %w"
	MsgErrTree         = "failed to load category tree: %w"
	MsgErrRules        = "failed to load rules: %w"
	MsgErrFormat       = "invalid --format: %w"
	MsgErrItemID       = "invalid item id %q"
	MsgErrDamage       = "invalid damage value %q"
	MsgErrUnknownWords = "%d keyword(s) could not be resolved"
	MsgErrNoCommand    = "no command specified"
)

const MsgRootLong = `invtweaks reads an inventory rules file, resolves every keyword against
a category tree and reports the resulting sorting rules, locked slots and
auto-replace sequence.

Rules file lines look like:

  a1 locked          lock slot a1
  b ore              prefer row b for ore
  3r tools           column 3, top to bottom
  a1-c3v food        rectangle a1..c3, column by column
  autoreplace tools  allow auto-replacing tools
  disablemiddleclick
  debug`
