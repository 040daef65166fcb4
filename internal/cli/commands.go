package cli

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/arthur-debert/invtweaks/internal/version"
	"github.com/arthur-debert/invtweaks/pkg/appconfig"
	"github.com/arthur-debert/invtweaks/pkg/cobrax/topics"
	"github.com/arthur-debert/invtweaks/pkg/config"
	"github.com/arthur-debert/invtweaks/pkg/export"
	"github.com/arthur-debert/invtweaks/pkg/logging"
	"github.com/arthur-debert/invtweaks/pkg/tree"
	"github.com/arthur-debert/invtweaks/pkg/ui"
	"github.com/arthur-debert/invtweaks/pkg/watch"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// rootOptions holds the global flags
type rootOptions struct {
	verbosity    int
	settingsFile string
	rulesFile    string
	treeFile     string
	format       string
}

// session is everything a command needs to inspect a rules file
type session struct {
	settings *appconfig.Settings
	tree     *tree.Tree
	store    *config.Store
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "invtweaks",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.settingsFile, "settings", "", MsgFlagSettings)
	rootCmd.PersistentFlags().StringVar(&opts.rulesFile, "rules", "", MsgFlagRules)
	rootCmd.PersistentFlags().StringVar(&opts.treeFile, "tree", "", MsgFlagTree)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)

	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newLocksCmd(opts))
	rootCmd.AddCommand(newAutoReplaceCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds the help topics. Markdown is only styled on a terminal.
func installTopics(rootCmd *cobra.Command) {
	fsys, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	if _, err := topics.Install(rootCmd, fsys, topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}

// loadSettings applies the path flags on top of the settings file
func (o *rootOptions) loadSettings() (*appconfig.Settings, error) {
	overrides := map[string]interface{}{}
	if o.rulesFile != "" {
		overrides["rules_file"] = o.rulesFile
	}
	if o.treeFile != "" {
		overrides["tree_file"] = o.treeFile
	}
	if o.format != "" {
		overrides["output.format"] = o.format
	}

	settings, err := appconfig.Load(o.settingsFile, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSettings, err)
	}
	return settings, nil
}

// openSession loads settings and the category tree. The rules file is only
// loaded when loadRules is set.
func (o *rootOptions) openSession(loadRules bool) (*session, error) {
	settings, err := o.loadSettings()
	if err != nil {
		return nil, err
	}

	t, err := tree.LoadFile(settings.TreeFile)
	if err != nil {
		return nil, fmt.Errorf(MsgErrTree, err)
	}

	s := &session{
		settings: settings,
		tree:     t,
		store:    config.NewStore(t, settings.Inventory()),
	}
	if loadRules {
		if err := s.store.LoadFile(settings.RulesFile); err != nil {
			return nil, fmt.Errorf(MsgErrRules, err)
		}
	}
	return s, nil
}

// renderer builds a renderer for the command's output stream
func (s *session) renderer(cmd *cobra.Command) (*ui.Renderer, error) {
	format, err := ui.ParseFormat(s.settings.Output.Format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	return ui.NewRenderer(cmd.OutOrStdout(), format), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Example: `  # Check the default rules file
  invtweaks check

  # Check another file and fail on unknown keywords
  invtweaks check --rules ./invtweaks.txt --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(true)
			if err != nil {
				return err
			}
			r, err := s.renderer(cmd)
			if err != nil {
				return err
			}

			cfg := s.store.Current()
			r.Summary(cfg)
			r.Diagnostics(cfg)

			if invalid := len(cfg.InvalidKeywords()); strict && invalid > 0 {
				return fmt.Errorf(MsgErrUnknownWords, invalid)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(true)
			if err != nil {
				return err
			}
			r, err := s.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Rules(s.store.Current())
		},
	}
}

func newLocksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locks",
		Short: MsgLocksShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(true)
			if err != nil {
				return err
			}
			r, err := s.renderer(cmd)
			if err != nil {
				return err
			}
			r.Locks(s.store.Current())
			return nil
		},
	}
}

func newAutoReplaceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "autoreplace <id> [damage]",
		Short: MsgAutoReplaceShort,
		Example: `  # Any damage value
  invtweaks autoreplace 274

  # A specific damage value
  invtweaks autoreplace 35 14`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args)
			if err != nil {
				return err
			}

			s, err := opts.openSession(true)
			if err != nil {
				return err
			}
			r, err := s.renderer(cmd)
			if err != nil {
				return err
			}
			r.AutoReplace(s.store.Current(), id)
			return nil
		},
	}
}

func parseItemID(args []string) (tree.ItemID, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return tree.ItemID{}, fmt.Errorf(MsgErrItemID, args[0])
	}
	damage := tree.AnyDamage
	if len(args) > 1 {
		damage, err = strconv.Atoi(args[1])
		if err != nil || damage < 0 {
			return tree.ItemID{}, fmt.Errorf(MsgErrDamage, args[1])
		}
	}
	return tree.ItemID{ID: id, Damage: damage}, nil
}

func newDumpCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: MsgDumpShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			s, err := opts.openSession(true)
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), s.store.Current(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "toml", MsgFlagDump)
	return cmd
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: MsgWatchShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(false)
			if err != nil {
				return err
			}
			r, err := s.renderer(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := s.store.LoadFile(s.settings.RulesFile); err != nil {
				_, _ = fmt.Fprintf(out, MsgInitialError, err)
			} else {
				r.Summary(s.store.Current())
				r.Diagnostics(s.store.Current())
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, s, r, func() { _, _ = fmt.Fprintf(out, MsgWatching, s.settings.RulesFile) })
		},
	}
}

// runWatch reports every reload until ctx is cancelled
func runWatch(ctx context.Context, s *session, r *ui.Renderer, started func()) error {
	w, err := watch.New(s.settings.RulesFile, s.settings.Watch.Debounce, s.store)
	if err != nil {
		return err
	}
	started()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for ev := range w.Reloads() {
		r.Reload(ev, s.store.Current())
	}
	return <-done
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(invtweaks completion bash)

Zsh:
  $ invtweaks completion zsh > "${fpath[1]}/_invtweaks"

Fish:
  $ invtweaks completion fish | source

PowerShell:
  PS> invtweaks completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
