package loadout

import (
	"io"

	"github.com/arthur-debert/loadout/internal/version"
	"github.com/arthur-debert/loadout/pkg/cobrax/topics"
	"github.com/arthur-debert/loadout/pkg/config"
	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/installer"
	"github.com/arthur-debert/loadout/pkg/logging"
	"github.com/arthur-debert/loadout/pkg/runner"
	"github.com/arthur-debert/loadout/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Options replaces the collaborators a command talks to. Zero values use the
// real system.
type Options struct {
	// NewRunner builds the command runner for a run.
	NewRunner func(runner.Options) runner.Runner
	// Platform decides the Homebrew fallback location.
	Platform *installer.Platform
}

// app holds the state shared by all subcommands of one invocation.
type app struct {
	opts Options

	verbosity  int
	configFile string
	overrides  []string
	noColor    bool
	color      bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with injected collaborators.
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	initTemplateFormatting()

	if opts.NewRunner == nil {
		opts.NewRunner = func(o runner.Options) runner.Runner { return runner.New(o) }
	}
	if opts.Platform == nil {
		p := installer.CurrentPlatform()
		opts.Platform = &p
	}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:     "loadout",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			a.setupColor(cmd.OutOrStdout())
			log.Debug().Str("command", cmd.Name()).Bool("color", a.color).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringArrayVar(&a.overrides, "set", nil, MsgFlagSet)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newInstallCmd())
	rootCmd.AddCommand(a.newExportCmd())
	rootCmd.AddCommand(a.newPluginsCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	_, err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   &topicRenderer{app: a},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setupColor decides once per invocation whether output is styled.
func (a *app) setupColor(out io.Writer) {
	a.color = false
	if f, ok := terminalFile(out); ok {
		a.color = style.ColorEnabled(f, a.noColor)
	}
	style.ApplyColor(a.color)
}

// printer writes progress for cmd.
func (a *app) printer(cmd *cobra.Command) *style.Printer {
	return style.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.color)
}

// loadConfig reads the configuration. --set pairs override the file and the
// environment; flags of cmd listed in flagKeys are applied on top of those.
func (a *app) loadConfig(cmd *cobra.Command, flagKeys map[string]string) (*config.Config, error) {
	overrides, err := config.ParseOverrides(a.overrides)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.LoadOptions{
		File:      a.configFile,
		Overrides: overrides,
		Flags:     cmd.Flags(),
		FlagKeys:  flagKeys,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("source", cfg.Source).Msg("Configuration loaded")
	return cfg, nil
}

// newRunner builds the runner for commands that call package managers.
func (a *app) newRunner(cmd *cobra.Command, cfg *config.Config) runner.Runner {
	return a.opts.NewRunner(runner.Options{
		Stream:  a.verbosity > 0,
		Timeout: cfg.Install.Timeout,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
}

// topicRenderer picks glamour's style once color has been decided.
type topicRenderer struct {
	app *app
}

func (r *topicRenderer) Render(content string, format string) string {
	return topics.NewGlamourRenderer(r.app.color).Render(content, format)
}
