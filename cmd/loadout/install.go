package loadout

import (
	"fmt"
	"time"

	"github.com/arthur-debert/loadout/pkg/config"
	"github.com/arthur-debert/loadout/pkg/display"
	"github.com/arthur-debert/loadout/pkg/installer"
	"github.com/arthur-debert/loadout/pkg/logging"
	"github.com/spf13/cobra"
)

func (a *app) newInstallCmd() *cobra.Command {
	var (
		dryRun  bool
		strict  bool
		timeout time.Duration
		format  string
	)

	cmd := &cobra.Command{
		Use:       "install [categories...]",
		Short:     MsgInstallShort,
		Long:      MsgInstallLong,
		Example:   MsgInstallExample,
		GroupID:   "core",
		ValidArgs: config.Categories,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.install")

			outFormat, err := display.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := a.loadConfig(cmd, map[string]string{
				"strict":  "install.strict",
				"timeout": "install.timeout",
			})
			if err != nil {
				return err
			}

			categories, err := installer.Categories(cfg, args, *a.opts.Platform)
			if err != nil {
				return err
			}

			logger.Info().
				Bool("dryRun", dryRun).
				Bool("strict", cfg.Install.Strict).
				Dur("timeout", cfg.Install.Timeout).
				Strs("categories", args).
				Msg("Starting install")

			inst := installer.New(a.newRunner(cmd, cfg), a.printer(cmd), installer.Options{DryRun: dryRun})
			report, runErr := inst.Run(cmd.Context(), categories)

			fmt.Fprintln(cmd.OutOrStdout())
			if err := display.NewRenderer(cmd.OutOrStdout(), outFormat, a.color).Report(report); err != nil {
				return err
			}

			if runErr != nil {
				return &exitError{code: ExitIncomplete, err: runErr}
			}
			if cfg.Install.Strict && !report.Clean() {
				return &exitError{
					code:   ExitIncomplete,
					err:    fmt.Errorf(MsgErrIncomplete, report.Failed(), report.Skipped()),
					silent: true,
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, MsgFlagTimeout)
	cmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagFormat)

	return cmd
}
