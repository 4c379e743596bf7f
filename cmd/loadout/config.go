package loadout

import (
	"fmt"

	"github.com/arthur-debert/loadout/pkg/config"
	"github.com/arthur-debert/loadout/pkg/paths"
	"github.com/spf13/cobra"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			out, err := config.Dump(cfg)
			if err != nil {
				return err
			}

			if cfg.Source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cfg.Source)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoConfigFile)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(a.newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func (a *app) newConfigInitCmd() *cobra.Command {
	var (
		force bool
		path  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := configTarget(path)
			if err != nil {
				return err
			}
			if err := config.WriteConfigFile(target, force); err != nil {
				return err
			}
			a.printer(cmd).Success(MsgConfigWritten, target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().StringVar(&path, "path", "", MsgFlagConfigPath)
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := paths.ConfigFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func configTarget(path string) (string, error) {
	if path == "" {
		return paths.ConfigFile()
	}
	return paths.ExpandHome(path)
}
