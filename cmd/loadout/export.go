package loadout

import (
	"github.com/arthur-debert/loadout/pkg/config"
	"github.com/arthur-debert/loadout/pkg/exporter"
	"github.com/arthur-debert/loadout/pkg/installer"
	"github.com/arthur-debert/loadout/pkg/paths"
	"github.com/spf13/cobra"
)

func (a *app) newExportCmd() *cobra.Command {
	var (
		category string
		output   string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			command, err := cfg.Command(category)
			if err != nil {
				return err
			}

			destination := output
			if destination == "" {
				destination, err = cfg.ListPath(category)
			} else if destination != exporter.Stdout {
				destination, err = paths.ExpandHome(destination)
			}
			if err != nil {
				return err
			}

			var fallbacks []string
			if category == config.CategoryHomebrew {
				fallbacks = paths.HomebrewFallbacks(a.opts.Platform.OS, a.opts.Platform.Arch)
			}

			result, err := exporter.Export(cmd.Context(), a.newRunner(cmd, cfg), exporter.Options{
				Category:    category,
				Command:     command,
				Fallbacks:   fallbacks,
				Destination: destination,
				Out:         cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			if destination != exporter.Stdout {
				a.printer(cmd).Success(MsgExported, len(result.Entries), installer.Title(category), destination)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", config.CategoryHomebrew, MsgFlagCategory)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.Categories, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
