package loadout

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/loadout/pkg/display"
	"github.com/arthur-debert/loadout/pkg/logging"
	"github.com/arthur-debert/loadout/pkg/manifest"
	"github.com/arthur-debert/loadout/pkg/paths"
	"github.com/spf13/cobra"
)

func (a *app) newPluginsCmd() *cobra.Command {
	var (
		manifestPath string
		format       string
	)

	cmd := &cobra.Command{
		Use:     "plugins",
		Short:   MsgPluginsShort,
		Long:    MsgPluginsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := display.ParseFormat(format)
			if err != nil {
				return err
			}

			path := manifestPath
			if path == "" {
				cfg, err := a.loadConfig(cmd, nil)
				if err != nil {
					return err
				}
				path, err = cfg.ManifestPath()
				if err != nil {
					return err
				}
			} else if path, err = paths.ExpandHome(path); err != nil {
				return err
			}

			m, err := manifest.Load(path)
			if err != nil {
				return err
			}

			if err := display.NewRenderer(cmd.OutOrStdout(), outFormat, a.color).Manifest(m); err != nil {
				return err
			}

			printer := a.printer(cmd)
			for _, dup := range m.Duplicates() {
				lines := make([]string, 0, len(dup.Lines))
				for _, l := range dup.Lines {
					lines = append(lines, fmt.Sprint(l))
				}
				printer.Warning(MsgDuplicateModule, dup.Name, len(dup.Lines), strings.Join(lines, ", "))
			}
			logger := logging.GetLogger("cmd.plugins")
			for _, line := range m.Unknown {
				logger.Info().Int("line", line.Number).Str("text", line.Text).Msg("Not a module declaration")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", MsgFlagManifest)
	cmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagPluginsFmt)

	return cmd
}
