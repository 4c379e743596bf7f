package loadout

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Restore and snapshot your software inventory"
	MsgInstallShort    = "Install Homebrew packages, uv tools and VSCode extensions from the lists"
	MsgExportShort     = "Write the installed inventory to a list file"
	MsgPluginsShort    = "List Zsh plugin manifest modules in load order"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigInitShort = "Write a commented config file to start from"
	MsgConfigPathShort = "Print the config file location"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgExported        = "Exported %d %s to %s"
	MsgConfigWritten   = "Wrote %s"
	MsgNoConfigFile    = "# no config file found, showing defaults"
	MsgDuplicateModule = "module %s is declared %d times (lines %s)"

	// Version output
	MsgVersionFormat = "loadout version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/loadout/config.toml)"
	MsgFlagSet        = "Override a config key, e.g. --set lists.dir=~/dots (repeatable)"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagDryRun     = "Read lists and inventories but install nothing"
	MsgFlagStrict     = "Exit with status 2 if any entry failed or a category was skipped"
	MsgFlagTimeout    = "Limit each package-manager command, e.g. 10m (default: install.timeout)"
	MsgFlagFormat     = "Summary format: text or yaml"
	MsgFlagCategory   = "Inventory to export: homebrew, uv or vscode"
	MsgFlagOutput     = "Destination list file, or - for stdout (default: the category's list)"
	MsgFlagManifest   = "Plugin manifest to read (default: manifest.path)"
	MsgFlagForce      = "Overwrite an existing config file"
	MsgFlagConfigPath = "Where to write the config file (default: the user config location)"
	MsgFlagPluginsFmt = "Output format: text or yaml"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrIncomplete = "install finished with %d failed entries and %d skipped categories"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/plugins-long.txt
	msgPluginsLongRaw string
	MsgPluginsLong    = strings.TrimSpace(msgPluginsLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
