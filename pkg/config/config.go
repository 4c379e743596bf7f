package config

import (
	"time"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/paths"
)

// Category names, in install order.
const (
	CategoryHomebrew = "homebrew"
	CategoryUV       = "uv"
	CategoryVSCode   = "vscode"
)

// Categories lists every category in the fixed install order.
var Categories = []string{CategoryHomebrew, CategoryUV, CategoryVSCode}

// Config is the effective loadout configuration.
type Config struct {
	Lists    ListsConfig    `koanf:"lists" toml:"lists"`
	Commands CommandsConfig `koanf:"commands" toml:"commands"`
	Install  InstallConfig  `koanf:"install" toml:"install"`
	Manifest ManifestConfig `koanf:"manifest" toml:"manifest"`

	// Source is the user config file that was merged, if any.
	Source string `koanf:"-" toml:"-"`
}

// ListsConfig locates the inventory lists.
type ListsConfig struct {
	Dir      string `koanf:"dir" toml:"dir"`
	Homebrew string `koanf:"homebrew" toml:"homebrew"`
	UV       string `koanf:"uv" toml:"uv"`
	VSCode   string `koanf:"vscode" toml:"vscode"`
}

// CommandsConfig names the package-manager executables.
type CommandsConfig struct {
	Brew string `koanf:"brew" toml:"brew"`
	UV   string `koanf:"uv" toml:"uv"`
	Code string `koanf:"code" toml:"code"`
}

// InstallConfig tunes the install passes.
type InstallConfig struct {
	Strict  bool          `koanf:"strict" toml:"strict"`
	Timeout time.Duration `koanf:"timeout" toml:"timeout"`
}

// ManifestConfig locates the Zsh plugin manifest.
type ManifestConfig struct {
	Path string `koanf:"path" toml:"path"`
}

// ListPath returns the resolved list file for a category.
func (c *Config) ListPath(category string) (string, error) {
	var name string
	switch category {
	case CategoryHomebrew:
		name = c.Lists.Homebrew
	case CategoryUV:
		name = c.Lists.UV
	case CategoryVSCode:
		name = c.Lists.VSCode
	default:
		return "", errors.Newf(errors.ErrCategoryUnknown, "unknown category %q", category)
	}
	return paths.Resolve(c.Lists.Dir, name)
}

// Command returns the executable configured for a category.
func (c *Config) Command(category string) (string, error) {
	switch category {
	case CategoryHomebrew:
		return c.Commands.Brew, nil
	case CategoryUV:
		return c.Commands.UV, nil
	case CategoryVSCode:
		return c.Commands.Code, nil
	default:
		return "", errors.Newf(errors.ErrCategoryUnknown, "unknown category %q", category)
	}
}

// ManifestPath returns the resolved plugin manifest path.
func (c *Config) ManifestPath() (string, error) {
	return paths.ExpandHome(c.Manifest.Path)
}

// Validate checks the fields every command relies on.
func (c *Config) Validate() error {
	checks := []struct {
		key   string
		value string
	}{
		{"lists.homebrew", c.Lists.Homebrew},
		{"lists.uv", c.Lists.UV},
		{"lists.vscode", c.Lists.VSCode},
		{"commands.brew", c.Commands.Brew},
		{"commands.uv", c.Commands.UV},
		{"commands.code", c.Commands.Code},
	}
	for _, check := range checks {
		if check.value == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", check.key).
				WithDetail("key", check.key)
		}
	}
	if c.Install.Timeout < 0 {
		return errors.New(errors.ErrConfigValid, "install.timeout must not be negative")
	}
	return nil
}
