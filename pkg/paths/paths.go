package paths

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/loadout/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvConfigDir overrides the XDG config directory for loadout
	EnvConfigDir = "LOADOUT_CONFIG_DIR"
)

const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "loadout"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// AppleSiliconBrew is where Homebrew lives on darwin/arm64 when it is
	// not yet on PATH.
	AppleSiliconBrew = "/opt/homebrew/bin/brew"
)

// Home returns the user's home directory from $HOME.
func Home() (string, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		return "", errors.New(errors.ErrInvalidInput, "HOME environment variable not set")
	}
	return home, nil
}

// ExpandHome expands a leading `~` and any `$HOME`/`${HOME}` reference.
// Paths that reference the home directory fail when HOME is unset.
func ExpandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	needsHome := path == "~" || strings.HasPrefix(path, "~/") || homeVar.MatchString(path)
	if !needsHome {
		return path, nil
	}

	home, err := Home()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand %s", path)
	}

	switch {
	case path == "~":
		return home, nil
	case strings.HasPrefix(path, "~/"):
		path = filepath.Join(home, path[2:])
	}

	path = homeVar.ReplaceAllLiteralString(path, home)
	return filepath.Clean(path), nil
}

// homeVar matches $HOME and ${HOME} but not longer names such as
// $HOMEBREW_PREFIX.
var homeVar = regexp.MustCompile(`\$(?:\{HOME\}|HOME\b)`)

// Resolve expands path and, when it is relative, joins it onto base.
func Resolve(base, path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	if expanded == "" || filepath.IsAbs(expanded) {
		return expanded, nil
	}

	expandedBase, err := ExpandHome(base)
	if err != nil {
		return "", err
	}
	return filepath.Join(expandedBase, expanded), nil
}

// ConfigDir returns the loadout configuration directory.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName), nil
}

// ConfigFile returns the default path of the user configuration file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// HomebrewFallbacks lists absolute brew locations to try when brew is not
// on PATH. Only Apple Silicon macs install Homebrew outside the default PATH.
func HomebrewFallbacks(goos, goarch string) []string {
	if goos == "darwin" && goarch == "arm64" {
		return []string{AppleSiliconBrew}
	}
	return nil
}
