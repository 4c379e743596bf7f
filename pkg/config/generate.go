package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/loadout/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the defaults with every value commented out,
// ready to be saved as a user config file.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, comments and section headers as they are.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			result = append(result, line)
		case strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// WriteConfigFile writes the generated config to path. An existing file is
// left alone unless force is set.
func WriteConfigFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrInvalidInput, "config file already exists: %s", path).
				WithDetail("path", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	return nil
}

// dumpView mirrors Config with the timeout rendered the way users write it.
type dumpView struct {
	Lists    ListsConfig    `toml:"lists"`
	Commands CommandsConfig `toml:"commands"`
	Install  struct {
		Strict  bool   `toml:"strict"`
		Timeout string `toml:"timeout"`
	} `toml:"install"`
	Manifest ManifestConfig `toml:"manifest"`
}

// Dump renders the effective configuration as TOML.
func Dump(cfg *Config) (string, error) {
	view := dumpView{
		Lists:    cfg.Lists,
		Commands: cfg.Commands,
		Manifest: cfg.Manifest,
	}
	view.Install.Strict = cfg.Install.Strict
	view.Install.Timeout = cfg.Install.Timeout.String()

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(view); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}
