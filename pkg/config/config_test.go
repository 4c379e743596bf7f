package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/paths"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the config dir at temp dirs so the real user
// config never leaks into a test.
func isolate(t *testing.T) (home, configDir string) {
	t.Helper()
	home = t.TempDir()
	configDir = t.TempDir()
	t.Setenv(paths.EnvHome, home)
	t.Setenv(paths.EnvConfigDir, configDir)
	return home, configDir
}

func TestLoad_Defaults(t *testing.T) {
	home, _ := isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "~/.dotfiles/lists", cfg.Lists.Dir)
	assert.Equal(t, "brew", cfg.Commands.Brew)
	assert.Equal(t, "uv", cfg.Commands.UV)
	assert.Equal(t, "code", cfg.Commands.Code)
	assert.False(t, cfg.Install.Strict)
	assert.Equal(t, time.Duration(0), cfg.Install.Timeout)
	assert.Empty(t, cfg.Source)

	brewList, err := cfg.ListPath(CategoryHomebrew)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".dotfiles", "lists", "brew-packages.txt"), brewList)

	manifest, err := cfg.ManifestPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zimrc"), manifest)
}

func TestLoad_UserFile(t *testing.T) {
	_, configDir := isolate(t)

	content := `
[lists]
dir = "/srv/lists"
vscode = "/elsewhere/extensions.txt"

[install]
strict = true
timeout = "10m"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0644))

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configDir, "config.toml"), cfg.Source)
	assert.True(t, cfg.Install.Strict)
	assert.Equal(t, 10*time.Minute, cfg.Install.Timeout)

	uvList, err := cfg.ListPath(CategoryUV)
	require.NoError(t, err)
	assert.Equal(t, "/srv/lists/uv-tools.txt", uvList)

	vscodeList, err := cfg.ListPath(CategoryVSCode)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere/extensions.txt", vscodeList)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[commands]\nbrew = \"/opt/homebrew/bin/brew\"\n"), 0644))

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.Equal(t, "/opt/homebrew/bin/brew", cfg.Commands.Brew)
	assert.Equal(t, path, cfg.Source)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_InvalidFile(t *testing.T) {
	_, configDir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[lists\n"), 0644))

	_, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LOADOUT_INSTALL_STRICT", "true")
	t.Setenv("LOADOUT_COMMANDS_UV", "/usr/local/bin/uv")
	t.Setenv("LOADOUT_INSTALL_TIMEOUT", "90s")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.True(t, cfg.Install.Strict)
	assert.Equal(t, "/usr/local/bin/uv", cfg.Commands.UV)
	assert.Equal(t, 90*time.Second, cfg.Install.Timeout)

	cfg, err = Load(LoadOptions{Overrides: map[string]interface{}{"install.strict": false}})
	require.NoError(t, err)
	assert.False(t, cfg.Install.Strict, "overrides beat the environment")
}

func TestLoad_UnknownOverrideKey(t *testing.T) {
	isolate(t)

	_, err := Load(LoadOptions{Overrides: map[string]interface{}{"lists.apt": "apt.txt"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseOverrides(t *testing.T) {
	isolate(t)

	overrides, err := ParseOverrides([]string{"lists.dir=~/dots", "install.timeout=5m", "install.strict=true", "lists.dir=~/other"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"lists.dir":       "~/other",
		"install.timeout": "5m",
		"install.strict":  "true",
	}, overrides)

	cfg, err := Load(LoadOptions{Overrides: overrides})
	require.NoError(t, err)
	assert.True(t, cfg.Install.Strict)
	assert.Equal(t, 5*time.Minute, cfg.Install.Timeout)

	none, err := ParseOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	for _, bad := range []string{"lists.dir", "=value", " =x"} {
		_, err := ParseOverrides([]string{bad})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}

func TestLoad_Flags(t *testing.T) {
	isolate(t)
	t.Setenv("LOADOUT_INSTALL_STRICT", "true")

	newFlags := func(args ...string) *pflag.FlagSet {
		fs := pflag.NewFlagSet("install", pflag.ContinueOnError)
		fs.Bool("strict", false, "")
		fs.Duration("timeout", 0, "")
		fs.String("format", "text", "")
		require.NoError(t, fs.Parse(args))
		return fs
	}
	keys := map[string]string{"strict": "install.strict", "timeout": "install.timeout"}

	cfg, err := Load(LoadOptions{Flags: newFlags(), FlagKeys: keys})
	require.NoError(t, err)
	assert.True(t, cfg.Install.Strict, "unset flags leave the environment alone")
	assert.Equal(t, time.Duration(0), cfg.Install.Timeout)

	cfg, err = Load(LoadOptions{Flags: newFlags("--strict=false", "--timeout", "10m", "--format", "yaml"), FlagKeys: keys})
	require.NoError(t, err)
	assert.False(t, cfg.Install.Strict)
	assert.Equal(t, 10*time.Minute, cfg.Install.Timeout)
}

func TestLoad_RejectsEmptyCommand(t *testing.T) {
	_, configDir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[commands]\ncode = \"\"\n"), 0644))

	_, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, "commands.code", errors.GetErrorDetails(err)["key"])
}

func TestConfig_UnknownCategory(t *testing.T) {
	cfg := &Config{}

	_, err := cfg.ListPath("apt")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryUnknown))

	_, err = cfg.Command("apt")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryUnknown))
}

func TestConfig_Command(t *testing.T) {
	cfg := &Config{Commands: CommandsConfig{Brew: "brew", UV: "uv", Code: "code-insiders"}}

	for category, want := range map[string]string{
		CategoryHomebrew: "brew",
		CategoryUV:       "uv",
		CategoryVSCode:   "code-insiders",
	} {
		got, err := cfg.Command(category)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[lists]")
	assert.Contains(t, content, `# dir = "~/.dotfiles/lists"`)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line should be commented: %q", line)
	}
}

func TestWriteConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "loadout", "config.toml")

	require.NoError(t, WriteConfigFile(path, false))

	err := WriteConfigFile(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	require.NoError(t, WriteConfigFile(path, true))

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err, "a generated file loads cleanly")
	assert.Equal(t, "brew", cfg.Commands.Brew)
}

func TestDump(t *testing.T) {
	isolate(t)
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	cfg.Install.Timeout = 5 * time.Minute

	out, err := Dump(cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "[lists]")
	assert.Contains(t, out, "[install]")
	assert.Contains(t, out, "brew-packages.txt")
	assert.Contains(t, out, "5m0s")
	assert.Contains(t, out, "strict = false")
}
