package loadout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginsCmd(t *testing.T) {
	c := newTestCLI(t)
	zimrc := "zmodule environment\nzmodule git\nzstyle ':zim' x\nzmodule zsh-users/zsh-autosuggestions\nzmodule git\n"
	require.NoError(t, os.WriteFile(filepath.Join(c.home, ".zimrc"), []byte(zimrc), 0644))

	require.NoError(t, c.execute("plugins"))

	assert.Contains(t, c.out.String(), "Plugins (4)")
	assert.Contains(t, c.out.String(), "  1. environment")
	assert.Contains(t, c.out.String(), "  3. zsh-autosuggestions")
	assert.Contains(t, c.errOut.String(), "warning: module git is declared 2 times (lines 2, 5)")
}

func TestPluginsCmd_ManifestFlag(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(c.home, "custom.zimrc")
	require.NoError(t, os.WriteFile(path, []byte("zmodule input\n"), 0644))

	require.NoError(t, c.execute("plugins", "--manifest", path, "--format", "yaml"))

	assert.Contains(t, c.out.String(), "name: input")
	assert.Empty(t, c.errOut.String())
}

func TestPluginsCmd_MissingManifest(t *testing.T) {
	c := newTestCLI(t)

	err := c.execute("plugins")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestNotFound))
}
