package style

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Plain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	p.Heading("homebrew", "Homebrew packages")
	p.Info("installing %s", "git")
	p.Success("installed %s", "git")
	p.Warning("failed to install %s", "nope")
	p.Error("brew not found")

	assert.Equal(t, "==> Homebrew packages\ninstalling git\ninstalled git\n", out.String())
	assert.Equal(t, "warning: failed to install nope\nerror: brew not found\n", errOut.String())
	assert.Same(t, &out, p.Out())
}

func TestPrinter_ColorKeepsMessage(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true)

	p.Warning("failed to install %s", "nope")

	assert.Contains(t, errOut.String(), "failed to install nope")
	assert.Empty(t, out.String())
}

func TestColorEnabled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, ColorEnabled(f, false), "regular files are not terminals")
	assert.False(t, ColorEnabled(f, true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdout, false))
}

func TestCategoryStyle(t *testing.T) {
	ApplyColor(false)

	for _, category := range []string{"homebrew", "uv", "vscode", "other"} {
		assert.Equal(t, "Title", CategoryStyle(category).Render("Title"), category)
	}
}
