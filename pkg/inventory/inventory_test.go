package inventory

import (
	"context"
	"testing"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/runner/runnertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryHomebrew(t *testing.T) {
	run := runnertest.New().
		Output("brew list --formula -1", "git\nwget\n").
		Output("brew list --cask -1", "firefox\n")

	inv, err := QueryHomebrew(context.Background(), run, "brew")
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "wget"}, inv.Formulae)
	assert.Equal(t, []string{"firefox"}, inv.Casks)
	assert.Equal(t, []string{"git", "wget", "firefox"}, inv.All())
	assert.True(t, inv.Set().Has("firefox"))
	assert.False(t, inv.Set().Has("curl"))
}

func TestQueryHomebrew_Failure(t *testing.T) {
	run := runnertest.New().
		Output("brew list --formula -1", "git\n").
		Fail("brew list --cask -1")

	_, err := QueryHomebrew(context.Background(), run, "brew")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
}

func TestQueryUVTools(t *testing.T) {
	run := runnertest.New().Output("uv tool list", `ruff v0.6.1
- ruff
black v24.8.0
- black
- blackd
`)

	tools, err := QueryUVTools(context.Background(), run, "uv")
	require.NoError(t, err)
	assert.Equal(t, []string{"ruff", "black"}, tools)
}

func TestQueryUVTools_None(t *testing.T) {
	run := runnertest.New().Output("uv tool list", "No tools installed\n")

	tools, err := QueryUVTools(context.Background(), run, "uv")
	require.NoError(t, err)
	assert.Empty(t, tools)
}

func TestQueryVSCodeExtensions(t *testing.T) {
	run := runnertest.New().Output("code --list-extensions", "golang.go\nms-python.python\n")

	exts, err := QueryVSCodeExtensions(context.Background(), run, "code")
	require.NoError(t, err)
	assert.Equal(t, []string{"golang.go", "ms-python.python"}, exts)
}
