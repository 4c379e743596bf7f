package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Success(t *testing.T) {
	r := New(Options{})

	result := r.Run(context.Background(), "sh", "-c", "echo git; echo wget")

	require.True(t, result.Success(), "unexpected error: %v", result.Err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, []string{"git", "wget"}, result.Lines())
}

func TestExecRunner_Failure(t *testing.T) {
	r := New(Options{})

	result := r.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")

	require.False(t, result.Success())
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "boom\n", result.Stderr)
	assert.True(t, errors.IsErrorCode(result.Err, errors.ErrCommandFailed))
	assert.Contains(t, result.Err.Error(), "sh -c echo boom >&2; exit 3: boom")
}

func TestExecRunner_FailureKeepsLastStderrLine(t *testing.T) {
	r := New(Options{})

	result := r.Run(context.Background(), "sh", "-c", "printf 'Warning: slow\nError: No available formula\n\n' >&2; exit 1")

	require.False(t, result.Success())
	var loadoutErr *errors.LoadoutError
	require.ErrorAs(t, result.Err, &loadoutErr)
	assert.True(t, strings.HasSuffix(loadoutErr.Message, ": Error: No available formula"), loadoutErr.Message)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "", lastLine(""))
	assert.Equal(t, "", lastLine("  \n\n"))
	assert.Equal(t, "two", lastLine("one\n  two  \n\n"))
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := New(Options{})

	result := r.Run(context.Background(), "loadout-definitely-not-a-command")

	require.False(t, result.Success())
	assert.Equal(t, -1, result.ExitCode)
}

func TestExecRunner_Stream(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(Options{Stream: true, Stdout: &out, Stderr: &errOut})

	result := r.Run(context.Background(), "sh", "-c", "echo installing; echo warn >&2")

	require.True(t, result.Success())
	assert.Equal(t, "installing\n", out.String())
	assert.Equal(t, "warn\n", errOut.String())
	assert.Equal(t, "installing\n", result.Stdout, "output is still captured while streaming")
}

func TestExecRunner_Timeout(t *testing.T) {
	r := New(Options{Timeout: 50 * time.Millisecond})

	result := r.Run(context.Background(), "sh", "-c", "exec sleep 5")

	require.False(t, result.Success())
	assert.True(t, errors.IsErrorCode(result.Err, errors.ErrCommandCanceled))
}

func TestExecRunner_LookPath(t *testing.T) {
	r := New(Options{})

	path, err := r.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = r.LookPath("loadout-definitely-not-a-command")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandNotFound))
}

func TestResult_Lines(t *testing.T) {
	r := Result{Stdout: "  git \n\n wget\n"}
	assert.Equal(t, []string{"git", "wget"}, r.Lines())
	assert.Nil(t, Result{}.Lines())
}
