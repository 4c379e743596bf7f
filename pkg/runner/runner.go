// Package runner executes the external package-manager CLIs.
//
// Installers never call os/exec directly; they go through the Runner
// interface so tests can script brew, uv and code without those tools being
// installed.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/logging"
	"github.com/rs/zerolog"
)

// waitDelay bounds how long a killed command's grandchildren may hold its
// output pipes open.
const waitDelay = 2 * time.Second

// Result is the outcome of one command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success reports whether the command ran and exited zero.
func (r Result) Success() bool {
	return r.Err == nil
}

// Reason is the last line the command wrote to stderr.
func (r Result) Reason() string {
	return lastLine(r.Stderr)
}

// Lines splits stdout into trimmed, non-empty lines.
func (r Result) Lines() []string {
	var lines []string
	for _, line := range strings.Split(r.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Runner locates and runs external commands.
type Runner interface {
	// LookPath resolves a command name, or checks an absolute path.
	LookPath(name string) (string, error)
	// Run blocks until the command exits.
	Run(ctx context.Context, name string, args ...string) Result
}

// Options configures an ExecRunner.
type Options struct {
	// Stream copies child output to Stdout/Stderr while it runs.
	Stream bool
	// Timeout bounds each command. Zero means no limit.
	Timeout time.Duration
	Stdout  io.Writer
	Stderr  io.Writer
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	logger  zerolog.Logger
	stream  bool
	timeout time.Duration
	stdout  io.Writer
	stderr  io.Writer
}

// New creates an ExecRunner.
func New(opts Options) *ExecRunner {
	r := &ExecRunner{
		logger:  logging.GetLogger("runner"),
		stream:  opts.Stream,
		timeout: opts.Timeout,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	return r
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrCommandNotFound, "command not found: %s", name).
			WithDetail("command", name)
	}
	return path, nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logging.LogCommand(r.logger, name, args)
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	if r.stream {
		cmd.Stdout = io.MultiWriter(&stdout, r.stdout)
		cmd.Stderr = io.MultiWriter(&stderr, r.stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		code := errors.ErrCommandFailed
		if ctxErr := ctx.Err(); ctxErr != nil {
			code = errors.ErrCommandCanceled
			err = stderrors.Join(err, ctxErr)
		}
		if result.ExitCode == 0 {
			result.ExitCode = -1
		}
		message := commandLine(name, args)
		if line := result.Reason(); line != "" {
			message += ": " + line
		}
		result.Err = errors.Wrap(err, code, message).
			WithDetail("exitCode", result.ExitCode)

		r.logger.Debug().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Int("exitCode", result.ExitCode).
			Str("stderr", result.Stderr).
			Dur("duration", time.Since(start)).
			Msg("Command failed")
		return result
	}

	r.logger.Debug().
		Str("command", name).
		Strs("args", args).
		Dur("duration", time.Since(start)).
		Msg("Command succeeded")

	return result
}

// lastLine returns the last non-blank line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

var _ Runner = (*ExecRunner)(nil)
