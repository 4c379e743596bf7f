// Package runnertest provides a scripted Runner for tests.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/runner"
)

// Call is one recorded Run invocation.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// RecordingRunner answers Run calls from a script keyed by command line and
// records every call in order. Commands not scripted succeed with no output.
// LookPath returns the name unchanged unless it is marked missing, so
// recorded command lines read like "brew install git".
type RecordingRunner struct {
	mu        sync.Mutex
	missing   map[string]bool
	responses map[string]runner.Result
	hooks     map[string]func()
	calls     []Call
}

// New creates an empty RecordingRunner.
func New() *RecordingRunner {
	return &RecordingRunner{
		missing:   make(map[string]bool),
		responses: make(map[string]runner.Result),
		hooks:     make(map[string]func()),
	}
}

// WithMissing makes LookPath fail for the given names.
func (r *RecordingRunner) WithMissing(names ...string) *RecordingRunner {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		r.missing[name] = true
	}
	return r
}

// Respond scripts the result for an exact command line.
func (r *RecordingRunner) Respond(cmdline string, result runner.Result) *RecordingRunner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[cmdline] = result
	return r
}

// Output scripts a successful command line with stdout.
func (r *RecordingRunner) Output(cmdline, stdout string) *RecordingRunner {
	return r.Respond(cmdline, runner.Result{Stdout: stdout})
}

// Fail scripts a command line that exits 1.
func (r *RecordingRunner) Fail(cmdline string) *RecordingRunner {
	stderr := "error: " + cmdline
	return r.Respond(cmdline, runner.Result{
		ExitCode: 1,
		Stderr:   stderr,
		Err:      errors.Newf(errors.ErrCommandFailed, "%s: %s", cmdline, stderr),
	})
}

// Interrupt scripts a command line that calls cancel while it runs and is
// then killed, the way Ctrl-C interrupts a child process.
func (r *RecordingRunner) Interrupt(cmdline string, cancel context.CancelFunc) *RecordingRunner {
	r.Respond(cmdline, runner.Result{
		ExitCode: -1,
		Err:      errors.Newf(errors.ErrCommandCanceled, "%s", cmdline),
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[cmdline] = cancel
	return r
}

// LookPath implements runner.Runner.
func (r *RecordingRunner) LookPath(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.missing[name] {
		return "", errors.Newf(errors.ErrCommandNotFound, "command not found: %s", name)
	}
	return name, nil
}

// Run implements runner.Runner.
func (r *RecordingRunner) Run(_ context.Context, name string, args ...string) runner.Result {
	call := Call{Name: name, Args: append([]string(nil), args...)}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	result := r.responses[call.String()]
	hook := r.hooks[call.String()]
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return result
}

// Calls returns the recorded calls.
func (r *RecordingRunner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// CallLines returns the recorded calls as command lines.
func (r *RecordingRunner) CallLines() []string {
	calls := r.Calls()
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, c.String())
	}
	return lines
}

// CallsTo returns command lines whose executable is name.
func (r *RecordingRunner) CallsTo(name string) []string {
	var lines []string
	for _, c := range r.Calls() {
		if c.Name == name {
			lines = append(lines, c.String())
		}
	}
	return lines
}

var _ runner.Runner = (*RecordingRunner)(nil)
