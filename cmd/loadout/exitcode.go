package loadout

import (
	"errors"
	"fmt"
)

// Exit codes for the loadout CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitError indicates a usage, configuration or command error
	ExitError = 1

	// ExitIncomplete indicates a strict install had failures or skips, or an
	// install was interrupted
	ExitIncomplete = 2
)

// exitError carries a process exit code out of a command. When the summary has
// already been printed the error is silent and main prints nothing more.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode returns the exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitError
}

// Silent reports whether err has already been reported to the user.
func Silent(err error) bool {
	var e *exitError
	return errors.As(err, &e) && e.silent
}
