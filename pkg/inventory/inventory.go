// Package inventory queries package managers for what is currently installed.
package inventory

import (
	"context"
	"strings"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/runner"
)

// Homebrew holds the installed formulae and casks in the order brew lists them.
type Homebrew struct {
	Formulae []string
	Casks    []string
}

// All returns formulae followed by casks.
func (h Homebrew) All() []string {
	all := make([]string, 0, len(h.Formulae)+len(h.Casks))
	all = append(all, h.Formulae...)
	return append(all, h.Casks...)
}

// Set returns the union of formulae and casks.
func (h Homebrew) Set() Set {
	return NewSet(h.All()...)
}

// HomebrewFormulaeArgs and HomebrewCasksArgs are the brew listing commands.
var (
	HomebrewFormulaeArgs = []string{"list", "--formula", "-1"}
	HomebrewCasksArgs    = []string{"list", "--cask", "-1"}
)

// QueryHomebrew lists installed formulae and casks.
func QueryHomebrew(ctx context.Context, run runner.Runner, brew string) (Homebrew, error) {
	formulae, err := lines(ctx, run, brew, HomebrewFormulaeArgs...)
	if err != nil {
		return Homebrew{}, err
	}
	casks, err := lines(ctx, run, brew, HomebrewCasksArgs...)
	if err != nil {
		return Homebrew{}, err
	}
	return Homebrew{Formulae: formulae, Casks: casks}, nil
}

// QueryUVTools lists tools installed with `uv tool install`.
//
// uv prints each tool as "name vX.Y.Z" followed by "- executable" lines for
// the entry points it provides; only the tool lines are kept.
func QueryUVTools(ctx context.Context, run runner.Runner, uv string) ([]string, error) {
	out, err := lines(ctx, run, uv, "tool", "list")
	if err != nil {
		return nil, err
	}

	var tools []string
	for _, line := range out {
		if strings.HasPrefix(line, "-") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(strings.ToLower(line), "no tools") {
			continue
		}
		tools = append(tools, fields[0])
	}
	return tools, nil
}

// QueryVSCodeExtensions lists installed VSCode extension identifiers.
func QueryVSCodeExtensions(ctx context.Context, run runner.Runner, code string) ([]string, error) {
	return lines(ctx, run, code, "--list-extensions")
}

func lines(ctx context.Context, run runner.Runner, name string, args ...string) ([]string, error) {
	result := run.Run(ctx, name, args...)
	if !result.Success() {
		return nil, errors.Wrapf(result.Err, errors.ErrCommandFailed,
			"failed to list installed packages with %s", name).
			WithDetail("stderr", strings.TrimSpace(result.Stderr))
	}
	return result.Lines(), nil
}

// Set is a membership set of package identifiers.
type Set map[string]struct{}

// NewSet builds a set from names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts name.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Has reports membership.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}
