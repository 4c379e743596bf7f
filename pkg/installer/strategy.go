package installer

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/inventory"
	"github.com/arthur-debert/loadout/pkg/runner"
)

// Strategy knows how one package manager installs an entry.
type Strategy interface {
	// Begin runs once per pass, after the command has been resolved.
	Begin(ctx context.Context, run runner.Runner, bin string) error
	// Installed reports whether name needs no install.
	Installed(name string) bool
	// Install installs name and reports how.
	Install(ctx context.Context, run runner.Runner, bin, name string) (Outcome, error)
}

// HomebrewStrategy skips entries already present as formula or cask and
// falls back from a formula install to a single cask install.
type HomebrewStrategy struct {
	installed inventory.Set
}

// NewHomebrewStrategy creates a HomebrewStrategy with an empty inventory.
func NewHomebrewStrategy() *HomebrewStrategy {
	return &HomebrewStrategy{installed: inventory.NewSet()}
}

// Begin loads the installed formulae and casks. On failure the inventory
// stays empty and every entry is attempted.
func (s *HomebrewStrategy) Begin(ctx context.Context, run runner.Runner, bin string) error {
	inv, err := inventory.QueryHomebrew(ctx, run, bin)
	if err != nil {
		s.installed = inventory.NewSet()
		return err
	}
	s.installed = inv.Set()
	return nil
}

// Installed implements Strategy.
func (s *HomebrewStrategy) Installed(name string) bool {
	return s.installed.Has(name)
}

// Install implements Strategy.
func (s *HomebrewStrategy) Install(ctx context.Context, run runner.Runner, bin, name string) (Outcome, error) {
	formula := run.Run(ctx, bin, "install", name)
	if formula.Success() {
		s.installed.Add(name)
		return OutcomeInstalled, nil
	}

	if err := interrupted(ctx, name); err != nil {
		return OutcomeNotAttempted, err
	}

	cask := run.Run(ctx, bin, "install", "--cask", name)
	if cask.Success() {
		s.installed.Add(name)
		return OutcomeInstalledCask, nil
	}
	if err := interrupted(ctx, name); err != nil {
		return OutcomeNotAttempted, err
	}

	message := fmt.Sprintf("%s is neither an installable formula nor cask", name)
	if reason := cask.Reason(); reason != "" {
		message += ": " + reason
	}
	return OutcomeFailed, errors.Wrap(stderrors.Join(formula.Err, cask.Err), errors.ErrCommandFailed, message).
		WithDetail("package", name)
}

// commandStrategy installs with a fixed argument template and never skips.
type commandStrategy struct {
	args func(name string) []string
}

// NewUVStrategy installs with `uv tool install <name>`.
func NewUVStrategy() Strategy {
	return &commandStrategy{args: func(name string) []string {
		return []string{"tool", "install", name}
	}}
}

// NewVSCodeStrategy installs with `code --install-extension <id>`.
func NewVSCodeStrategy() Strategy {
	return &commandStrategy{args: func(name string) []string {
		return []string{"--install-extension", name}
	}}
}

func (s *commandStrategy) Begin(context.Context, runner.Runner, string) error {
	return nil
}

func (s *commandStrategy) Installed(string) bool {
	return false
}

func (s *commandStrategy) Install(ctx context.Context, run runner.Runner, bin, name string) (Outcome, error) {
	result := run.Run(ctx, bin, s.args(name)...)
	if !result.Success() {
		if err := interrupted(ctx, name); err != nil {
			return OutcomeNotAttempted, err
		}
		return OutcomeFailed, result.Err
	}
	return OutcomeInstalled, nil
}

// interrupted reports a canceled caller context. A command that failed under
// a live context is a real failure.
func interrupted(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandCanceled, "install of %s interrupted", name)
	}
	return nil
}
