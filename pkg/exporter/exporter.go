// Package exporter writes the currently installed inventory back to a list
// file.
//
// An export always replaces the destination. There is no merge with the
// existing list and no backup; the list becomes exactly what the package
// manager reports.
package exporter

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/loadout/pkg/config"
	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/inventory"
	"github.com/arthur-debert/loadout/pkg/listfile"
	"github.com/arthur-debert/loadout/pkg/logging"
	"github.com/arthur-debert/loadout/pkg/runner"
)

// Stdout is the destination that writes the list to the output writer.
const Stdout = "-"

// Options selects what to export and where.
type Options struct {
	Category    string
	Command     string
	Fallbacks   []string
	Destination string
	// Out receives the list when Destination is Stdout.
	Out io.Writer
}

// Result describes a finished export.
type Result struct {
	Category    string
	Command     string
	Destination string
	Entries     []string
}

// Export queries the package manager and writes its inventory.
func Export(ctx context.Context, run runner.Runner, opts Options) (*Result, error) {
	logger := logging.GetLogger("exporter").With().Str("category", opts.Category).Logger()
	done := logging.LogOperationStart(logger, "export "+opts.Category)
	defer done()

	if opts.Destination == "" {
		return nil, errors.New(errors.ErrInvalidInput, "export destination is empty")
	}

	if !known(opts.Category) {
		return nil, errors.Newf(errors.ErrCategoryUnknown, "unknown category %q", opts.Category).
			WithDetail("category", opts.Category)
	}

	bin, err := resolve(run, opts.Command, opts.Fallbacks)
	if err != nil {
		return nil, err
	}

	entries, err := query(ctx, run, opts.Category, bin)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCommandFailed, "cannot list installed %s", opts.Category).
			WithDetail("command", bin)
	}

	if opts.Destination == Stdout {
		if opts.Out == nil {
			return nil, errors.New(errors.ErrInvalidInput, "no output writer for stdout export")
		}
		if _, err := fmt.Fprint(opts.Out, listfile.Format(entries)); err != nil {
			return nil, errors.Wrap(err, errors.ErrListWrite, "cannot write list to stdout")
		}
	} else if err := listfile.Write(opts.Destination, entries); err != nil {
		return nil, err
	}

	logger.Info().
		Str("destination", opts.Destination).
		Int("entries", len(entries)).
		Msg("Exported inventory")

	return &Result{
		Category:    opts.Category,
		Command:     bin,
		Destination: opts.Destination,
		Entries:     entries,
	}, nil
}

func known(category string) bool {
	for _, c := range config.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func query(ctx context.Context, run runner.Runner, category, bin string) ([]string, error) {
	switch category {
	case config.CategoryHomebrew:
		inv, err := inventory.QueryHomebrew(ctx, run, bin)
		if err != nil {
			return nil, err
		}
		return inv.All(), nil
	case config.CategoryUV:
		return inventory.QueryUVTools(ctx, run, bin)
	case config.CategoryVSCode:
		return inventory.QueryVSCodeExtensions(ctx, run, bin)
	default:
		return nil, errors.Newf(errors.ErrCategoryUnknown, "unknown category %q", category).
			WithDetail("category", category)
	}
}

func resolve(run runner.Runner, command string, fallbacks []string) (string, error) {
	bin, err := run.LookPath(command)
	if err == nil {
		return bin, nil
	}
	for _, fallback := range fallbacks {
		if path, ferr := run.LookPath(fallback); ferr == nil {
			return path, nil
		}
	}
	return "", errors.Wrapf(err, errors.ErrCommandNotFound, "%s is not installed", command).
		WithDetail("command", command)
}
