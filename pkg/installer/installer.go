package installer

import (
	"context"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/listfile"
	"github.com/arthur-debert/loadout/pkg/logging"
	"github.com/arthur-debert/loadout/pkg/runner"
	"github.com/arthur-debert/loadout/pkg/style"
	"github.com/rs/zerolog"
)

// Options configures an Installer.
type Options struct {
	// DryRun resolves commands and reads inventories but installs nothing.
	DryRun bool
}

// Installer runs install passes sequentially.
type Installer struct {
	run     runner.Runner
	printer *style.Printer
	logger  zerolog.Logger
	dryRun  bool
}

// New creates an Installer.
func New(run runner.Runner, printer *style.Printer, opts Options) *Installer {
	return &Installer{
		run:     run,
		printer: printer,
		logger:  logging.GetLogger("installer"),
		dryRun:  opts.DryRun,
	}
}

// Run executes the passes in order. It only returns an error when ctx is
// canceled; every other problem is recorded in the report.
func (i *Installer) Run(ctx context.Context, categories []Category) (*Report, error) {
	report := &Report{DryRun: i.dryRun}

	for _, category := range categories {
		if err := ctx.Err(); err != nil {
			report.Canceled = true
			return report, errors.Wrap(err, errors.ErrCommandCanceled, "install canceled")
		}

		categoryReport := i.runCategory(ctx, category)
		report.Categories = append(report.Categories, categoryReport)
	}

	if err := ctx.Err(); err != nil {
		report.Canceled = true
		return report, errors.Wrap(err, errors.ErrCommandCanceled, "install canceled")
	}

	i.logger.Info().
		Int("categories", len(report.Categories)).
		Int("failed", report.Failed()).
		Int("skipped", report.Skipped()).
		Bool("dryRun", i.dryRun).
		Msg("Install run finished")

	return report, nil
}

func (i *Installer) runCategory(ctx context.Context, category Category) CategoryReport {
	logger := i.logger.With().Str("category", category.Name).Logger()
	done := logging.LogOperationStart(logger, "install "+category.Name)
	defer done()

	report := CategoryReport{
		Category: category.Name,
		Title:    category.Title,
		ListPath: category.ListPath,
	}

	i.printer.Heading(category.Name, "Installing "+category.Title)

	entries, err := listfile.Read(category.ListPath)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrListNotFound) {
			report.Skipped = SkipMissingList
			i.printer.Warning("%s list not found at %s, skipping", category.Title, category.ListPath)
		} else {
			report.Skipped = SkipUnreadableList
			i.printer.Warning("cannot read %s list %s, skipping: %v", category.Title, category.ListPath, err)
		}
		logger.Warn().Err(err).Str("path", category.ListPath).Msg("Skipping category")
		return report
	}

	bin, err := i.resolve(category)
	if err != nil {
		report.Skipped = SkipMissingCommand
		i.printer.Error("%s is not installed, skipping %s", category.Command, category.Title)
		logger.Error().Err(err).Str("command", category.Command).Msg("Skipping category")
		return report
	}
	report.Command = bin

	if err := category.Strategy.Begin(ctx, i.run, bin); err != nil {
		i.printer.Warning("could not list installed %s: %v", category.Title, err)
		logger.Warn().Err(err).Msg("Inventory query failed")
	}

	for idx, name := range entries {
		if ctx.Err() != nil {
			for _, rest := range entries[idx:] {
				report.Items = append(report.Items, ItemResult{Name: rest, Outcome: OutcomeNotAttempted})
			}
			break
		}
		report.Items = append(report.Items, i.installEntry(ctx, category, bin, name, logger))
	}

	return report
}

func (i *Installer) installEntry(ctx context.Context, category Category, bin, name string, logger zerolog.Logger) ItemResult {
	item := ItemResult{Name: name}

	if category.Strategy.Installed(name) {
		item.Outcome = OutcomeAlreadyInstalled
		i.printer.Info("%s is already installed", name)
		logger.Debug().Str("item", name).Msg("Already installed")
		return item
	}

	if i.dryRun {
		item.Outcome = OutcomeWouldInstall
		i.printer.Info("would install %s", name)
		return item
	}

	i.printer.Info("installing %s", name)
	outcome, err := category.Strategy.Install(ctx, i.run, bin, name)
	item.Outcome = outcome
	if err != nil && ctx.Err() != nil {
		item.Outcome = OutcomeNotAttempted
		logger.Info().Str("item", name).Msg("Install interrupted")
		return item
	}
	if err != nil {
		item.Error = err.Error()
		i.printer.Warning("failed to install %s: %s", name, errors.GetErrorMessage(err))
		logger.Warn().Err(err).Str("item", name).Msg("Install failed")
		return item
	}

	if outcome == OutcomeInstalledCask {
		i.printer.Success("installed %s (cask)", name)
	} else {
		i.printer.Success("installed %s", name)
	}
	logger.Info().Str("item", name).Str("outcome", string(outcome)).Msg("Installed")
	return item
}

// resolve finds the category's command on PATH, then at its fallbacks.
func (i *Installer) resolve(category Category) (string, error) {
	bin, err := i.run.LookPath(category.Command)
	if err == nil {
		return bin, nil
	}

	for _, fallback := range category.Fallbacks {
		if path, ferr := i.run.LookPath(fallback); ferr == nil {
			i.logger.Debug().Str("command", category.Command).Str("path", path).Msg("Using fallback location")
			return path, nil
		}
	}

	return "", err
}
