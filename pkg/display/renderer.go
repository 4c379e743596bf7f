package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/arthur-debert/loadout/pkg/installer"
	"github.com/arthur-debert/loadout/pkg/manifest"
	"github.com/arthur-debert/loadout/pkg/style"
	"gopkg.in/yaml.v3"
)

// Renderer writes results in one format.
type Renderer struct {
	w      io.Writer
	format Format
	color  bool
}

// NewRenderer creates a Renderer. color only affects FormatText.
func NewRenderer(w io.Writer, format Format, color bool) *Renderer {
	return &Renderer{w: w, format: format, color: color}
}

// Report renders an install report.
func (r *Renderer) Report(report *installer.Report) error {
	if r.format == FormatYAML {
		return r.yaml(report)
	}
	_, err := io.WriteString(r.w, r.reportText(report))
	return err
}

// Manifest renders the plugin modules in load order.
func (r *Renderer) Manifest(m *manifest.Manifest) error {
	if r.format == FormatYAML {
		return r.yaml(m)
	}
	_, err := io.WriteString(r.w, r.manifestText(m))
	return err
}

func (r *Renderer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
	}
	return enc.Close()
}

func (r *Renderer) reportText(report *installer.Report) string {
	var b strings.Builder

	title := "Summary"
	if report.DryRun {
		title += " (dry run)"
	}
	b.WriteString(r.title(title) + "\n")

	width := 0
	for _, c := range report.Categories {
		if len(c.Category) > width {
			width = len(c.Category)
		}
	}

	for _, c := range report.Categories {
		name := fmt.Sprintf("%-*s", width, c.Category)
		if r.color {
			name = style.CategoryStyle(c.Category).Render(name)
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", r.indicator(c), name, categorySummary(c))

		for _, item := range c.Items {
			if item.Outcome != installer.OutcomeFailed {
				continue
			}
			line := fmt.Sprintf("failed: %s", item.Name)
			if r.color {
				line = style.ErrorStyle.Render(line)
			}
			b.WriteString("      " + line + "\n")
		}
	}

	if report.Canceled {
		b.WriteString(r.muted("  canceled before completion") + "\n")
	}

	return b.String()
}

func (r *Renderer) indicator(c installer.CategoryReport) string {
	switch {
	case c.Skipped != installer.SkipNone:
		if r.color {
			return style.WarningIndicator
		}
		return "!"
	case c.Count(installer.OutcomeFailed) > 0:
		if r.color {
			return style.ErrorIndicator
		}
		return "x"
	default:
		if r.color {
			return style.SuccessIndicator
		}
		return "+"
	}
}

var summaryOrder = []struct {
	outcome installer.Outcome
	label   string
}{
	{installer.OutcomeInstalled, "installed"},
	{installer.OutcomeInstalledCask, "installed as cask"},
	{installer.OutcomeWouldInstall, "to install"},
	{installer.OutcomeAlreadyInstalled, "already installed"},
	{installer.OutcomeFailed, "failed"},
	{installer.OutcomeNotAttempted, "not attempted"},
}

func categorySummary(c installer.CategoryReport) string {
	if c.Skipped != installer.SkipNone {
		return fmt.Sprintf("skipped (%s)", c.Skipped)
	}
	if len(c.Items) == 0 {
		return "nothing listed"
	}

	var parts []string
	for _, s := range summaryOrder {
		if n := c.Count(s.outcome); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s.label))
		}
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) manifestText(m *manifest.Manifest) string {
	var b strings.Builder

	b.WriteString(r.title(fmt.Sprintf("Plugins (%d)", len(m.Modules))) + "\n")
	for i, module := range m.Modules {
		line := fmt.Sprintf("%3d. %s", i+1, module.Name)
		if module.URL != module.Name {
			line += " " + r.muted(module.URL)
		}
		if module.Disabled {
			line += " " + r.muted("[disabled]")
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

func (r *Renderer) title(s string) string {
	if r.color {
		return style.TitleStyle.Render(s)
	}
	return s
}

func (r *Renderer) muted(s string) string {
	if r.color {
		return style.MutedStyle.Render(s)
	}
	return s
}
