package style

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Printer writes user-facing messages. Informational lines go to out;
// warnings and errors go to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

// NewPrinter creates a Printer. With color off, messages carry a plain
// lowercase prefix such as "warning: ".
func NewPrinter(out, errOut io.Writer, color bool) *Printer {
	return &Printer{out: out, errOut: errOut, color: color}
}

// Out returns the writer used for regular output.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Warning reports a skipped category or failed item.
func (p *Printer) Warning(format string, args ...interface{}) {
	p.write(p.errOut, pterm.Warning, "warning", format, args...)
}

// Error reports a problem that stops a category.
func (p *Printer) Error(format string, args ...interface{}) {
	p.write(p.errOut, pterm.Error, "error", format, args...)
}

// Info reports progress.
func (p *Printer) Info(format string, args ...interface{}) {
	p.write(p.out, pterm.Info, "", format, args...)
}

// Success reports a completed item.
func (p *Printer) Success(format string, args ...interface{}) {
	p.write(p.out, pterm.Success, "", format, args...)
}

// Heading prints a section title.
func (p *Printer) Heading(category, title string) {
	if p.color {
		fmt.Fprintln(p.out, CategoryStyle(category).Render("==> "+title))
		return
	}
	fmt.Fprintln(p.out, "==> "+title)
}

func (p *Printer) write(w io.Writer, prefix pterm.PrefixPrinter, plain, format string, args ...interface{}) {
	if p.color {
		fmt.Fprint(w, prefix.Sprintfln(format, args...))
		return
	}
	msg := fmt.Sprintf(format, args...)
	if plain != "" {
		msg = plain + ": " + msg
	}
	fmt.Fprintln(w, msg)
}
