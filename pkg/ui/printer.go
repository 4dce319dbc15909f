// Package ui renders srap's user-facing output: status lines, verbose
// diagnostics and fatal errors.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/srap/pkg/errors"
	"github.com/arthur-debert/srap/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status messages
const (
	MsgDryRun     = "Doing a dry run..."
	MsgNotFound   = "not found"
	MsgAppending  = "Appending"
	MsgTo         = "to"
	MsgSuccess    = "Now source the config file and you're all ready to go! :3"
	MsgContinuing = "continuing..."
)

// Printer writes status lines. With color disabled it emits the same text
// without escape sequences.
type Printer struct {
	w        io.Writer
	profile  termenv.Profile
	renderer *lipgloss.Renderer
	verbose  bool
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer, noColor, verbose bool) *Printer {
	profile := termenv.ANSI
	if noColor {
		profile = termenv.Ascii
	}
	return &Printer{
		w:        w,
		profile:  profile,
		renderer: lipgloss.NewRenderer(w, termenv.WithProfile(profile)),
		verbose:  verbose,
	}
}

// ColorDisabled reports whether the environment asks for plain output
// (https://no-color.org).
func ColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

func (p *Printer) style(name, text string) string {
	return styles.Render(p.profile, name, text)
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

// DryRun announces that nothing will be written.
func (p *Printer) DryRun() {
	p.println(p.style("Warning", MsgDryRun))
}

// NotFound reports a skipped candidate in apply-to-all mode.
func (p *Printer) NotFound(path string) {
	p.println(p.style("Path", path) + " " + p.style("Warning", MsgNotFound))
}

// Appending announces the write of line (already stripped of its leading
// newline) to path.
func (p *Printer) Appending(line, path string) {
	p.println(fmt.Sprintf("%s \"%s\" %s %s",
		p.style("Action", MsgAppending),
		line,
		p.style("Action", MsgTo),
		p.style("Path", path),
	))
}

// Success is printed once every target has been handled.
func (p *Printer) Success() {
	p.println(p.style("Success", MsgSuccess))
}

// HomeWarning reports that $HOME was missing and an empty home directory
// is used instead.
func (p *Printer) HomeWarning(err error) {
	p.println(p.style("Warning", errors.Describe(err)+", "+MsgContinuing))
}

// Verbosef prints a diagnostic line when verbose output is on.
func (p *Printer) Verbosef(format string, args ...interface{}) {
	if !p.verbose {
		return
	}
	p.println(fmt.Sprintf(format, args...))
}

// Error renders a fatal error.
func (p *Printer) Error(err error) {
	errorStyle := p.renderer.NewStyle().
		Foreground(lipgloss.Color(styles.GetStyle("Error").Foreground)).
		Bold(styles.GetStyle("Error").Bold)
	p.println(errorStyle.Render("Error: " + errors.Describe(err)))
}
