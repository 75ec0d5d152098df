package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Path    lipgloss.Style
}

func colorStyles() Styles {
	return Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
	}
}

func plainStyles() Styles {
	return Styles{
		Error:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
		Path:    lipgloss.NewStyle(),
	}
}

// Printer writes status to w and problems to errW.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	styles Styles
}

// NewPrinter creates a Printer. Colors are enabled only when color is true.
func NewPrinter(w, errW io.Writer, color bool) *Printer {
	styles := plainStyles()
	if color {
		styles = colorStyles()
	}
	return &Printer{w: w, errW: errW, styles: styles}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Created reports a written file.
func (p *Printer) Created(kind, path string) {
	fmt.Fprintf(p.w, "%s %s %s\n",
		p.styles.Success.Render("Created"),
		kind,
		p.styles.Path.Render(path))
}

// WouldCreate reports a file a dry run skipped.
func (p *Printer) WouldCreate(kind, path string) {
	fmt.Fprintf(p.w, "%s %s %s\n",
		p.styles.Dim.Render("Would create"),
		kind,
		p.styles.Path.Render(path))
}

// Warn reports a non-fatal problem.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), fmt.Sprintf(format, args...))
}

// Error reports a failure.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), err)
}

// Heading prints a bold line.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.w, p.styles.Bold.Render(text))
}

// Println writes a plain line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
