// Package output renders todo lists for the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"todo/internal/todo"
)

// NoHighlight disables highlighting in Printer.List.
const NoHighlight = -1

// emptyMessage is printed in place of an empty list.
const emptyMessage = "Nothing to do"

// Printer writes styled list output to a writer.
type Printer struct {
	w         io.Writer
	highlight lipgloss.Style
	removed   lipgloss.Style
	empty     lipgloss.Style
	alert     lipgloss.Style
}

// NewPrinter creates a printer writing to w.
// Colors follow the terminal capabilities of w; color=false forces plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:         w,
		highlight: r.NewStyle().TabWidth(lipgloss.NoTabConversion).Foreground(lipgloss.Color("4")).Bold(true),
		removed:   r.NewStyle().TabWidth(lipgloss.NoTabConversion).Foreground(lipgloss.Color("1")).Strikethrough(true),
		empty:     r.NewStyle().TabWidth(lipgloss.NoTabConversion).Foreground(lipgloss.Color("2")).Bold(true),
		alert:     r.NewStyle().TabWidth(lipgloss.NoTabConversion).Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// List prints every item as "<index>. <item>".
// The item at position highlight is emphasized; pass NoHighlight for none.
// An empty list prints "Nothing to do".
func (p *Printer) List(items []todo.Item, highlight int) {
	for i, it := range items {
		line := it.String()
		if i == highlight {
			line = p.highlight.Render(line)
		}
		fmt.Fprintf(p.w, "%d. %s\n", i, line)
	}
	if len(items) == 0 {
		fmt.Fprintln(p.w, p.empty.Render(emptyMessage))
	}
}

// Removed prints a deleted item struck through.
func (p *Printer) Removed(it todo.Item) {
	fmt.Fprintln(p.w, p.removed.Render(it.String()))
}

// Alert prints a short error message such as "Done what?!".
func (p *Printer) Alert(msg string) {
	fmt.Fprintln(p.w, p.alert.Render(msg))
}
