package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme holds the color scheme for human output.
type Theme struct {
	Title   lipgloss.Color
	Key     lipgloss.Color
	Value   lipgloss.Color
	Warning lipgloss.Color
}

var defaultTheme = Theme{
	Title:   lipgloss.Color("#5FAFD7"), // light blue
	Key:     lipgloss.Color("#6C6C6C"), // dim gray
	Value:   lipgloss.Color("#00D787"), // green
	Warning: lipgloss.Color("#F4D03F"), // amber
}

// row is one labelled line of a report.
type row struct {
	Key   string
	Value string
}

// report is what a command prints. Payload is the JSON form; Rows and
// Notes are the human form.
type report struct {
	Title   string
	Payload any
	Rows    []row
	Notes   []string
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) render(w io.Writer, r report) error {
	if a.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Payload)
	}
	if isTerminal(w) {
		_, err := io.WriteString(w, styled(defaultTheme, r))
		return err
	}
	_, err := io.WriteString(w, plain(r))
	return err
}

func plain(r report) string {
	var b strings.Builder
	for _, x := range r.Rows {
		fmt.Fprintf(&b, "%s: %s\n", x.Key, x.Value)
	}
	for _, n := range r.Notes {
		fmt.Fprintf(&b, "warning: %s\n", n)
	}
	return b.String()
}

func styled(t Theme, r report) string {
	title := lipgloss.NewStyle().Foreground(t.Title).Bold(true)
	key := lipgloss.NewStyle().Foreground(t.Key)
	val := lipgloss.NewStyle().Foreground(t.Value).Bold(true)
	warn := lipgloss.NewStyle().Foreground(t.Warning).Italic(true)

	width := 0
	for _, x := range r.Rows {
		width = max(width, lipgloss.Width(x.Key))
	}
	lines := []string{title.Render(r.Title)}
	for _, x := range r.Rows {
		lines = append(lines, key.Width(width+2).Render(x.Key+":")+val.Render(x.Value))
	}
	for _, n := range r.Notes {
		lines = append(lines, warn.Render("! "+n))
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Key).Padding(0, 1)
	return box.Render(strings.Join(lines, "\n")) + "\n"
}

func ff(x float64) string { return fmt.Sprintf("%.6g", x) }
