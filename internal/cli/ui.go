package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// styles are bound to one writer so color detection follows that writer,
// not the process stdout.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	dim     lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		label:   r.NewStyle().Foreground(colorCyan),
		value:   r.NewStyle().Foreground(colorWhite),
		dim:     r.NewStyle().Foreground(colorDim),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
	}
}
