package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the configurable half of the styling: color tokens and glyphs.
// The zero value is not usable; start from DefaultTheme.
type Theme struct {
	Highlight string // foreground for the selected row
	Lowlight  string // foreground for unselected rows
	Normal    string // foreground for chrome (status bar, fill)
	Fill      string // glyph repeated on rows past the end of the content
	Pad       string // character written over an erased position
}

// DefaultTheme mirrors the palette used across the rest of the UI
func DefaultTheme() Theme {
	return Theme{
		Highlight: "220",
		Lowlight:  "252",
		Normal:    "241",
		Fill:      "░",
		Pad:       " ",
	}
}

// Styles contains the style definitions for the widget chrome
type Styles struct {
	Title     lipgloss.Style
	Highlight lipgloss.Style
	Lowlight  lipgloss.Style
	Normal    lipgloss.Style
	Status    lipgloss.Style
	Filter    lipgloss.Style
	Help      lipgloss.Style

	Fill string
	Pad  string
}

// NewStyles builds the style set for a theme
func NewStyles(t Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Highlight)).
			Reverse(true),
		Lowlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Lowlight)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Normal)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Normal)),
		Filter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Help: lipgloss.NewStyle().Faint(true),
		Fill: t.Fill,
		Pad:  t.Pad,
	}
}
