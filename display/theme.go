// Package display turns collected facts into terminal output: styled lines,
// the side-by-side layout and the structured json/yaml forms.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette is the user-facing description of a Theme.
type Palette struct {
	Accent   string // crown, bullet, key and identity color
	Trunk    string // trunk and separator color
	Bullet   string
	Rule     string
	KeyWidth int
}

// DefaultPalette matches the classic green tree.
func DefaultPalette() Palette {
	return Palette{
		Accent:   "2",
		Trunk:    "3",
		Bullet:   "▪",
		Rule:     "━",
		KeyWidth: 7,
	}
}

// Theme holds the styles used to render facts and art. It is a plain value
// and is never modified after construction.
type Theme struct {
	Accent lipgloss.Style
	Trunk  lipgloss.Style
	Bold   lipgloss.Style
	Key    lipgloss.Style
	Host   lipgloss.Style

	Bullet   string
	Rule     string
	KeyWidth int
}

// NewRenderer returns a lipgloss renderer for w. When color is false all
// styling is dropped.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewTheme builds a Theme from p using renderer r.
func NewTheme(r *lipgloss.Renderer, p Palette) Theme {
	accent := r.NewStyle().Foreground(lipgloss.Color(p.Accent))
	return Theme{
		Accent:   accent,
		Trunk:    r.NewStyle().Foreground(lipgloss.Color(p.Trunk)),
		Bold:     r.NewStyle().Bold(true),
		Key:      accent.Bold(true),
		Host:     accent.Bold(true),
		Bullet:   p.Bullet,
		Rule:     p.Rule,
		KeyWidth: p.KeyWidth,
	}
}
