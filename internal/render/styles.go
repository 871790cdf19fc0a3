package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles groups the lipgloss styles used for text output. Styles are bound
// to a renderer so color can follow the destination writer.
type Styles struct {
	Title      lipgloss.Style
	Position   lipgloss.Style
	Keyword    lipgloss.Style
	Identifier lipgloss.Style
	Literal    lipgloss.Style
	Operator   lipgloss.Style
	Illegal    lipgloss.Style
	Statement  lipgloss.Style
	Error      lipgloss.Style
	OK         lipgloss.Style
	Muted      lipgloss.Style
}

// NewStyles creates the style set for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		Position: r.NewStyle().
			Foreground(colorMuted),

		Keyword: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),

		Identifier: r.NewStyle().
			Foreground(colorSecondary),

		Literal: r.NewStyle().
			Foreground(colorAccent),

		Operator: r.NewStyle(),

		Illegal: r.NewStyle().
			Foreground(colorError).
			Bold(true),

		Statement: r.NewStyle(),

		Error: r.NewStyle().
			Foreground(colorError),

		OK: r.NewStyle().
			Foreground(colorSecondary),

		Muted: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
	}
}
