package common

import "github.com/charmbracelet/lipgloss"

// Styles contains the demo's lipgloss styles
type Styles struct {
	Title  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Sticky lipgloss.Style
	Target lipgloss.Style

	Help    lipgloss.Style
	HelpKey lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the default styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Body: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Sticky: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorPrimary),

		Target: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Background(ColorSurface1),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),
	}
}

// EventLabel renders an event type name in its color.
func EventLabel(eventType string) string {
	return lipgloss.NewStyle().Foreground(EventColor(eventType)).Bold(true).Render(eventType)
}
