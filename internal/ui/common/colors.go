package common

import "github.com/charmbracelet/lipgloss"

// Tokyo Night-inspired palette
var (
	ColorBackground = lipgloss.Color("#1a1b26")
	ColorForeground = lipgloss.Color("#a9b1d6")
	ColorMuted      = lipgloss.Color("#565f89")
	ColorBorder     = lipgloss.Color("#292e42")

	ColorPrimary   = lipgloss.Color("#7aa2f7") // sticky header, target block
	ColorSecondary = lipgloss.Color("#bb9af7")
	ColorSuccess   = lipgloss.Color("#9ece6a") // enter
	ColorWarning   = lipgloss.Color("#e0af68") // init
	ColorError     = lipgloss.Color("#f7768e") // exit

	ColorSurface1 = lipgloss.Color("#1f2335")
)

// EventColor returns the color used for an event type name.
func EventColor(eventType string) lipgloss.Color {
	switch eventType {
	case "enter":
		return ColorSuccess
	case "exit":
		return ColorError
	case "init":
		return ColorWarning
	default:
		return ColorForeground
	}
}
