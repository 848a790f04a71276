package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles used by the preview.
type Styles struct {
	Title lipgloss.Style
	Text  lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyles builds the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true),
		Text:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}
