package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Sashes
	Sash       lipgloss.Style
	SashActive lipgloss.Style

	// Panes
	PaneTitle lipgloss.Style
	PaneBody  lipgloss.Style

	// Misc
	Muted lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Sash: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		SashActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Magenta while dragging
			Bold(true),

		PaneTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		PaneBody: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
