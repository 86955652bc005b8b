package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/splitview/ui/layout"
)

// Run starts the TUI with the given layout and blocks until exit.
func Run(node layout.Node, settings Settings) error {
	program := tea.NewProgram(
		NewModel(node, settings),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := program.Run()
	if m, ok := final.(Model); ok {
		m.close()
	}
	return err
}
