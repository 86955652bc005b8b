// Package debug provides runtime diagnostics for the split view.
package debug

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Enabled returns true if debug mode is active (SPLITVIEW_DEBUG=1).
func Enabled() bool {
	return os.Getenv("SPLITVIEW_DEBUG") == "1"
}

// OpenLog opens (appending) a log file for the program. The terminal belongs
// to the UI, so diagnostics never go to stderr while it runs.
func OpenLog(path string) (*log.Logger, *os.File, error) {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	f, err := tea.LogToFileWith(path, "", logger)
	if err != nil {
		return nil, nil, err
	}
	return logger, f, nil
}
