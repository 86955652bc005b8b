package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// VisibleLen returns the visible display width of a string (excluding ANSI codes).
func VisibleLen(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Fit truncates or right-pads s so that its visible width is exactly width.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if pad := width - VisibleLen(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Block reshapes s into exactly height lines of exactly width cells.
// Extra lines are dropped; missing lines are blank.
func Block(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	if s != "" {
		lines = strings.Split(s, "\n")
	}
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = Fit(line, width)
	}
	return strings.Join(out, "\n")
}

// FilterClearSequences removes ANSI sequences that would clear the screen.
// Pane text is user supplied and must not wipe the rest of the layout.
func FilterClearSequences(line string) string {
	line = strings.ReplaceAll(line, "\x1b[2J", "")   // Clear entire screen
	line = strings.ReplaceAll(line, "\x1b[H", "")    // Move cursor to home
	line = strings.ReplaceAll(line, "\x1b[0;0H", "") // Move cursor to 0,0
	line = strings.ReplaceAll(line, "\x1b[1;1H", "") // Move cursor to 1,1
	return line
}
