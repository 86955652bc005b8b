package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/drake/splitview/ui/tui/style"
	"github.com/drake/splitview/ui/tui/util"
)

// Compile-time check that Pane implements Widget
var _ Widget = (*Pane)(nil)

// Pane is a leaf of the split tree: a title line over a body cropped to the
// remaining height.
type Pane struct {
	Title string
	Text  string

	body   viewport.Model
	styles style.Styles
	width  int
	height int
}

// NewPane creates a new pane widget.
func NewPane(title, text string, styles style.Styles) *Pane {
	return &Pane{
		Title:  title,
		Text:   text,
		body:   viewport.New(0, 0),
		styles: styles,
	}
}

// SetSize implements Widget. The title takes one line when present.
func (p *Pane) SetSize(width, height int) {
	p.width = width
	p.height = height

	bodyHeight := height
	if p.Title != "" && bodyHeight > 0 {
		bodyHeight--
	}
	p.body.Width = width
	p.body.Height = bodyHeight
	p.body.SetContent(p.content())
}

// Size returns the last size passed to SetSize.
func (p *Pane) Size() (int, int) {
	return p.width, p.height
}

// content clips every line of the pane text to the pane width.
func (p *Pane) content() string {
	if p.width <= 0 {
		return ""
	}
	lines := strings.Split(util.FilterClearSequences(p.Text), "\n")
	for i, line := range lines {
		lines[i] = util.Fit(line, p.width)
	}
	return strings.Join(lines, "\n")
}

// View implements Widget. The result is exactly width x height cells.
func (p *Pane) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	var parts []string
	if p.Title != "" {
		parts = append(parts, p.styles.PaneTitle.Render(util.Fit(" "+p.Title, p.width)))
	}
	if p.body.Height > 0 {
		parts = append(parts, p.styles.PaneBody.Render(util.Block(p.body.View(), p.width, p.body.Height)))
	}

	return util.Block(strings.Join(parts, "\n"), p.width, p.height)
}
