package widget

import (
	"strings"

	"github.com/drake/splitview/geometry"
	"github.com/drake/splitview/ui/tui/style"
	"github.com/drake/splitview/ui/tui/util"
)

// Compile-time check that Sash implements Widget
var _ Widget = (*Sash)(nil)

// Sash renders the one-cell divider between two panes. Along a horizontal
// split it is a column, along a vertical split a row.
type Sash struct {
	Active bool

	axis   geometry.Axis
	glyph  string
	styles style.Styles
	width  int
	height int
}

// NewSash creates a sash widget. An empty glyph selects a box-drawing line
// matching the axis.
func NewSash(axis geometry.Axis, glyph string, styles style.Styles) *Sash {
	if glyph == "" {
		glyph = "│"
		if axis == geometry.Vertical {
			glyph = "─"
		}
	}
	return &Sash{
		axis:   axis,
		glyph:  util.Fit(glyph, 1),
		styles: styles,
	}
}

// SetSize implements Widget.
func (s *Sash) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// View implements Widget.
func (s *Sash) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	st := s.styles.Sash
	if s.Active {
		st = s.styles.SashActive
	}

	row := strings.Repeat(s.glyph, s.width)
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = st.Render(row)
	}
	return strings.Join(rows, "\n")
}
