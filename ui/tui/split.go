package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/splitview/geometry"
	"github.com/drake/splitview/splitview"
	"github.com/drake/splitview/ui/layout"
	"github.com/drake/splitview/ui/pointer"
	"github.com/drake/splitview/ui/tui/style"
	"github.com/drake/splitview/ui/tui/widget"
)

// Rect is a rectangle in absolute terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Settings apply to every split of a tree.
type Settings struct {
	MinSize   float64 // used by nodes without their own min size
	Unclamped bool
	Observer  splitview.Observer
	Styles    *style.Styles // nil = style.DefaultStyles()
}

// child is either a nested split or a leaf pane.
type child struct {
	split *Split
	pane  *widget.Pane
}

// span is a half-open cell range [start, end) along the split axis.
type span struct {
	start, end int
}

// Split is one split view instance. It owns an engine whose coordinates are
// local to the split's container; nested splits own independent engines.
type Split struct {
	axis     geometry.Axis
	engine   *splitview.Engine
	cache    *renderCache
	styles   style.Styles
	children []child
	sashes   []*widget.Sash // index 0 unused

	container *geometry.Box
	panes     []*geometry.Box
	bars      []*geometry.Box // sash elements, index 0 unused

	rect         Rect
	mounted      bool
	cancel       func()
	lastX, lastY int
}

// NewSplit builds a split tree from node. A leaf node becomes a split with
// a single pane.
func NewSplit(node layout.Node, settings Settings) *Split {
	styles := style.DefaultStyles()
	if settings.Styles != nil {
		styles = *settings.Styles
	}
	return newSplit(node, settings, styles, newRenderCache(renderCacheSize))
}

func newSplit(node layout.Node, settings Settings, styles style.Styles, cache *renderCache) *Split {
	minSize := node.MinSize
	if minSize <= 0 {
		minSize = settings.MinSize
	}

	s := &Split{
		axis: node.Axis(),
		engine: splitview.New(splitview.Options{
			Orientation: node.Axis(),
			MinSize:     minSize,
			Unclamped:   settings.Unclamped,
			Observer:    settings.Observer,
		}),
		cache:  cache,
		styles: styles,
	}

	nodes := node.Children
	if !node.IsSplit() {
		nodes = []layout.Node{node}
	}
	s.sashes = make([]*widget.Sash, len(nodes))
	for i, n := range nodes {
		if n.IsSplit() {
			s.children = append(s.children, child{split: newSplit(n, settings, styles, cache)})
		} else {
			s.children = append(s.children, child{pane: widget.NewPane(n.Title, n.Text, styles)})
		}
		if i > 0 {
			s.sashes[i] = widget.NewSash(s.axis, node.Sash, styles)
		}
	}
	return s
}

// Engine exposes the split's layout engine.
func (s *Split) Engine() *splitview.Engine { return s.engine }

// Rect returns the absolute rectangle the split occupies.
func (s *Split) Rect() Rect { return s.rect }

// Len returns the number of panes.
func (s *Split) Len() int { return len(s.children) }

// Child returns the nested split in pane i, or nil for a leaf pane.
func (s *Split) Child(i int) *Split {
	if i < 0 || i >= len(s.children) {
		return nil
	}
	return s.children[i].split
}

// Mount registers the container, panes and sashes with the engine, runs the
// initial distribution and subscribes to pointer events. Nested splits are
// mounted at their pane rectangles. Mounting twice is a no-op.
func (s *Split) Mount(hub *pointer.Hub, r Rect) {
	if s.mounted {
		return
	}
	s.mounted = true
	s.rect = r

	full := geometry.Rect{Width: float64(r.Width), Height: float64(r.Height)}
	s.container = geometry.NewBox(full)
	s.engine.RegisterContainer(s.container)

	s.panes = make([]*geometry.Box, len(s.children))
	s.bars = make([]*geometry.Box, len(s.children))
	for i := range s.children {
		s.panes[i] = geometry.NewBox(full)
		s.engine.RegisterPane(i, s.panes[i])
		if i > 0 {
			bar := full
			if s.axis == geometry.Horizontal {
				bar.Width = 1
			} else {
				bar.Height = 1
			}
			s.bars[i] = geometry.NewBox(bar)
			s.engine.RegisterSash(i, s.bars[i])
		}
	}
	s.engine.Mount()

	for i, c := range s.children {
		if c.split != nil {
			c.split.Mount(hub, s.paneRect(i))
		}
	}

	s.cancel = hub.Subscribe(s.handle)
}

// Close releases the pointer subscription of this split and every nested
// split. It ends any drag in progress.
func (s *Split) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.engine.Release()
	for _, c := range s.children {
		if c.split != nil {
			c.split.Close()
		}
	}
}

func (s *Split) handle(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Down:
		s.lastX, s.lastY = ev.X, ev.Y
		if k, ok := s.hitSash(ev.X, ev.Y); ok {
			s.engine.Select(k)
		}

	case pointer.Move:
		dx, dy := ev.X-s.lastX, ev.Y-s.lastY
		s.lastX, s.lastY = ev.X, ev.Y
		if !s.engine.Dragging() {
			return
		}
		s.engine.Drag(geometry.PointerEvent{
			X:         float64(ev.X - s.rect.X),
			Y:         float64(ev.Y - s.rect.Y),
			MovementX: float64(dx),
			MovementY: float64(dy),
		})
		s.relayoutChildren()

	case pointer.Up:
		s.engine.Release()
	}
}

// hitSash returns the sash drawn at the absolute cell (x, y).
func (s *Split) hitSash(x, y int) (int, bool) {
	if !s.rect.Contains(x, y) {
		return 0, false
	}
	cell := x - s.rect.X
	if s.axis == geometry.Vertical {
		cell = y - s.rect.Y
	}
	spans := s.spans()
	for k := 1; k < len(spans); k++ {
		if spans[k].start == cell {
			return k, true
		}
	}
	return 0, false
}

// relayout moves the split to r. Sashes stay where they are unless the new
// container edge no longer leaves room for them.
func (s *Split) relayout(r Rect) {
	s.rect = r
	s.container.SetWidth(float64(r.Width))
	s.container.SetHeight(float64(r.Height))
	for i := range s.children {
		s.setCross(s.panes[i], r)
		if s.bars[i] != nil {
			s.setCross(s.bars[i], r)
		}
	}
	s.engine.Fit()
	s.relayoutChildren()
}

func (s *Split) setCross(b *geometry.Box, r Rect) {
	if s.axis == geometry.Horizontal {
		b.SetHeight(float64(r.Height))
	} else {
		b.SetWidth(float64(r.Width))
	}
}

func (s *Split) relayoutChildren() {
	for i, c := range s.children {
		if c.split != nil {
			c.split.relayout(s.paneRect(i))
		}
	}
}

func (s *Split) extent() int {
	if s.axis == geometry.Vertical {
		return s.rect.Height
	}
	return s.rect.Width
}

// spans returns the cells of each pane along the axis: pane i covers
// [round(boundary(i)), round(boundary(i+1))), clamped to the container and
// kept in order. For i >= 1 the first cell belongs to sash i.
func (s *Split) spans() []span {
	size := s.extent()
	out := make([]span, len(s.children))
	prev := 0
	for i := range out {
		start := prev
		if i > 0 {
			start = max(prev, cellOf(s.engine.SashBoundary(i), size))
		}
		end := size
		if i < len(out)-1 {
			end = max(start, cellOf(s.engine.SashBoundary(i+1), size))
		}
		out[i] = span{start: start, end: end}
		prev = end
	}
	return out
}

func cellOf(pos float64, size int) int {
	return min(max(int(math.Round(pos)), 0), size)
}

// paneRect returns the absolute rectangle of pane i's content, excluding
// the sash cell.
func (s *Split) paneRect(i int) Rect {
	sp := s.spans()[i]
	if i > 0 && sp.end > sp.start {
		sp.start++
	}
	if s.axis == geometry.Vertical {
		return Rect{X: s.rect.X, Y: s.rect.Y + sp.start, Width: s.rect.Width, Height: sp.end - sp.start}
	}
	return Rect{X: s.rect.X + sp.start, Y: s.rect.Y, Width: sp.end - sp.start, Height: s.rect.Height}
}

// View renders the split at exactly its rectangle's size.
func (s *Split) View() string {
	if !s.mounted {
		return ""
	}

	selected, _ := s.engine.Selected()
	dragging := s.engine.Dragging()

	var parts []string
	for i, sp := range s.spans() {
		if sp.end <= sp.start {
			continue
		}
		if i > 0 {
			sash := s.sashes[i]
			sash.Active = dragging && selected == i
			if s.axis == geometry.Vertical {
				sash.SetSize(s.rect.Width, 1)
			} else {
				sash.SetSize(1, s.rect.Height)
			}
			parts = append(parts, sash.View())
		}

		r := s.paneRect(i)
		if r.Width <= 0 || r.Height <= 0 {
			continue
		}
		c := s.children[i]
		if c.split != nil {
			parts = append(parts, c.split.View())
		} else {
			parts = append(parts, s.cache.render(c.pane, r.Width, r.Height))
		}
	}

	if len(parts) == 0 {
		return ""
	}
	if s.axis == geometry.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
