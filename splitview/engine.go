package splitview

import (
	"math"

	"github.com/drake/splitview/geometry"
)

// Engine holds the layout state of one split view.
type Engine struct {
	opts Options

	container *geometry.View
	panes     []*geometry.View // indexed by pane; nil until registered
	sashes    []*geometry.View // indexed by boundary; slot 0 is never used

	selected int
	dragging bool
	mounted  bool
}

// New creates an Engine with no registered elements.
func New(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// --- Registration ---

// RegisterContainer sets the container element. Only the first call counts.
func (e *Engine) RegisterContainer(el geometry.Element) {
	if el == nil || e.container != nil {
		return
	}
	e.container = geometry.NewView(el, e.opts.Orientation)
}

// RegisterPane registers the element for pane idx. A second registration at
// the same index is ignored.
func (e *Engine) RegisterPane(idx int, el geometry.Element) {
	if el == nil || idx < 0 {
		return
	}
	e.panes = grow(e.panes, idx)
	if e.panes[idx] != nil {
		return
	}
	e.panes[idx] = geometry.NewView(el, e.opts.Orientation)
}

// RegisterSash registers the element for the sash at boundary idx (idx >= 1).
// A second registration at the same index is ignored.
func (e *Engine) RegisterSash(idx int, el geometry.Element) {
	if el == nil || idx < 1 {
		return
	}
	e.sashes = grow(e.sashes, idx)
	if e.sashes[idx] != nil {
		return
	}
	e.sashes[idx] = geometry.NewView(el, e.opts.Orientation)
}

func grow(views []*geometry.View, idx int) []*geometry.View {
	if idx < len(views) {
		return views
	}
	return append(views, make([]*geometry.View, idx+1-len(views))...)
}

// --- Accessors ---

// PaneCount returns the number of pane slots (highest registered index + 1).
func (e *Engine) PaneCount() int {
	return len(e.panes)
}

// SashCount returns the number of registered sashes.
func (e *Engine) SashCount() int {
	n := 0
	for _, s := range e.sashes {
		if s != nil {
			n++
		}
	}
	return n
}

// Pane returns the view for pane idx, or nil.
func (e *Engine) Pane(idx int) *geometry.View {
	if idx < 0 || idx >= len(e.panes) {
		return nil
	}
	return e.panes[idx]
}

// Sash returns the view for the sash at boundary idx, or nil.
func (e *Engine) Sash(idx int) *geometry.View {
	if idx < 1 || idx >= len(e.sashes) {
		return nil
	}
	return e.sashes[idx]
}

// ContainerSize returns the container extent, or 0 before registration.
func (e *Engine) ContainerSize() float64 {
	if e.container == nil {
		return 0
	}
	return e.container.Size()
}

// --- Layout ---

// Mount runs the initial distribution the first time it is called and does
// nothing afterwards.
func (e *Engine) Mount() {
	if e.mounted {
		return
	}
	e.Distribute()
}

// Ready reports whether the initial distribution has run.
func (e *Engine) Ready() bool {
	return e.mounted
}

// Distribute gives every pane an equal share of the container and places
// each sash at the start of the pane after it. Shares are not rounded.
func (e *Engine) Distribute() {
	if e.container == nil || len(e.panes) == 0 {
		return
	}

	size := e.container.Size() / float64(len(e.panes))

	for i, pane := range e.panes {
		at := size * float64(i)
		if pane != nil {
			pane.SetSize(size)
			pane.SetPosition(at)
			at = pane.Size() * float64(i)
		}
		if sash := e.Sash(i); sash != nil {
			sash.SetPosition(at)
		}
	}
	e.mounted = true
}

// SashBoundary returns the offset of boundary idx: 0 for the leading edge,
// the container size where no sash is registered, else the sash position.
func (e *Engine) SashBoundary(idx int) float64 {
	if e.container == nil || idx == 0 {
		return 0
	}
	sash := e.Sash(idx)
	if sash == nil {
		return e.container.Size()
	}
	return sash.Position()
}

// SyncSizes rewrites every pane's position and size from the boundaries on
// either side of it.
func (e *Engine) SyncSizes() {
	for i, pane := range e.panes {
		if pane == nil {
			continue
		}
		from := e.SashBoundary(i)
		to := e.SashBoundary(i + 1)

		pane.SetSize(to - from)
		pane.SetPosition(from)
	}
}

// Fit pulls sashes back inside the container after its size changed, then
// resyncs. Sashes keep MinSize between each other while the container can
// hold every pane at MinSize; below that the panes share the container
// evenly at most. In unclamped mode sashes are only kept inside [0, size]
// and in order.
func (e *Engine) Fit() {
	if e.container == nil || len(e.panes) == 0 {
		return
	}
	size := e.container.Size()
	gap := math.Min(e.opts.MinSize, size/float64(len(e.panes)))
	if e.opts.Unclamped || gap < 0 {
		gap = 0
	}

	for k := len(e.panes) - 1; k >= 1; k-- {
		sash := e.Sash(k)
		if sash == nil {
			continue
		}
		if hi := e.SashBoundary(k+1) - gap; sash.Position() > hi {
			sash.SetPosition(hi)
		}
	}
	for k := 1; k < len(e.panes); k++ {
		sash := e.Sash(k)
		if sash == nil {
			continue
		}
		if lo := e.SashBoundary(k-1) + gap; sash.Position() < lo {
			sash.SetPosition(lo)
		}
	}
	e.SyncSizes()
}
