package splitview

import (
	"math"

	"github.com/drake/splitview/geometry"
)

// Select starts dragging the sash at idx. Unregistered indexes are ignored.
func (e *Engine) Select(idx int) {
	if e.Sash(idx) == nil {
		return
	}
	e.selected = idx
	e.dragging = true
	e.opts.Observer.DragStart(idx)
}

// Release ends any drag. It is safe to call when nothing is selected.
func (e *Engine) Release() {
	if !e.dragging {
		return
	}
	e.dragging = false
	e.opts.Observer.DragEnd(e.selected)
}

// Selected returns the sash under drag.
func (e *Engine) Selected() (int, bool) {
	return e.selected, e.dragging
}

// Dragging reports whether a sash is selected.
func (e *Engine) Dragging() bool {
	return e.dragging
}

// Drag moves the selected sash to the pointer, pushes farther sashes in the
// direction of motion to keep MinSize between them, then resyncs all panes.
// Events without motion along the axis are ignored.
func (e *Engine) Drag(ev geometry.PointerEvent) {
	if !e.dragging || e.container == nil {
		return
	}
	k := e.selected
	sash := e.Sash(k)
	if sash == nil {
		return
	}

	pointer, direction := sash.FromPointer(ev)
	if direction == 0 {
		return
	}
	if !e.opts.Unclamped {
		pointer = e.clamp(k, pointer, direction)
	}

	sash.SetPosition(pointer)
	moved := e.cascade(k, pointer, direction)
	e.SyncSizes()

	e.opts.Observer.DragMove(DragStep{
		Sash:      k,
		Pointer:   pointer,
		Direction: direction,
		Moved:     moved,
	})
}

// cascade walks outward from sash k in the direction of motion. Each visited
// sash closer than MinSize*stack to the pointer is pushed to exactly that
// distance; the walk stops at the first sash already far enough away.
func (e *Engine) cascade(k int, pointer float64, direction int) []int {
	var moved []int
	minSize := e.opts.MinSize
	d := float64(direction)

	for i, stack := k+direction, 1; ; i, stack = i+direction, stack+1 {
		sash := e.Sash(i)
		if sash == nil {
			break
		}

		distance := (pointer - sash.Position()) * d * -1
		if distance > minSize*float64(stack) {
			break
		}

		sash.SetPosition(pointer + minSize*float64(stack)*d)
		moved = append(moved, i)
	}
	return moved
}

// clamp bounds the pointer-derived position of sash k so that the pane
// behind it keeps MinSize and the cascade ahead of it fits in the container.
// A container too small for every pane's MinSize only bounds it to the edges.
func (e *Engine) clamp(k int, p float64, direction int) float64 {
	size := e.container.Size()
	minSize := e.opts.MinSize
	n := float64(len(e.panes))

	lo, hi := 0.0, size
	if minSize*n <= size {
		lo = minSize * float64(k)
		hi = size - minSize*(n-float64(k))
		if direction > 0 {
			lo = math.Max(lo, e.SashBoundary(k-1)+minSize)
		} else {
			hi = math.Min(hi, e.SashBoundary(k+1)-minSize)
		}
	}
	return math.Max(lo, math.Min(p, hi))
}
