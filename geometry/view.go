package geometry

// PointerEvent is a pointer-move sample. Movement holds the delta since the
// previous sample; terminals do not report it, so shells compute it.
type PointerEvent struct {
	X, Y                 float64
	MovementX, MovementY float64
}

// View exposes an Element's geometry along one axis.
type View struct {
	element Element
	axis    Axis
}

// NewView wraps element for the given axis.
func NewView(element Element, axis Axis) *View {
	return &View{element: element, axis: axis}
}

// Element returns the wrapped element.
func (v *View) Element() Element {
	return v.element
}

// Axis returns the axis the view measures along.
func (v *View) Axis() Axis {
	return v.axis
}

// Position returns the left edge (horizontal) or top edge (vertical).
func (v *View) Position() float64 {
	r := v.element.Bounds()
	if v.axis == Vertical {
		return r.Y
	}
	return r.X
}

// SetPosition moves the element's edge along the axis.
func (v *View) SetPosition(p float64) {
	if v.axis == Vertical {
		v.element.SetTop(p)
	} else {
		v.element.SetLeft(p)
	}
}

// Size returns the extent along the axis.
func (v *View) Size() float64 {
	r := v.element.Bounds()
	if v.axis == Vertical {
		return r.Height
	}
	return r.Width
}

// SetSize resizes the element along the axis.
func (v *View) SetSize(s float64) {
	if v.axis == Vertical {
		v.element.SetHeight(s)
	} else {
		v.element.SetWidth(s)
	}
}

// FromPointer returns the pointer coordinate along the axis and the sign
// (-1, 0 or 1) of its movement along the axis.
func (v *View) FromPointer(e PointerEvent) (float64, int) {
	if v.axis == Vertical {
		return e.Y, sign(e.MovementY)
	}
	return e.X, sign(e.MovementX)
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
