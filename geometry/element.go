package geometry

// Rect is an axis-aligned box in cells (fractional values are allowed).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Element is a visual element whose geometry can be read and written.
// The layout engine never owns elements; it only wraps them in a View.
type Element interface {
	Bounds() Rect
	SetLeft(v float64)
	SetTop(v float64)
	SetWidth(v float64)
	SetHeight(v float64)
}

// Compile-time check that Box implements Element
var _ Element = (*Box)(nil)

// Box is an in-memory Element.
type Box struct {
	Rect Rect
}

// NewBox creates a box with the given bounds.
func NewBox(r Rect) *Box {
	return &Box{Rect: r}
}

// Bounds implements Element.
func (b *Box) Bounds() Rect { return b.Rect }

// SetLeft implements Element.
func (b *Box) SetLeft(v float64) { b.Rect.X = v }

// SetTop implements Element.
func (b *Box) SetTop(v float64) { b.Rect.Y = v }

// SetWidth implements Element.
func (b *Box) SetWidth(v float64) { b.Rect.Width = v }

// SetHeight implements Element.
func (b *Box) SetHeight(v float64) { b.Rect.Height = v }
