package splitview

import "github.com/drake/splitview/geometry"

// DefaultMinSize is the minimum pane extent when Options.MinSize is unset.
const DefaultMinSize = 50.0

// Options configures an Engine.
type Options struct {
	// Orientation selects the axis panes are laid out along.
	Orientation geometry.Axis

	// MinSize is the minimum pane extent enforced while dragging.
	// Values <= 0 fall back to DefaultMinSize.
	MinSize float64

	// Unclamped disables clamping of the pointer-derived sash position.
	// Only the cascade constrains the drag, so a sash can be pushed past the
	// container edge and the pane behind the sash can shrink below MinSize.
	Unclamped bool

	// Observer receives drag lifecycle callbacks. Nil means no observer.
	Observer Observer
}

func (o Options) withDefaults() Options {
	if o.MinSize <= 0 {
		o.MinSize = DefaultMinSize
	}
	if o.Observer == nil {
		o.Observer = NoopObserver{}
	}
	return o
}
