package splitview

// DragStep describes one applied pointer-move while dragging.
type DragStep struct {
	Sash      int     // Index of the dragged sash
	Pointer   float64 // Position the dragged sash was moved to
	Direction int     // -1 or 1
	Moved     []int   // Sashes pushed by the cascade, in hop order
}

// Observer receives drag lifecycle events from an Engine.
type Observer interface {
	DragStart(sash int)
	DragMove(step DragStep)
	DragEnd(sash int)
}

// NoopObserver ignores all events. Embed it to implement a subset.
type NoopObserver struct{}

func (NoopObserver) DragStart(int)     {}
func (NoopObserver) DragMove(DragStep) {}
func (NoopObserver) DragEnd(int)       {}

// MultiObserver fans out drag events to multiple observers.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver. Nil observers are dropped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall calls fn with panic recovery. One observer failing shouldn't block others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// DragStart forwards the call to all observers.
func (m *MultiObserver) DragStart(sash int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.DragStart(sash) })
	}
}

// DragMove forwards the call to all observers.
func (m *MultiObserver) DragMove(step DragStep) {
	for _, obs := range m.observers {
		safeCall(func() { obs.DragMove(step) })
	}
}

// DragEnd forwards the call to all observers.
func (m *MultiObserver) DragEnd(sash int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.DragEnd(sash) })
	}
}
