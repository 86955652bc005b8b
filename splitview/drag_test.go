package splitview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drake/splitview/geometry"
)

// drag selects sash k and applies one horizontal move to x with the given movement.
func drag(e *Engine, k int, x, dx float64) {
	e.Select(k)
	e.Drag(geometry.PointerEvent{X: x, MovementX: dx})
}

func TestDrag_WithinMarginsDoesNotCascade(t *testing.T) {
	for _, unclamped := range []bool{false, true} {
		e := newTestEngine(t, 900, 3, Options{Unclamped: unclamped})

		drag(e, 1, 400, 1)

		assert.Equal(t, []float64{400, 600}, sashPositions(e))
		assert.Equal(t, []float64{400, 200, 300}, paneSizes(e))
		assertLayoutInvariants(t, e)
	}
}

func TestDrag_PushesNeighbourWhenTooClose(t *testing.T) {
	for _, unclamped := range []bool{false, true} {
		e := newTestEngine(t, 900, 3, Options{Unclamped: unclamped})

		// (580-600)*1*-1 = 20 is not > 50, so sash 2 is pushed to 580+50.
		drag(e, 1, 580, 1)

		assert.Equal(t, []float64{580, 630}, sashPositions(e))
		assert.Equal(t, []float64{580, 50, 270}, paneSizes(e))
		assertLayoutInvariants(t, e)
	}
}

func TestDrag_PastNeighbourPushesIt(t *testing.T) {
	for _, unclamped := range []bool{false, true} {
		e := newTestEngine(t, 900, 3, Options{Unclamped: unclamped})

		// (650-600)*1*-1 = -50 is not > 50, so sash 2 is pushed to 650+50.
		drag(e, 1, 650, 1)

		assert.Equal(t, []float64{650, 700}, sashPositions(e))
		assert.Equal(t, []float64{650, 50, 200}, paneSizes(e))
	}
}

func TestDrag_CascadeStacksMinSize(t *testing.T) {
	e := newTestEngine(t, 1000, 5, Options{})
	// sashes at 200, 400, 600, 800

	drag(e, 1, 520, 1)

	// sash 2: 400 within 50 of 520 -> 570
	// sash 3: 600 within 100 of 520 -> 620
	// sash 4: 800 is 280 away, more than 150 -> untouched
	assert.Equal(t, []float64{520, 570, 620, 800}, sashPositions(e))
	assert.Equal(t, []float64{520, 50, 50, 180, 200}, paneSizes(e))
}

func TestDrag_NegativeDirectionCascadesBackward(t *testing.T) {
	e := newTestEngine(t, 400, 4, Options{})
	// sashes at 100, 200, 300

	drag(e, 3, 120, -1)

	// Clamped to 150 so three panes of 50 fit behind the sash.
	assert.Equal(t, []float64{50, 100, 150}, sashPositions(e))
	assert.Equal(t, []float64{50, 50, 50, 250}, paneSizes(e))
}

func TestDrag_UnclampedNegativeCascadeCanStarveFirstPane(t *testing.T) {
	e := newTestEngine(t, 400, 4, Options{Unclamped: true})

	drag(e, 3, 120, -1)

	assert.Equal(t, []float64{20, 70, 120}, sashPositions(e))
	assert.Equal(t, []float64{20, 50, 50, 280}, paneSizes(e))
}

func TestDrag_ClampKeepsCascadeInsideContainer(t *testing.T) {
	clamped := newTestEngine(t, 900, 3, Options{})
	drag(clamped, 1, 880, 1)
	assert.Equal(t, []float64{800, 850}, sashPositions(clamped))
	assert.Equal(t, []float64{800, 50, 50}, paneSizes(clamped))

	raw := newTestEngine(t, 900, 3, Options{Unclamped: true})
	drag(raw, 1, 880, 1)
	assert.Equal(t, []float64{880, 930}, sashPositions(raw))
	assert.Equal(t, []float64{880, 50, -30}, paneSizes(raw), "raw cascade overshoots the container")
	assertLayoutInvariants(t, raw)
}

func TestDrag_ClampProtectsPaneBehindSash(t *testing.T) {
	// Pointer reported behind the sash while moving forward.
	clamped := newTestEngine(t, 900, 3, Options{})
	drag(clamped, 2, 320, 1)
	assert.Equal(t, []float64{300, 350}, sashPositions(clamped))
	assert.Equal(t, []float64{300, 50, 550}, paneSizes(clamped))

	raw := newTestEngine(t, 900, 3, Options{Unclamped: true})
	drag(raw, 2, 320, 1)
	assert.Equal(t, []float64{300, 320}, sashPositions(raw))
	assert.Equal(t, []float64{300, 20, 580}, paneSizes(raw))
}

func TestDrag_ContainerTooSmallOnlyClampsToEdges(t *testing.T) {
	e := newTestEngine(t, 120, 3, Options{})
	// 3*50 > 120: sashes at 40, 80

	drag(e, 1, 500, 1)

	assert.Equal(t, 120.0, e.Sash(1).Position())
	assert.Equal(t, 170.0, e.Sash(2).Position())
	assertLayoutInvariants(t, e)
}

func TestDrag_PositiveDirectionNeverMovesEarlierSashes(t *testing.T) {
	e := newTestEngine(t, 1000, 5, Options{MinSize: 10})
	before := sashPositions(e)

	drag(e, 3, 790, 1)
	e.Drag(geometry.PointerEvent{X: 990, MovementX: 1})

	after := sashPositions(e)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[1], after[1])
	assert.Equal(t, 980.0, after[2])
	assert.Equal(t, 990.0, after[3])
}

func TestDrag_IgnoresEventsWithoutAxisMotion(t *testing.T) {
	e := newTestEngine(t, 900, 3, Options{})

	e.Select(1)
	e.Drag(geometry.PointerEvent{X: 500, Y: 40, MovementY: 5})

	assert.Equal(t, []float64{300, 600}, sashPositions(e))
}

func TestDrag_IdleAndUnknownSashAreNoops(t *testing.T) {
	e := newTestEngine(t, 900, 3, Options{})

	e.Drag(geometry.PointerEvent{X: 500, MovementX: 1})
	assert.Equal(t, []float64{300, 600}, sashPositions(e), "no drag while idle")

	e.Select(7)
	assert.False(t, e.Dragging(), "selecting an unregistered sash is ignored")
	e.Drag(geometry.PointerEvent{X: 500, MovementX: 1})
	assert.Equal(t, []float64{300, 600}, sashPositions(e))

	e.Release()
	assert.False(t, e.Dragging())
}

func TestDrag_ReleaseEndsSession(t *testing.T) {
	e := newTestEngine(t, 900, 3, Options{})

	e.Select(2)
	k, ok := e.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, k)

	e.Release()
	_, ok = e.Selected()
	assert.False(t, ok)

	e.Drag(geometry.PointerEvent{X: 700, MovementX: 1})
	assert.Equal(t, []float64{300, 600}, sashPositions(e), "moves after release are ignored")
}

func TestDrag_WithoutContainerIsNoop(t *testing.T) {
	e := New(Options{})
	sash := geometry.NewBox(geometry.Rect{X: 3})
	e.RegisterSash(1, sash)

	e.Select(1)
	e.Drag(geometry.PointerEvent{X: 9, MovementX: 1})

	assert.Equal(t, 3.0, sash.Bounds().X)
}

type recordingObserver struct {
	NoopObserver
	events []string
	steps  []DragStep
}

func (r *recordingObserver) DragStart(sash int) {
	r.events = append(r.events, "start")
}

func (r *recordingObserver) DragMove(step DragStep) {
	r.events = append(r.events, "move")
	r.steps = append(r.steps, step)
}

func (r *recordingObserver) DragEnd(sash int) {
	r.events = append(r.events, "end")
}

type panickingObserver struct{ NoopObserver }

func (panickingObserver) DragMove(DragStep) { panic("boom") }

func TestObserver_ReceivesDragLifecycle(t *testing.T) {
	rec := &recordingObserver{}
	obs := NewMultiObserver(panickingObserver{}, nil, rec)
	e := newTestEngine(t, 900, 3, Options{Observer: obs})

	e.Select(1)
	e.Drag(geometry.PointerEvent{X: 580, MovementX: 1})
	e.Drag(geometry.PointerEvent{X: 580, MovementY: 1})
	e.Release()
	e.Release()

	assert.Equal(t, []string{"start", "move", "end"}, rec.events)
	if assert.Len(t, rec.steps, 1) {
		assert.Equal(t, DragStep{Sash: 1, Pointer: 580, Direction: 1, Moved: []int{2}}, rec.steps[0])
	}
}
