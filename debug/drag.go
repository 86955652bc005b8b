package debug

import (
	"log"

	"github.com/drake/splitview/splitview"
)

// Ensure DragLogger implements splitview.Observer.
var _ splitview.Observer = (*DragLogger)(nil)

// DragLogger writes one line per drag event.
type DragLogger struct {
	logger *log.Logger
}

// NewDragLogger creates a DragLogger. If logger is nil, returns nil.
func NewDragLogger(logger *log.Logger) *DragLogger {
	if logger == nil {
		return nil
	}
	return &DragLogger{logger: logger}
}

func (d *DragLogger) DragStart(sash int) {
	if d == nil {
		return
	}
	d.logger.Printf("[DEBUG] drag start sash=%d", sash)
}

func (d *DragLogger) DragMove(step splitview.DragStep) {
	if d == nil {
		return
	}
	d.logger.Printf("[DEBUG] drag sash=%d pointer=%.1f dir=%d pushed=%v",
		step.Sash, step.Pointer, step.Direction, step.Moved)
}

func (d *DragLogger) DragEnd(sash int) {
	if d == nil {
		return
	}
	d.logger.Printf("[DEBUG] drag end sash=%d", sash)
}
