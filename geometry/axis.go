// Package geometry maps an element's position and size onto a single layout axis.
package geometry

import (
	"fmt"
	"strings"
)

// Axis selects which screen direction position and size are measured along.
type Axis int

const (
	Horizontal Axis = iota // x-axis: left edge and width
	Vertical               // y-axis: top edge and height
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseAxis converts "horizontal" or "vertical" (any case) to an Axis.
// An empty string yields Horizontal.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}
