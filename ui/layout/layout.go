// Package layout describes a tree of nested split views.
package layout

import (
	"errors"
	"fmt"

	"github.com/drake/splitview/geometry"
)

// Node is either a split (it has children) or a leaf pane.
//
// Split fields:
//   - Orientation: "horizontal" (default) or "vertical"
//   - MinSize: minimum pane extent in cells (0 = engine default)
//   - Sash: glyph drawn for each sash ("" = default line)
//
// Pane fields:
//   - Title: header shown on the first line
//   - Text: body text, one entry per line after splitting on newlines
type Node struct {
	Title       string  `yaml:"title,omitempty" json:"title,omitempty"`
	Text        string  `yaml:"text,omitempty" json:"text,omitempty"`
	Orientation string  `yaml:"orientation,omitempty" json:"orientation,omitempty"`
	MinSize     float64 `yaml:"min_size,omitempty" json:"min_size,omitempty"`
	Sash        string  `yaml:"sash,omitempty" json:"sash,omitempty"`
	Children    []Node  `yaml:"children,omitempty" json:"children,omitempty"`
}

// IsSplit reports whether the node holds child panes.
func (n Node) IsSplit() bool {
	return len(n.Children) > 0
}

// Axis returns the parsed orientation. Invalid values yield Horizontal; use
// Validate to reject them.
func (n Node) Axis() geometry.Axis {
	a, _ := geometry.ParseAxis(n.Orientation)
	return a
}

// Validate checks the whole tree.
func (n Node) Validate() error {
	return n.validate("root")
}

func (n Node) validate(path string) error {
	if _, err := geometry.ParseAxis(n.Orientation); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !n.IsSplit() && (n.Orientation != "" || n.Sash != "") {
		return fmt.Errorf("%s: split has no children", path)
	}
	if n.MinSize < 0 {
		return fmt.Errorf("%s: min_size must not be negative, got %v", path, n.MinSize)
	}
	for i, child := range n.Children {
		if err := child.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// ErrEmptyLayout is returned when a layout declares no root.
var ErrEmptyLayout = errors.New("layout has no root")

// Config is a complete layout document.
type Config struct {
	Root *Node `yaml:"root" json:"root"`
}

// Validate checks that a root exists and is well formed.
func (c Config) Validate() error {
	if c.Root == nil {
		return ErrEmptyLayout
	}
	return c.Root.Validate()
}

// Default returns a vertical split of two horizontal three-pane splits.
func Default() Config {
	row := func(name string) Node {
		n := Node{Orientation: "horizontal"}
		for i := 1; i <= 3; i++ {
			n.Children = append(n.Children, Node{
				Title: fmt.Sprintf("%s %d", name, i),
				Text:  "Drag a sash to resize.",
			})
		}
		return n
	}
	root := Node{
		Orientation: "vertical",
		MinSize:     3,
		Children:    []Node{row("top"), row("bottom")},
	}
	for i := range root.Children {
		root.Children[i].MinSize = 8
	}
	return Config{Root: &root}
}
