package lua

import (
	"fmt"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/splitview/ui/layout"
)

// registerSplitFuncs registers the split.* layout builders.
func (e *Engine) registerSplitFuncs() {
	// split.pane{title=..., text=...} or split.pane(title, text): A leaf pane
	e.L.SetField(e.splitTable, "pane", e.L.NewFunction(func(L *glua.LState) int {
		pane := L.NewTable()
		switch arg := L.Get(1).(type) {
		case *glua.LTable:
			L.SetField(pane, "title", glua.LString(optString(L, arg, "title")))
			L.SetField(pane, "text", glua.LString(optString(L, arg, "text")))
		case glua.LString:
			L.SetField(pane, "title", arg)
			L.SetField(pane, "text", glua.LString(L.OptString(2, "")))
		default:
			L.ArgError(1, "table or string expected")
		}
		L.Push(pane)
		return 1
	}))

	// split.hsplit{child, ..., min_size=N, sash="|"}: Panes side by side
	e.L.SetField(e.splitTable, "hsplit", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(newSplitTable(L, "horizontal"))
		return 1
	}))

	// split.vsplit{child, ..., min_size=N, sash="-"}: Panes stacked top to bottom
	e.L.SetField(e.splitTable, "vsplit", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(newSplitTable(L, "vertical"))
		return 1
	}))

	// split.layout(node): Set the root of the layout
	e.L.SetField(e.splitTable, "layout", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.CheckTable(1)
		node, err := toNode(L, tbl, "root")
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		if err := node.Validate(); err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		e.root = &node
		return 0
	}))
}

// newSplitTable converts the builder argument at stack index 1 into a node
// table with an explicit orientation and a children list.
func newSplitTable(L *glua.LState, orientation string) *glua.LTable {
	opts := L.CheckTable(1)
	if opts.Len() == 0 {
		L.ArgError(1, "split has no children")
	}

	children := L.NewTable()
	for i := 1; i <= opts.Len(); i++ {
		children.Append(opts.RawGetInt(i))
	}

	split := L.NewTable()
	L.SetField(split, "orientation", glua.LString(orientation))
	L.SetField(split, "children", children)
	if v := L.GetField(opts, "min_size"); v != glua.LNil {
		L.SetField(split, "min_size", v)
	}
	if v := L.GetField(opts, "sash"); v != glua.LNil {
		L.SetField(split, "sash", v)
	}
	return split
}

// toNode reads a node table. Plain tables with the same fields as the
// builders produce are accepted too.
func toNode(L *glua.LState, tbl *glua.LTable, path string) (layout.Node, error) {
	node := layout.Node{
		Title:       optString(L, tbl, "title"),
		Text:        optString(L, tbl, "text"),
		Orientation: optString(L, tbl, "orientation"),
		Sash:        optString(L, tbl, "sash"),
	}

	switch v := L.GetField(tbl, "min_size").(type) {
	case glua.LNumber:
		node.MinSize = float64(v)
	case *glua.LNilType:
	default:
		return node, fmt.Errorf("%s: min_size must be a number, got %s", path, v.Type())
	}

	switch v := L.GetField(tbl, "children").(type) {
	case *glua.LTable:
		for i := 1; i <= v.Len(); i++ {
			childPath := fmt.Sprintf("%s.children[%d]", path, i-1)
			ct, ok := v.RawGetInt(i).(*glua.LTable)
			if !ok {
				return node, fmt.Errorf("%s: expected table, got %s", childPath, v.RawGetInt(i).Type())
			}
			child, err := toNode(L, ct, childPath)
			if err != nil {
				return node, err
			}
			node.Children = append(node.Children, child)
		}
	case *glua.LNilType:
	default:
		return node, fmt.Errorf("%s: children must be a table, got %s", path, v.Type())
	}

	return node, nil
}

func optString(L *glua.LState, tbl *glua.LTable, field string) string {
	if s, ok := L.GetField(tbl, field).(glua.LString); ok {
		return string(s)
	}
	return ""
}
