// Package splitview implements the layout and constraint engine behind a
// split view: panes separated by draggable sashes along one axis.
//
// The engine keeps three things:
//   - a container whose extent along the axis bounds the layout
//   - an arena of panes indexed 0..n-1
//   - an arena of sashes indexed 1..n-1; boundaries 0 and n are the container edges
//
// Shells register elements, call Mount once, and forward pointer events to
// Select, Drag and Release. Every drag ends with SyncSizes, which rewrites all
// pane geometry from the sash positions.
//
// All methods must be called from a single goroutine (the UI event loop).
package splitview
