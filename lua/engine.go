package lua

import (
	"os"
	"path/filepath"
	"strings"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/splitview/ui/layout"
)

// Engine wraps gopher-lua and manages the VM lifecycle.
// It runs layout scripts and collects the layout they declare through the
// global split table.
type Engine struct {
	L *glua.LState

	// Cached table reference
	splitTable *glua.LTable

	// Last tree passed to split.layout
	root *layout.Node
}

// NewEngine creates an Engine. Call Init before running scripts.
func NewEngine() *Engine {
	return &Engine{}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
// It registers the API but does NOT load any scripts - that's the caller's job.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}

	e.L = glua.NewState()
	e.root = nil

	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// Layout returns the tree declared by the last successful split.layout call.
func (e *Engine) Layout() (layout.Node, bool) {
	if e.root == nil {
		return layout.Node{}, false
	}
	return *e.root, true
}

// --- Execution Primitives (Mechanism) ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem.
// It temporarily adjusts package.path to allow local requires.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	// Temporarily prepend script's directory to package.path
	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	newPath := dir + "/?.lua;" + oldPath
	e.L.SetField(pkg, "path", glua.LString(newPath))

	err = e.L.DoFile(absPath)

	// Restore original path
	e.L.SetField(pkg, "path", glua.LString(oldPath))

	return err
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.splitTable = e.L.NewTable()
	e.L.SetGlobal("split", e.splitTable)

	e.registerSplitFuncs()
}

// --- Private Helpers ---

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
