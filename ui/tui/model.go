package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/splitview/ui/layout"
	"github.com/drake/splitview/ui/pointer"
)

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	hub      *pointer.Hub
	root     *Split
	node     layout.Node
	settings Settings
	keys     keyMap

	width    int
	height   int
	quitting bool
}

// NewModel creates a model that renders node once the terminal size is known.
func NewModel(node layout.Node, settings Settings) Model {
	return Model{
		hub:      pointer.NewHub(),
		node:     node,
		settings: settings,
		keys:     defaultKeyMap(),
	}
}

// Root returns the mounted split tree, or nil before the first WindowSizeMsg.
func (m Model) Root() *Split { return m.root }

// Hub returns the pointer hub every split subscribes to.
func (m Model) Hub() *pointer.Hub { return m.hub }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.remount()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.close()
			return m, tea.Quit
		}
	}

	return m, nil
}

// remount replaces the split tree with a fresh one at the terminal size.
// Sash positions are not carried over; the new tree is distributed evenly.
func (m *Model) remount() {
	m.close()
	m.root = NewSplit(m.node, m.settings)
	m.root.Mount(m.hub, Rect{Width: m.width, Height: m.height})
}

func (m *Model) close() {
	if m.root != nil {
		m.root.Close()
		m.root = nil
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	ev := pointer.Event{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		ev.Kind = pointer.Down
	case tea.MouseActionMotion:
		ev.Kind = pointer.Move
	case tea.MouseActionRelease:
		ev.Kind = pointer.Up
	default:
		return
	}
	m.hub.Publish(ev)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.root == nil {
		return ""
	}
	return m.root.View()
}
