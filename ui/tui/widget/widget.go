package widget

// Widget is the interface for cell-sized UI elements.
type Widget interface {
	SetSize(width, height int)
	View() string
}
