// Package pointer delivers document-wide pointer events to subscribed split views.
package pointer

import "sync"

// Kind identifies a pointer event.
type Kind int

const (
	Down Kind = iota // Button pressed
	Move             // Pointer moved (button held or not)
	Up               // Button released
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a pointer event in absolute terminal cells.
type Event struct {
	Kind Kind
	X, Y int
}

// Handler receives pointer events.
type Handler func(Event)

// Hub fans pointer events out to every subscriber in subscription order.
// Publish is expected to run on the UI event loop; handlers run synchronously.
type Hub struct {
	mu       sync.Mutex
	nextID   int
	order    []int
	handlers map[int]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: make(map[int]Handler)}
}

// Subscribe registers h and returns a cancel func that removes it.
// Calling cancel more than once is harmless.
func (h *Hub) Subscribe(handler Handler) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.handlers[id] = handler
	h.order = append(h.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.handlers, id)
	for i, o := range h.order {
		if o == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Publish delivers ev to all current subscribers. Handlers may cancel their
// own or other subscriptions while being called.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	handlers := make([]Handler, 0, len(h.order))
	for _, id := range h.order {
		handlers = append(handlers, h.handlers[id])
	}
	h.mu.Unlock()

	for _, handler := range handlers {
		handler(ev)
	}
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers)
}
