package core

// EventKind is a discrete input signal, abstracted from physical keys and
// pointer buttons. Key presses and pointer presses both map to EventActivate.
type EventKind int

const (
	EventNone     EventKind = iota
	EventActivate           // any key, tap or click - context-dependent in effect
	EventQuit               // window close, q, Ctrl+C
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventActivate:
		return "Activate"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Events is the ordered sequence of input events collected during one frame.
// Unlike a set of flags, it keeps arrival order and repeated occurrences:
// two activations in one frame are two separate events.
type Events struct {
	kinds []EventKind
}

// Push appends an event. EventNone is ignored.
func (e *Events) Push(k EventKind) {
	if k == EventNone {
		return
	}
	e.kinds = append(e.kinds, k)
}

// Kinds returns the queued events in arrival order.
// The slice is only valid until the next Clear.
func (e *Events) Kinds() []EventKind {
	return e.kinds
}

// Clear drops all queued events, keeping the backing storage.
func (e *Events) Clear() {
	e.kinds = e.kinds[:0]
}
