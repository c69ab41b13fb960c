// Package event defines the events consumed by the overlay render loop.
package event

// Kind identifies an event.
type Kind int

const (
	// NewEvents starts a loop iteration.
	NewEvents Kind = iota
	// MainEventsCleared is emitted once all OS input for the iteration was delivered.
	MainEventsCleared
	// RedrawRequested asks for a paint phase.
	RedrawRequested
	// CloseRequested asks the loop to exit.
	CloseRequested

	// Platform input events, forwarded to the UI platform bridge.
	CursorMoved
	MouseButton
	MouseWheel
	Key
	Char
	Focused
	Resized
)

func (k Kind) String() string {
	switch k {
	case NewEvents:
		return "new-events"
	case MainEventsCleared:
		return "main-events-cleared"
	case RedrawRequested:
		return "redraw-requested"
	case CloseRequested:
		return "close-requested"
	case CursorMoved:
		return "cursor-moved"
	case MouseButton:
		return "mouse-button"
	case MouseWheel:
		return "mouse-wheel"
	case Key:
		return "key"
	case Char:
		return "char"
	case Focused:
		return "focused"
	case Resized:
		return "resized"
	default:
		return "unknown"
	}
}

// Event is a single loop event. Only the fields relevant to Kind are set.
type Event struct {
	Kind Kind

	X, Y    float64 // CursorMoved position, MouseWheel offsets, Resized size
	Button  int     // MouseButton: 0 left, 1 right, 2 middle
	Pressed bool    // MouseButton, Key, Focused
	KeyCode int     // Key: platform-neutral key code (see ui.Key)
	Ctrl    bool    // Key modifiers
	Shift   bool
	Rune    rune // Char
}

// Of builds an event with no payload.
func Of(k Kind) Event {
	return Event{Kind: k}
}
