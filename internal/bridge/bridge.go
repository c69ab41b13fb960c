// Package bridge feeds toolkit events into the UI input model.
package bridge

import (
	"errors"

	"github.com/Norgate-AV/ovly/internal/event"
	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/ui"
)

// ErrDetached is returned by PrepareFrame when no window is attached.
var ErrDetached = errors.New("platform bridge has no window attached")

// SizeFunc returns the current client size of the overlay window.
type SizeFunc func() geom.Vec2

// Bridge implements interfaces.Platform on top of event.Event.
type Bridge struct {
	size SizeFunc
}

// New returns a bridge reading the display size from size.
func New(size SizeFunc) *Bridge {
	return &Bridge{size: size}
}

// Detach drops the window, e.g. once it has been destroyed.
func (b *Bridge) Detach() {
	b.size = nil
}

// PrepareFrame refreshes the display size for the coming frame.
func (b *Bridge) PrepareFrame(io *ui.IO) error {
	if b.size == nil {
		return ErrDetached
	}

	io.DisplaySize = b.size()
	return nil
}

// PrepareRender is called right before the UI is rendered. The cursor shape
// is left to the OS, so there is nothing to do.
func (b *Bridge) PrepareRender(*ui.IO) {}

// HandleEvent applies one input event to io.
func (b *Bridge) HandleEvent(io *ui.IO, ev event.Event) {
	switch ev.Kind {
	case event.CursorMoved:
		io.SetMousePos(float32(ev.X), float32(ev.Y))

	case event.MouseButton:
		io.SetMouseButton(ev.Button, ev.Pressed)

	case event.MouseWheel:
		io.MouseWheel += float32(ev.Y)

	case event.Key:
		io.SetKey(ui.Key(ev.KeyCode), ev.Pressed)
		io.KeyCtrl = ev.Ctrl
		io.KeyShift = ev.Shift

	case event.Char:
		io.AddInputChar(ev.Rune)

	case event.Focused:
		if !ev.Pressed {
			clear(io.KeysDown[:])
			io.KeyCtrl = false
			io.KeyShift = false
		}

	case event.Resized:
		io.DisplaySize = geom.Vec2{X: float32(ev.X), Y: float32(ev.Y)}
	}
}
