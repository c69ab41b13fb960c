// Package interfaces defines the collaborators of the overlay core so that the
// render loop can be driven by real backends or by test mocks.
package interfaces

import (
	"github.com/Norgate-AV/ovly/internal/event"
	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/style"
	"github.com/Norgate-AV/ovly/internal/ui"
)

// NativeWindow is the OS window behind the overlay.
type NativeWindow interface {
	Handle() uintptr
	Style() style.Style
	SetStyle(s style.Style) error
	ExStyle() style.ExStyle
	SetExStyle(s style.ExStyle) error
	// SetActive makes the window the active window of its thread.
	SetActive() error
	// Show uses the OS show primitive, not the toolkit's visibility setter.
	Show()
	SetTopmost() error
	EnableBlurBehind(region geom.Rect) error
	DisableShadow() error
	Bounds() geom.Rect
	SetBounds(r geom.Rect) error
}

// TargetSnapshot is the last known state of the target window.
type TargetSnapshot struct {
	Title  string
	Bounds geom.Rect
	Alive  bool
}

// TargetTracker follows the external window the overlay is drawn over.
type TargetTracker interface {
	// Update refreshes the snapshot. It may reposition the overlay.
	Update(w NativeWindow)
	Snapshot() TargetSnapshot
}

// InputRelay feeds OS input into the UI regardless of overlay focus.
type InputRelay interface {
	Update(w NativeWindow, io *ui.IO)
}

// Platform bridges the window toolkit and the UI input model.
type Platform interface {
	PrepareFrame(io *ui.IO) error
	PrepareRender(io *ui.IO)
	HandleEvent(io *ui.IO, ev event.Event)
}

// EventSource delivers loop events. Next blocks until an event is available.
type EventSource interface {
	Next() event.Event
	RequestRedraw()
	// Wake interrupts a blocked Next. Safe to call from any goroutine.
	Wake()
}

// Canvas is the render target of one paint.
type Canvas interface {
	Clear(c ui.Color)
	// Finish presents the frame (buffer swap).
	Finish() error
}

// Renderer submits UI draw data to the graphics backend.
type Renderer interface {
	Render(dd *ui.DrawData) error
}

// Alerter shows a fatal error to the user.
type Alerter interface {
	ShowError(title, message string)
}

// WindowOptions describes the overlay window to create.
type WindowOptions struct {
	Title     string
	Bounds    geom.Rect
	FrameRate int
}

// Backend creates the overlay's native window and graphics context.
type Backend interface {
	// Monitors lists the attached displays, primary first.
	Monitors() ([]geom.Rect, error)
	// Open creates the hidden, undecorated overlay window and its graphics context.
	Open(opts WindowOptions) (Host, error)
}

// Host is an open overlay window together with everything the loop needs from it.
type Host interface {
	Window() NativeWindow
	Events() EventSource
	Canvas() Canvas
	Platform() Platform
	// Relay is the toolkit's own input relay, used when none is supplied.
	Relay() InputRelay
	NewRenderer(font *ui.Font) (Renderer, error)
	Close()
}
