package ui

import (
	"time"

	"github.com/Norgate-AV/ovly/internal/geom"
)

// Mouse buttons.
const (
	MouseLeft = iota
	MouseRight
	MouseMiddle
	mouseButtons
)

// IO is the per-frame input and output state shared between the platform
// and the UI. Backends write the input half; the UI writes the capture flags.
type IO struct {
	DisplaySize geom.Vec2
	DeltaTime   time.Duration
	Framerate   float32

	MousePos   geom.Vec2
	MouseValid bool
	MouseDown  [mouseButtons]bool
	MouseWheel float32

	KeysDown   [keyCount]bool
	KeyCtrl    bool
	KeyShift   bool
	InputChars []rune

	// Clipboard is nil when no clipboard backend is available.
	Clipboard Clipboard

	// WantCaptureMouse is set when the UI wants mouse input for itself.
	WantCaptureMouse bool
	// WantCaptureKeyboard is set while a text field has keyboard focus.
	WantCaptureKeyboard bool

	mousePrev [mouseButtons]bool
	keysPrev  [keyCount]bool
}

// UpdateDeltaTime records the time since the previous frame and updates the
// smoothed frame rate.
func (io *IO) UpdateDeltaTime(d time.Duration) {
	io.DeltaTime = d
	if d <= 0 {
		return
	}

	fps := float32(time.Second) / float32(d)
	if io.Framerate == 0 {
		io.Framerate = fps
		return
	}

	io.Framerate += (fps - io.Framerate) * 0.05
}

// SetMousePos records the cursor position in overlay client coordinates.
func (io *IO) SetMousePos(x, y float32) {
	io.MousePos = geom.Vec2{X: x, Y: y}
	io.MouseValid = true
}

// InvalidateMouse marks the cursor as outside the overlay.
func (io *IO) InvalidateMouse() {
	io.MouseValid = false
}

// SetMouseButton records a button state. Out-of-range buttons are ignored.
func (io *IO) SetMouseButton(button int, down bool) {
	if button >= 0 && button < mouseButtons {
		io.MouseDown[button] = down
	}
}

// SetKey records a key state.
func (io *IO) SetKey(k Key, down bool) {
	if k > KeyNone && k < keyCount {
		io.KeysDown[k] = down
	}
}

// AddInputChar queues a typed character for the focused text field.
func (io *IO) AddInputChar(r rune) {
	io.InputChars = append(io.InputChars, r)
}

// KeyPressed reports a key that went down since the previous frame.
func (io *IO) KeyPressed(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return io.KeysDown[k] && !io.keysPrev[k]
}

// MouseClicked reports a button that went down since the previous frame.
func (io *IO) MouseClicked(button int) bool {
	if button < 0 || button >= mouseButtons {
		return false
	}
	return io.MouseDown[button] && !io.mousePrev[button]
}

// MouseReleased reports a button that went up since the previous frame.
func (io *IO) MouseReleased(button int) bool {
	if button < 0 || button >= mouseButtons {
		return false
	}
	return !io.MouseDown[button] && io.mousePrev[button]
}

// endFrame rolls the edge-detection state over and drops one-shot input.
func (io *IO) endFrame() {
	io.mousePrev = io.MouseDown
	io.keysPrev = io.KeysDown
	io.InputChars = io.InputChars[:0]
	io.MouseWheel = 0
}
