//go:build windows

package windows

import (
	"github.com/lxn/win"

	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/ui"
)

var relayKeys = map[ui.Key]int32{
	ui.KeyTab:       win.VK_TAB,
	ui.KeyLeft:      win.VK_LEFT,
	ui.KeyRight:     win.VK_RIGHT,
	ui.KeyUp:        win.VK_UP,
	ui.KeyDown:      win.VK_DOWN,
	ui.KeyHome:      win.VK_HOME,
	ui.KeyEnd:       win.VK_END,
	ui.KeyInsert:    win.VK_INSERT,
	ui.KeyDelete:    win.VK_DELETE,
	ui.KeyBackspace: win.VK_BACK,
	ui.KeyEnter:     win.VK_RETURN,
	ui.KeyEscape:    win.VK_ESCAPE,
	ui.KeyPause:     win.VK_PAUSE,
	ui.KeyA:         VK_A,
	ui.KeyC:         VK_C,
	ui.KeyV:         VK_V,
	ui.KeyX:         VK_X,
	ui.KeyF1:        win.VK_F1,
	ui.KeyF2:        win.VK_F2,
	ui.KeyF3:        win.VK_F3,
	ui.KeyF4:        win.VK_F4,
	ui.KeyF5:        win.VK_F5,
	ui.KeyF6:        win.VK_F6,
	ui.KeyF7:        win.VK_F7,
	ui.KeyF8:        win.VK_F8,
	ui.KeyF9:        win.VK_F9,
	ui.KeyF10:       win.VK_F10,
	ui.KeyF11:       win.VK_F11,
	ui.KeyF12:       win.VK_F12,
}

// InputRelay polls the global cursor, mouse buttons and keys so the UI sees
// input while the overlay is click-through and never receives messages.
type InputRelay struct{}

func NewInputRelay() *InputRelay {
	return &InputRelay{}
}

func (r *InputRelay) Update(w interfaces.NativeWindow, io *ui.IO) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		io.InvalidateMouse()
	} else {
		b := w.Bounds()
		if b.Contains(geom.Vec2{X: float32(pt.X), Y: float32(pt.Y)}) {
			io.SetMousePos(float32(int(pt.X)-b.X), float32(int(pt.Y)-b.Y))
		} else {
			io.InvalidateMouse()
		}
	}

	io.SetMouseButton(ui.MouseLeft, keyDown(win.VK_LBUTTON))
	io.SetMouseButton(ui.MouseRight, keyDown(win.VK_RBUTTON))
	io.SetMouseButton(ui.MouseMiddle, keyDown(win.VK_MBUTTON))

	for k, vk := range relayKeys {
		io.SetKey(k, keyDown(vk))
	}

	io.KeyCtrl = keyDown(win.VK_CONTROL)
	io.KeyShift = keyDown(win.VK_SHIFT)
}

func keyDown(vk int32) bool {
	return uint16(win.GetAsyncKeyState(vk))&0x8000 != 0
}
