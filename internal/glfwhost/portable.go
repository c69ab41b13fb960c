package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/style"
)

// portableWindow is the NativeWindow used where no OS integration exists.
// Style words are kept for bookkeeping only; GLFW hints already made the
// window borderless, floating and transparent.
type portableWindow struct {
	win     *glfw.Window
	style   style.Style
	exStyle style.ExStyle
}

func newPortableWindow(win *glfw.Window) *portableWindow {
	return &portableWindow{win: win}
}

func (w *portableWindow) Handle() uintptr { return 0 }

func (w *portableWindow) Style() style.Style { return w.style }

func (w *portableWindow) SetStyle(s style.Style) error {
	w.style = s
	return nil
}

func (w *portableWindow) ExStyle() style.ExStyle { return w.exStyle }

func (w *portableWindow) SetExStyle(s style.ExStyle) error {
	w.exStyle = s
	return nil
}

func (w *portableWindow) SetActive() error {
	w.win.Focus()
	return nil
}

func (w *portableWindow) Show() { w.win.Show() }

func (w *portableWindow) SetTopmost() error {
	w.win.SetAttrib(glfw.Floating, glfw.True)
	return nil
}

func (w *portableWindow) EnableBlurBehind(geom.Rect) error { return nil }

func (w *portableWindow) DisableShadow() error { return nil }

func (w *portableWindow) Bounds() geom.Rect {
	x, y := w.win.GetPos()
	width, height := w.win.GetSize()
	return geom.Rect{X: x, Y: y, W: width, H: height}
}

func (w *portableWindow) SetBounds(r geom.Rect) error {
	w.win.SetPos(r.X, r.Y)
	w.win.SetSize(r.W, r.H)
	return nil
}
