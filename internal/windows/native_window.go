//go:build windows

package windows

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/logger"
	"github.com/Norgate-AV/ovly/internal/style"
)

// ErrNoForeground is returned when the overlay could not take the foreground.
var ErrNoForeground = errors.New("overlay could not take the foreground")

// NativeWindow drives the overlay HWND through user32 and DWM.
type NativeWindow struct {
	hwnd win.HWND
	log  logger.Logger
}

// ErrForeignWindow is returned when a handle belongs to another process.
var ErrForeignWindow = errors.New("window belongs to another process")

// AttachWindow wraps the overlay window GLFW created in this process.
func AttachWindow(handle uintptr, log logger.Logger) (*NativeWindow, error) {
	if log == nil {
		log = logger.Discard()
	}

	if handle == 0 || !IsWindow(handle) {
		return nil, fmt.Errorf("invalid window handle 0x%x", handle)
	}

	if pid := GetWindowPid(handle); pid != uint32(os.Getpid()) {
		return nil, fmt.Errorf("%w: handle 0x%x, pid %d", ErrForeignWindow, handle, pid)
	}

	log.Debug("Attached to overlay window", slog.Uint64("hwnd", uint64(handle)))
	return &NativeWindow{hwnd: win.HWND(handle), log: log}, nil
}

func (w *NativeWindow) Handle() uintptr { return uintptr(w.hwnd) }

func (w *NativeWindow) Style() style.Style {
	return style.Style(uint32(win.GetWindowLongPtr(w.hwnd, win.GWL_STYLE)))
}

func (w *NativeWindow) SetStyle(s style.Style) error {
	win.SetLastError(0)
	return checkLong("GWL_STYLE", win.SetWindowLongPtr(w.hwnd, win.GWL_STYLE, uintptr(s)))
}

func (w *NativeWindow) ExStyle() style.ExStyle {
	return style.ExStyle(uint32(win.GetWindowLongPtr(w.hwnd, win.GWL_EXSTYLE)))
}

func (w *NativeWindow) SetExStyle(s style.ExStyle) error {
	win.SetLastError(0)
	return checkLong("GWL_EXSTYLE", win.SetWindowLongPtr(w.hwnd, win.GWL_EXSTYLE, uintptr(s)))
}

// checkLong inspects a SetWindowLongPtr result. Zero is only a failure when
// the last error is set, since zero is also a valid previous value.
func checkLong(index string, prev uintptr) error {
	if prev != 0 {
		return nil
	}

	if code := win.GetLastError(); code != 0 {
		return fmt.Errorf("SetWindowLongPtr(%s) failed: error %d", index, code)
	}

	return nil
}

// SetActive activates the overlay, falling back to a foreground switch when
// another thread owns the foreground.
func (w *NativeWindow) SetActive() error {
	_, _, _ = procSetActiveWindow.Call(uintptr(w.hwnd))

	if fg, _, _ := procGetForegroundWindow.Call(); fg == uintptr(w.hwnd) {
		return nil
	}

	w.log.Debug("SetActiveWindow did not take the foreground, trying SetForegroundWindow")

	if !setForeground(uintptr(w.hwnd)) {
		return ErrNoForeground
	}

	return nil
}

func (w *NativeWindow) Show() {
	win.ShowWindow(w.hwnd, win.SW_SHOW)
}

func (w *NativeWindow) SetTopmost() error {
	if !win.SetWindowPos(w.hwnd, win.HWND_TOPMOST, 0, 0, 0, 0, win.SWP_NOMOVE|win.SWP_NOSIZE) {
		return fmt.Errorf("SetWindowPos(HWND_TOPMOST) failed: %w", windows.GetLastError())
	}

	return nil
}

// EnableBlurBehind turns on DWM blur behind for region, which lets the
// compositor honour the framebuffer alpha.
func (w *NativeWindow) EnableBlurBehind(region geom.Rect) error {
	rgn := win.CreateRectRgn(int32(region.X), int32(region.Y), int32(region.Right()), int32(region.Bottom()))
	if rgn == 0 {
		return errors.New("CreateRectRgn failed")
	}
	defer win.DeleteObject(win.HGDIOBJ(rgn))

	bb := DWM_BLURBEHIND{
		DwFlags:  DWM_BB_ENABLE | DWM_BB_BLURREGION,
		FEnable:  1,
		HRgnBlur: uintptr(rgn),
	}

	hr, _, _ := procDwmEnableBlurBehindWindow.Call(uintptr(w.hwnd), uintptr(unsafe.Pointer(&bb)))
	if hr != 0 {
		return fmt.Errorf("DwmEnableBlurBehindWindow failed: HRESULT 0x%08x", uint32(hr))
	}

	return nil
}

// DisableShadow turns off non-client rendering, which removes the drop shadow.
func (w *NativeWindow) DisableShadow() error {
	policy := int32(DWMNCRP_DISABLED)

	hr, _, _ := procDwmSetWindowAttribute.Call(
		uintptr(w.hwnd),
		DWMWA_NCRENDERING_POLICY,
		uintptr(unsafe.Pointer(&policy)),
		unsafe.Sizeof(policy),
	)

	if hr != 0 {
		return fmt.Errorf("DwmSetWindowAttribute failed: HRESULT 0x%08x", uint32(hr))
	}

	return nil
}

func (w *NativeWindow) Bounds() geom.Rect {
	left, top, right, bottom, err := GetWindowBounds(uintptr(w.hwnd))
	if err != nil {
		return geom.Rect{}
	}

	return geom.FromEdges(left, top, right, bottom)
}

func (w *NativeWindow) SetBounds(r geom.Rect) error {
	if !win.MoveWindow(w.hwnd, int32(r.X), int32(r.Y), int32(r.W), int32(r.H), true) {
		return fmt.Errorf("MoveWindow failed: %w", windows.GetLastError())
	}

	return nil
}
