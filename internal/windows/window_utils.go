//go:build windows

package windows

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// GetWindowText retrieves the text of a window
func GetWindowText(hwnd uintptr) string {
	buf := make([]uint16, 256)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return windows.UTF16ToString(buf)
}

// GetClassName retrieves the class name of a window
func GetClassName(hwnd uintptr) string {
	buf := make([]uint16, 256)

	ret, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return windows.UTF16ToString(buf)
}

// IsWindow checks if a window handle is valid
func IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// IsWindowVisible checks if a window is visible
func IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

// GetWindowPid retrieves the process ID of a window
func GetWindowPid(hwnd uintptr) uint32 {
	var pid uint32

	ret, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if ret == 0 {
		return 0
	}

	return pid
}

// GetWindowBounds returns the window rectangle in screen coordinates.
func GetWindowBounds(hwnd uintptr) (left, top, right, bottom int32, err error) {
	var r win.RECT
	if !win.GetWindowRect(win.HWND(hwnd), &r) {
		return 0, 0, 0, 0, fmt.Errorf("GetWindowRect failed: %w", windows.GetLastError())
	}

	return r.Left, r.Top, r.Right, r.Bottom, nil
}

var (
	foundWindows []WindowInfo
	windowsMu    sync.Mutex
	enumCallback = windows.NewCallback(enumWindowsCallback)
)

func enumWindowsCallback(hwnd uintptr, _ uintptr) uintptr {
	if IsWindowVisible(hwnd) {
		foundWindows = append(foundWindows, WindowInfo{
			Hwnd:  hwnd,
			Title: GetWindowText(hwnd),
			Class: GetClassName(hwnd),
			Pid:   GetWindowPid(hwnd),
		})
	}

	return 1 // Continue enumeration
}

// EnumerateWindows performs a thread-safe enumeration of visible top-level windows
func EnumerateWindows() []WindowInfo {
	windowsMu.Lock()
	defer windowsMu.Unlock()

	foundWindows = nil
	ret, _, _ := procEnumWindows.Call(enumCallback, 0)
	if ret == 0 {
		return nil
	}

	// Copy so later enumerations cannot race with the caller
	out := make([]WindowInfo, len(foundWindows))
	copy(out, foundWindows)

	return out
}

// user32Foreground implements foregroundAPI with user32.
type user32Foreground struct{}

func (user32Foreground) SetForeground(hwnd uintptr) bool {
	ret, _, _ := procSetForegroundWindow.Call(hwnd)
	return ret != 0
}

func (user32Foreground) Foreground() uintptr {
	fg, _, _ := procGetForegroundWindow.Call()
	return fg
}

func (user32Foreground) ThreadOf(hwnd uintptr) uintptr {
	tid, _, _ := procGetWindowThreadProcessId.Call(hwnd, 0)
	return tid
}

func (user32Foreground) AttachInput(from, to uintptr, attach bool) bool {
	var flag uintptr
	if attach {
		flag = 1
	}
	ret, _, _ := procAttachThreadInput.Call(from, to, flag)
	return ret != 0
}

func setForeground(hwnd uintptr) bool {
	return takeForeground(user32Foreground{}, hwnd)
}
