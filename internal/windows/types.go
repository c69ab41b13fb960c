package windows

// WindowInfo describes a visible top-level window.
type WindowInfo struct {
	Hwnd  uintptr
	Title string
	Class string
	Pid   uint32
}
