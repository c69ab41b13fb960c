package windows

// foregroundAPI is the part of user32 the foreground switch uses.
type foregroundAPI interface {
	SetForeground(hwnd uintptr) bool
	Foreground() uintptr
	ThreadOf(hwnd uintptr) uintptr
	AttachInput(from, to uintptr, attach bool) bool
}

// takeForeground brings hwnd to the foreground, attaching to the input queue
// of the current foreground thread when the plain call is refused. It never
// waits; the caller checks the result again on a later frame if it cares.
func takeForeground(api foregroundAPI, hwnd uintptr) bool {
	if api.SetForeground(hwnd) && api.Foreground() == hwnd {
		return true
	}

	fg := api.Foreground()
	if fg == hwnd {
		return true
	}
	if fg == 0 {
		return false
	}

	fgThread := api.ThreadOf(fg)
	ownThread := api.ThreadOf(hwnd)
	if fgThread == 0 || ownThread == 0 {
		return false
	}

	if !api.AttachInput(ownThread, fgThread, true) {
		return false
	}

	ok := api.SetForeground(hwnd)
	api.AttachInput(ownThread, fgThread, false)

	return ok && api.Foreground() == hwnd
}
