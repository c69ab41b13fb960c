//go:build windows

package windows

import (
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// Alerter reports fatal errors in a message box, since the overlay usually
// runs without a visible console.
type Alerter struct{}

func (Alerter) ShowError(title, message string) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		t, _ = windows.UTF16PtrFromString("ovly")
	}

	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		m, _ = windows.UTF16PtrFromString("An unexpected error occurred.")
	}

	win.MessageBox(0, m, t, win.MB_ICONERROR|win.MB_OK|win.MB_TOPMOST)
}
