//go:build windows

package platform

import (
	"github.com/Norgate-AV/ovly/internal/glfwhost"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/windows"
)

// New returns the Win32 services: GLFW for the window and GL context, user32
// and DWM for everything the overlay does to its HWND.
func New(opts Options) *Services {
	log := opts.logger()

	return &Services{
		Backend: glfwhost.NewBackend(glfwhost.Options{
			Log: log,
			Native: func(handle uintptr) (interfaces.NativeWindow, error) {
				w, err := windows.AttachWindow(handle, log)
				if err != nil {
					return nil, err
				}
				return w, nil
			},
		}),
		FindTarget: func(query string) (interfaces.TargetTracker, error) {
			t, err := windows.FindTarget(query, opts.FollowTarget, log)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
		Relay:   windows.NewInputRelay(),
		Alerter: windows.Alerter{},
	}
}

// NotifyOnClose calls onClose for console Ctrl+C, Ctrl+Break and close events.
func NotifyOnClose(onClose func(reason string)) error {
	return windows.NotifyOnClose(onClose)
}

func IsElevated() bool {
	return windows.IsElevated()
}

func RelaunchAsAdmin(args []string) error {
	return windows.RelaunchAsAdmin(args)
}
