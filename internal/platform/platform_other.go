//go:build !windows

package platform

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/Norgate-AV/ovly/internal/glfwhost"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/overlay"
)

// ErrUnsupported is returned for features that need Win32.
var ErrUnsupported = errors.New("only supported on Windows")

// New returns the portable services. The window is GLFW only and no other
// application's window can be looked up, so Init fails with ErrTargetNotFound.
func New(opts Options) *Services {
	return &Services{
		Backend: glfwhost.NewBackend(glfwhost.Options{Log: opts.logger()}),
		FindTarget: func(query string) (interfaces.TargetTracker, error) {
			return nil, fmt.Errorf("%w: window lookup %w", overlay.ErrTargetNotFound, ErrUnsupported)
		},
		Alerter: stderrAlerter{},
	}
}

type stderrAlerter struct{}

func (stderrAlerter) ShowError(title, message string) {
	_, _ = color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "%s\n", title)
	_, _ = fmt.Fprintln(os.Stderr, message)
}

// NotifyOnClose calls onClose for SIGINT and SIGTERM.
func NotifyOnClose(onClose func(reason string)) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range ch {
			onClose(sig.String())
		}
	}()

	return nil
}

func IsElevated() bool {
	return os.Geteuid() == 0
}

func RelaunchAsAdmin([]string) error {
	return fmt.Errorf("elevation relaunch is %w", ErrUnsupported)
}
