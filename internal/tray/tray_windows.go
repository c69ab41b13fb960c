//go:build windows

package tray

import (
	"github.com/getlantern/systray"
)

// Start runs the tray on its own goroutine. Safe to call more than once.
func (m *Manager) Start() {
	m.once.Do(func() {
		m.started = true
		go systray.Run(m.onReady, m.onExit)
	})
}

// Stop removes the icon.
func (m *Manager) Stop() {
	select {
	case <-m.stop:
		return
	default:
		close(m.stop)
	}

	if m.started {
		systray.Quit()
	}
}

func (m *Manager) onReady() {
	systray.SetIcon(Icon())
	systray.SetTitle("ovly")
	systray.SetTooltip(m.opts.Tooltip)

	itemQuit := systray.AddMenuItem("Quit", "Close the overlay")

	go func() {
		select {
		case <-m.stop:
		case <-itemQuit.ClickedCh:
			m.quit()
		}
	}()
}

func (m *Manager) onExit() {
	m.opts.Log.Debug("Tray stopped")
}
