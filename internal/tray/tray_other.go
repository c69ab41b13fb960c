//go:build !windows

package tray

// Start is a no-op: the tray needs the Win32 notification area.
func (m *Manager) Start() {
	m.once.Do(func() {
		m.opts.Log.Debug("Tray icon is only available on Windows")
	})
}

func (m *Manager) Stop() {
	select {
	case <-m.stop:
	default:
		close(m.stop)
	}
}
