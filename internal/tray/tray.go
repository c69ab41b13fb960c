// Package tray shows the overlay in the notification area with a Quit item.
package tray

import (
	"sync"

	"github.com/Norgate-AV/ovly/internal/logger"
)

// Options configures New.
type Options struct {
	Tooltip string
	// OnQuit is called from the tray goroutine. It must only signal the
	// render loop, never touch the window.
	OnQuit func()
	Log    logger.Logger
}

// Manager owns the tray icon.
type Manager struct {
	opts    Options
	once    sync.Once
	stop    chan struct{}
	started bool
}

func New(opts Options) *Manager {
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}

	if opts.Tooltip == "" {
		opts.Tooltip = "ovly overlay"
	}

	return &Manager{opts: opts, stop: make(chan struct{})}
}

func (m *Manager) quit() {
	m.opts.Log.Info("Quit selected from the tray")
	if m.opts.OnQuit != nil {
		m.opts.OnQuit()
	}
}
