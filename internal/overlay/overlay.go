// Package overlay owns the click-through overlay window and drives its render loop.
package overlay

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/logger"
	"github.com/Norgate-AV/ovly/internal/timing"
	"github.com/Norgate-AV/ovly/internal/ui"
)

// Config holds everything Init needs. Backend and FindTarget are required.
type Config struct {
	Title        string
	TargetWindow string
	FrameRate    int
	FontScale    int

	Backend interfaces.Backend
	// FindTarget locates the target window. It must wrap ErrTargetNotFound when absent.
	FindTarget func(title string) (interfaces.TargetTracker, error)
	// Relay overrides the host's own input relay when set.
	Relay interfaces.InputRelay
	// Clipboard defaults to ui.NewSystemClipboard.
	Clipboard func() (ui.Clipboard, error)
	// UIOptions are applied to the UI context after the defaults.
	UIOptions []ui.Option
	Log       logger.Logger
}

// System is an initialised overlay, ready to Run.
type System struct {
	host     interfaces.Host
	window   interfaces.NativeWindow
	events   interfaces.EventSource
	canvas   interfaces.Canvas
	platform interfaces.Platform
	renderer interfaces.Renderer
	tracker  interfaces.TargetTracker
	relay    interfaces.InputRelay
	ctx      *ui.Context
	log      logger.Logger

	closing atomic.Bool
}

// Init locates the target, creates the overlay window on the primary monitor
// and prepares the UI. Nothing is shown until the first frame is painted.
func Init(cfg Config) (*System, error) {
	log := cfg.Log
	if log == nil {
		log = logger.Discard()
	}

	if cfg.Title == "" {
		cfg.Title = "ovly"
	}

	if cfg.FrameRate == 0 {
		cfg.FrameRate = timing.DefaultFrameRate
	}

	tracker, err := cfg.FindTarget(cfg.TargetWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to find target window %q: %w", cfg.TargetWindow, err)
	}

	bounds, err := selectMonitor(cfg.Backend)
	if err != nil {
		return nil, err
	}

	log.Debug("Creating overlay window",
		slog.String("title", cfg.Title),
		slog.Int("x", bounds.X), slog.Int("y", bounds.Y),
		slog.Int("width", bounds.W), slog.Int("height", bounds.H),
	)

	host, err := cfg.Backend.Open(interfaces.WindowOptions{
		Title:     cfg.Title,
		Bounds:    bounds,
		FrameRate: cfg.FrameRate,
	})
	if err != nil {
		return nil, &DisplayError{Err: err}
	}

	opts := []ui.Option{ui.WithFontScale(cfg.FontScale)}
	newClipboard := cfg.Clipboard
	if newClipboard == nil {
		newClipboard = ui.NewSystemClipboard
	}

	if cb, err := newClipboard(); err != nil {
		log.Warn("Failed to initialize clipboard", slog.Any("error", err))
	} else {
		opts = append(opts, ui.WithClipboard(cb))
	}

	opts = append(opts, cfg.UIOptions...)
	ctx := ui.NewContext(opts...)

	if err := configureWindow(host.Window(), log); err != nil {
		host.Close()
		return nil, &DisplayError{Err: err}
	}

	renderer, err := host.NewRenderer(ctx.Font())
	if err != nil {
		host.Close()
		return nil, &RenderError{Err: err}
	}

	relay := cfg.Relay
	if relay == nil {
		relay = host.Relay()
	}

	return &System{
		host:     host,
		window:   host.Window(),
		events:   host.Events(),
		canvas:   host.Canvas(),
		platform: host.Platform(),
		renderer: renderer,
		tracker:  tracker,
		relay:    relay,
		ctx:      ctx,
		log:      log,
	}, nil
}

// Context returns the UI context owned by the loop.
func (s *System) Context() *ui.Context { return s.ctx }

// Tracker returns the target window tracker.
func (s *System) Tracker() interfaces.TargetTracker { return s.tracker }

// Window returns the overlay window.
func (s *System) Window() interfaces.NativeWindow { return s.window }

// RequestClose asks the loop to stop. Safe to call from any goroutine.
func (s *System) RequestClose() {
	if s.closing.CompareAndSwap(false, true) {
		s.events.Wake()
	}
}

// Close releases the window and graphics context.
func (s *System) Close() {
	if s.host != nil {
		s.host.Close()
	}
}
