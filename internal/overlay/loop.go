package overlay

import (
	"log/slog"

	"github.com/Norgate-AV/ovly/internal/activation"
	"github.com/Norgate-AV/ovly/internal/event"
	"github.com/Norgate-AV/ovly/internal/timing"
	"github.com/Norgate-AV/ovly/internal/ui"
)

// UpdateFunc runs once per iteration before painting. Returning false ends the loop.
type UpdateFunc func(ctx *ui.Context) bool

// RenderFunc describes the UI for one paint. Returning false ends the loop
// once the current frame has been presented.
type RenderFunc func(f *ui.Frame) bool

const (
	exitOK      = 0
	exitFailure = 1
)

// loopState is owned by Run and lives for exactly one run.
type loopState struct {
	activation *activation.Tracker
	clock      *timing.FrameClock
	update     UpdateFunc
	render     RenderFunc

	shown    bool
	done     bool
	exitCode int
	frames   int
}

func (st *loopState) stop(code int) {
	st.done = true
	st.exitCode = code
}

// Run drives the overlay until an exit condition and returns the process exit
// code. It must be called on the thread that created the window.
func (s *System) Run(update UpdateFunc, render RenderFunc) int {
	st := &loopState{
		activation: activation.New(s.log),
		clock:      timing.NewFrameClock(nil),
		update:     update,
		render:     render,
	}

	s.log.Debug("Render loop started")

	for !st.done {
		ev := s.events.Next()
		if s.closing.Load() {
			ev = event.Of(event.CloseRequested)
		}

		s.dispatch(st, ev)
	}

	s.log.Debug("Render loop stopped", slog.Int("frames", st.frames), slog.Int("exit_code", st.exitCode))
	return st.exitCode
}

func (s *System) dispatch(st *loopState, ev event.Event) {
	io := s.ctx.IO()

	switch ev.Kind {
	case event.NewEvents:
		io.UpdateDeltaTime(st.clock.Tick())

	case event.MainEventsCleared:
		s.mainEventsCleared(st)

	case event.RedrawRequested:
		s.paint(st)

	case event.CloseRequested:
		s.log.Debug("Close requested")
		st.stop(exitOK)

	default:
		s.platform.HandleEvent(io, ev)
	}
}

func (s *System) mainEventsCleared(st *loopState) {
	io := s.ctx.IO()

	if err := s.platform.PrepareFrame(io); err != nil {
		s.log.Error("Platform prepare frame failed", slog.Any("error", err))
		st.stop(exitFailure)
		return
	}

	st.activation.Update(s.window, io.WantCaptureMouse || io.WantCaptureKeyboard)
	s.relay.Update(s.window, io)
	s.tracker.Update(s.window)

	if !st.update(s.ctx) {
		s.log.Debug("Update hook requested exit")
		st.stop(exitOK)
		return
	}

	s.events.RequestRedraw()
}

func (s *System) paint(st *loopState) {
	io := s.ctx.IO()
	st.frames++

	frame := s.ctx.NewFrame()
	run := st.render(frame)
	code := exitOK

	s.canvas.Clear(ui.Transparent)
	s.platform.PrepareRender(io)
	dd := s.ctx.Render()

	ok := true
	if err := s.renderer.Render(dd); err != nil {
		s.log.Error("Failed to render UI draw data", slog.Any("error", err))
		ok = false
	} else if err := s.canvas.Finish(); err != nil {
		s.log.Error("Failed to swap render buffers", slog.Any("error", err))
		ok = false
	}

	if !ok {
		run = false
		code = exitFailure
	}

	if ok && !st.shown {
		st.shown = true
		s.window.Show()
		s.log.Debug("Overlay window shown", slog.Int("frame", st.frames))
	}

	s.log.Trace("Frame painted",
		slog.Int("frame", st.frames),
		slog.Int("vertices", dd.TotalVertices),
		slog.Bool("active", st.activation.Active()),
	)

	if !run {
		st.stop(code)
	}
}
