// Package hud is the overlay's own UI: a status panel with a note field and
// Save/Exit buttons, plus an optional outline around the target window.
package hud

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/logger"
	"github.com/Norgate-AV/ovly/internal/settings"
	"github.com/Norgate-AV/ovly/internal/ui"
)

const (
	panelTitle = "ovly"
	noteMaxLen = 64
	frameWidth = 2
)

var (
	okColor   = ui.RGBA(120, 220, 120, 255)
	failColor = ui.RGBA(240, 90, 90, 255)
)

// PanelPos is where the panel opens the first time.
var PanelPos = geom.Vec2{X: 16, Y: 16}

// Options configures New. Tracker and Window are required.
type Options struct {
	Settings settings.Settings
	Tracker  interfaces.TargetTracker
	Window   interfaces.NativeWindow
	// Save persists the settings. The Save button is hidden when nil.
	Save func(settings.Settings) error
	Log  logger.Logger
}

// HUD implements the overlay's update and render hooks.
type HUD struct {
	cfg     settings.Settings
	toggle  ui.Key
	tracker interfaces.TargetTracker
	window  interfaces.NativeWindow
	save    func(settings.Settings) error
	log     logger.Logger

	dirty     bool
	status    string
	statusCol ui.Color
}

func New(opts Options) *HUD {
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}

	return &HUD{
		cfg:     opts.Settings,
		toggle:  opts.Settings.Toggle(),
		tracker: opts.Tracker,
		window:  opts.Window,
		save:    opts.Save,
		log:     opts.Log,
	}
}

// Settings returns the settings as edited in the panel.
func (h *HUD) Settings() settings.Settings { return h.cfg }

// Dirty reports whether the panel changed something that was not saved yet.
func (h *HUD) Dirty() bool { return h.dirty }

// Update handles the toggle key. It never stops the loop.
func (h *HUD) Update(ctx *ui.Context) bool {
	if ctx.IO().KeyPressed(h.toggle) {
		h.cfg.ShowPanel = !h.cfg.ShowPanel
		h.dirty = true
		h.log.Debug("Panel toggled", slog.Bool("visible", h.cfg.ShowPanel))
	}

	return true
}

// Render draws the outline and the panel. It returns false once Exit is clicked.
func (h *HUD) Render(f *ui.Frame) bool {
	snap := h.tracker.Snapshot()

	if h.cfg.ShowTargetFrame && snap.Alive {
		h.drawTargetFrame(f.Background(), snap.Bounds)
	}

	if !h.cfg.ShowPanel {
		return true
	}

	exit := false
	f.Window(panelTitle, PanelPos, func() {
		f.Text(h.statusLine(f.IO(), snap))

		if f.Checkbox("Target frame", &h.cfg.ShowTargetFrame) {
			h.dirty = true
		}

		if f.InputText("Note", &h.cfg.Note, noteMaxLen) {
			h.dirty = true
		}

		if h.save != nil {
			if f.Button("Save") {
				h.persist()
			}
			f.SameLine()
		}

		if f.Button("Exit") {
			h.log.Info("Exit requested from the panel")
			exit = true
		}

		if h.status != "" {
			f.TextColored(h.statusCol, h.status)
		}
	})

	return !exit
}

func (h *HUD) persist() {
	if err := h.save(h.cfg); err != nil {
		h.log.Warn("Failed to save settings", slog.Any("error", err))
		h.status = "Save failed"
		h.statusCol = failColor
		return
	}

	h.dirty = false
	h.status = "Saved"
	h.statusCol = okColor
	h.log.Info("Settings saved")
}

func (h *HUD) statusLine(io *ui.IO, snap interfaces.TargetSnapshot) string {
	mode := "active"
	if h.window.ExStyle().InputTransparent() {
		mode = "click-through"
	}

	if !snap.Alive {
		return fmt.Sprintf("%.0f fps  %s  target lost", io.Framerate, mode)
	}

	b := snap.Bounds
	return fmt.Sprintf("%.0f fps  %s  %dx%d at %d,%d", io.Framerate, mode, b.W, b.H, b.X, b.Y)
}

// drawTargetFrame outlines the target, translated into overlay coordinates.
func (h *HUD) drawTargetFrame(dl *ui.DrawList, target geom.Rect) {
	origin := h.window.Bounds()
	lo := geom.Vec2{X: float32(target.X - origin.X), Y: float32(target.Y - origin.Y)}
	hi := lo.Add(geom.Vec2{X: float32(target.W), Y: float32(target.H)})
	dl.AddRect(lo, hi, h.cfg.Frame(), frameWidth)
}
