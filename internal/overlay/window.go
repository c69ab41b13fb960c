package overlay

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/logger"
	"github.com/Norgate-AV/ovly/internal/style"
)

// blurRegion keeps blur-behind enabled without blurring anything visible.
var blurRegion = geom.Rect{W: 1, H: 1}

// selectMonitor returns the primary monitor, or the first usable one.
func selectMonitor(backend interfaces.Backend) (geom.Rect, error) {
	monitors, err := backend.Monitors()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("%w: %v", ErrNoMonitorAvailable, err)
	}

	for _, m := range monitors {
		if !m.Empty() {
			return m, nil
		}
	}

	return geom.Rect{}, ErrNoMonitorAvailable
}

// configureWindow turns a freshly created hidden window into a click-through overlay.
func configureWindow(w interfaces.NativeWindow, log logger.Logger) error {
	if err := w.DisableShadow(); err != nil {
		log.Warn("Failed to disable window shadow", slog.Any("error", err))
	}

	if err := w.SetStyle(style.OverlayStyle()); err != nil {
		return fmt.Errorf("failed to set window style: %w", err)
	}

	if err := w.SetExStyle(style.OverlayExStyle()); err != nil {
		return fmt.Errorf("failed to set extended window style: %w", err)
	}

	if err := w.EnableBlurBehind(blurRegion); err != nil {
		return fmt.Errorf("failed to enable blur behind: %w", err)
	}

	if err := w.SetTopmost(); err != nil {
		return fmt.Errorf("failed to make window topmost: %w", err)
	}

	log.Debug("Overlay window configured",
		slog.String("style", w.Style().String()),
		slog.String("exstyle", w.ExStyle().String()),
	)
	return nil
}
