//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Norgate-AV/ovly/internal/geom"
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/logger"
	"github.com/Norgate-AV/ovly/internal/overlay"
	"github.com/Norgate-AV/ovly/internal/timing"
)

// TargetWindow tracks the external window the overlay is drawn over.
type TargetWindow struct {
	hwnd     uintptr
	follow   bool
	snapshot interfaces.TargetSnapshot
	applied  geom.Rect
	lastPoll time.Time
	log      logger.Logger
}

// FindTarget looks the target up by title or class. Windows owned by this
// process are never matched. When follow is set, Update moves the overlay
// onto the target's bounds.
func FindTarget(query string, follow bool, log logger.Logger) (*TargetWindow, error) {
	if log == nil {
		log = logger.Discard()
	}

	candidates := Without(EnumerateWindows(), uint32(os.Getpid()))

	info, ok := MatchWindow(candidates, query)
	if !ok {
		return nil, fmt.Errorf("%w: %q", overlay.ErrTargetNotFound, query)
	}

	t := &TargetWindow{hwnd: info.Hwnd, follow: follow, log: log}
	t.snapshot.Title = info.Title
	t.refresh()

	log.Info("Found target window",
		slog.String("title", info.Title),
		slog.String("class", info.Class),
		slog.Uint64("pid", uint64(info.Pid)),
	)

	return t, nil
}

// Update re-reads the target at most once per poll interval.
func (t *TargetWindow) Update(w interfaces.NativeWindow) {
	now := time.Now()
	if !t.lastPoll.IsZero() && now.Sub(t.lastPoll) < timing.TargetPollInterval {
		return
	}
	t.lastPoll = now

	wasAlive := t.snapshot.Alive
	t.refresh()

	if wasAlive && !t.snapshot.Alive {
		t.log.Warn("Target window is gone", slog.String("title", t.snapshot.Title))
	}

	if !t.follow || !t.snapshot.Alive || t.snapshot.Bounds.Empty() || t.snapshot.Bounds == t.applied {
		return
	}

	if err := w.SetBounds(t.snapshot.Bounds); err != nil {
		t.log.Warn("Failed to move overlay onto target", slog.Any("error", err))
		return
	}

	t.applied = t.snapshot.Bounds
	t.log.Debug("Overlay moved onto target",
		slog.Int("x", t.applied.X), slog.Int("y", t.applied.Y),
		slog.Int("w", t.applied.W), slog.Int("h", t.applied.H))
}

func (t *TargetWindow) Snapshot() interfaces.TargetSnapshot {
	return t.snapshot
}

func (t *TargetWindow) refresh() {
	if !IsWindow(t.hwnd) {
		t.snapshot.Alive = false
		return
	}

	left, top, right, bottom, err := GetWindowBounds(t.hwnd)
	if err != nil {
		t.snapshot.Alive = false
		return
	}

	t.snapshot.Alive = true
	t.snapshot.Bounds = geom.FromEdges(left, top, right, bottom)

	if title := GetWindowText(t.hwnd); title != "" {
		t.snapshot.Title = title
	}
}
