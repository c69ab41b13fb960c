// Package activation decides, once per frame, whether the overlay accepts
// input or stays click-through.
package activation

import (
	"log/slog"

	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/logger"
)

// State is the activation state of the overlay.
type State bool

const (
	Inactive State = false
	Active   State = true
)

func (s State) String() string {
	if s {
		return "active"
	}
	return "inactive"
}

// Tracker holds the current activation state. The zero value is Inactive.
type Tracker struct {
	currentlyActive bool
	log             logger.Logger
}

// New returns an inactive tracker.
func New(log logger.Logger) *Tracker {
	if log == nil {
		log = logger.Discard()
	}
	return &Tracker{log: log}
}

// State returns the current state.
func (t *Tracker) State() State {
	return State(t.currentlyActive)
}

// Active reports whether the overlay currently accepts input.
func (t *Tracker) Active() bool {
	return t.currentlyActive
}

// Update applies the desired capture state to w. It touches the window only
// when want differs from the current state and reports whether it did.
func (t *Tracker) Update(w interfaces.NativeWindow, want bool) bool {
	if want == t.currentlyActive {
		return false
	}

	ex := w.ExStyle().ForCapture(want)
	if err := w.SetExStyle(ex); err != nil {
		t.log.Warn("Failed to update overlay extended style", slog.Any("error", err))
	}

	if want {
		if err := w.SetActive(); err != nil {
			t.log.Warn("Failed to activate overlay window", slog.Any("error", err))
		}
	}

	t.currentlyActive = want
	t.log.Debug("Overlay activation changed",
		slog.String("state", t.State().String()),
		slog.String("exstyle", ex.String()),
	)
	return true
}
