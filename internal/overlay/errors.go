package overlay

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMonitorAvailable is returned when the host has no display to attach to.
	ErrNoMonitorAvailable = errors.New("no monitor available")

	// ErrTargetNotFound is returned when the target window does not exist.
	ErrTargetNotFound = errors.New("target window not found")
)

// DisplayError wraps a failure to create the window or its graphics context.
type DisplayError struct {
	Err error
}

func (e *DisplayError) Error() string {
	return fmt.Sprintf("failed to create display: %v", e.Err)
}

func (e *DisplayError) Unwrap() error {
	return e.Err
}

// RenderError wraps a failure to initialise the graphics backend.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to initialise renderer: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Describe turns a startup error into a message box title and text.
func Describe(err error) (title, message string) {
	var displayErr *DisplayError
	var renderErr *RenderError

	switch {
	case errors.Is(err, ErrTargetNotFound):
		return "Target window not found", err.Error()
	case errors.Is(err, ErrNoMonitorAvailable):
		return "No monitor", "No monitor is available to attach the overlay to."
	case errors.As(err, &displayErr):
		return "Display error", displayErr.Error()
	case errors.As(err, &renderErr):
		return "Renderer error", renderErr.Error()
	default:
		return "Overlay error", err.Error()
	}
}
