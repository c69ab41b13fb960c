package ui

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Clipboard is the text clipboard used by text fields.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
}

// ErrClipboardUnsupported is returned when the host has no clipboard backend.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this host")

type systemClipboard struct{}

// NewSystemClipboard returns the OS clipboard.
func NewSystemClipboard() (Clipboard, error) {
	if clipboard.Unsupported {
		return nil, ErrClipboardUnsupported
	}
	return systemClipboard{}, nil
}

func (systemClipboard) Text() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) SetText(text string) error {
	return clipboard.WriteAll(text)
}
