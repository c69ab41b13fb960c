// Package settings loads and saves the overlay's YAML settings file.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/ovly/internal/timing"
	"github.com/Norgate-AV/ovly/internal/ui"
)

// FileName is the settings file looked up next to the executable.
const FileName = "config.yaml"

const maxFontScale = 4

// ErrUnknownKey is returned when toggle_key does not name a known key.
var ErrUnknownKey = errors.New("unknown key name")

// Settings is the persisted overlay configuration.
type Settings struct {
	TargetWindow    string    `yaml:"target_window"`
	ToggleKey       string    `yaml:"toggle_key"`
	ShowPanel       bool      `yaml:"show_panel"`
	ShowTargetFrame bool      `yaml:"show_target_frame"`
	FrameRate       int       `yaml:"frame_rate"`
	FollowTarget    bool      `yaml:"follow_target"`
	Tray            bool      `yaml:"tray"`
	FontScale       int       `yaml:"font_scale"`
	PanelColor      []float32 `yaml:"panel_color,flow"`
	FrameColor      []float32 `yaml:"frame_color,flow"`
	Note            string    `yaml:"note"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		ToggleKey:       ui.KeyPause.String(),
		ShowPanel:       true,
		ShowTargetFrame: true,
		FrameRate:       timing.DefaultFrameRate,
		Tray:            true,
		FontScale:       1,
		PanelColor:      []float32{0.06, 0.06, 0.08, 0.85},
		FrameColor:      []float32{0.2, 0.8, 0.4, 0.9},
	}
}

// DefaultPath returns config.yaml in the executable's directory.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}

	if err != nil {
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid settings %s: %w", path, err)
	}

	s.normalize()
	return s, nil
}

// Save writes s to path through a temporary file so a crash never leaves a
// truncated settings file behind.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ovly-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace settings %s: %w", path, err)
	}

	return nil
}

// Validate rejects values that cannot be repaired silently.
func (s Settings) Validate() error {
	if _, ok := ui.ParseKey(s.ToggleKey); !ok {
		return fmt.Errorf("toggle_key %q: %w", s.ToggleKey, ErrUnknownKey)
	}

	return nil
}

// Toggle returns the key that shows and hides the panel.
func (s Settings) Toggle() ui.Key {
	if k, ok := ui.ParseKey(s.ToggleKey); ok {
		return k
	}
	return ui.KeyPause
}

// Panel returns the panel background colour.
func (s Settings) Panel() ui.Color { return ui.FromSlice(s.PanelColor) }

// Frame returns the target outline colour.
func (s Settings) Frame() ui.Color { return ui.FromSlice(s.FrameColor) }

func (s *Settings) normalize() {
	if s.FrameRate <= 0 {
		s.FrameRate = timing.DefaultFrameRate
	}
	s.FrameRate = max(timing.MinFrameRate, min(s.FrameRate, timing.MaxFrameRate))
	s.FontScale = max(1, min(s.FontScale, maxFontScale))
}
