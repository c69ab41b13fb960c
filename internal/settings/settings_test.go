package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/ovly/internal/settings"
	"github.com/Norgate-AV/ovly/internal/testutil"
	"github.com/Norgate-AV/ovly/internal/timing"
	"github.com/Norgate-AV/ovly/internal/ui"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Parallel()

	s, err := settings.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
	assert.Equal(t, ui.KeyPause, s.Toggle())
}

func TestLoad_EmptyFileGivesDefaults(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "\n  \n")

	s, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", `
target_window: Game
toggle_key: f10
show_target_frame: false
frame_rate: 60
follow_target: true
panel_color: [1, 0, 0]
note: remember the boss at 3:00
`)

	s, err := settings.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Game", s.TargetWindow)
	assert.Equal(t, ui.KeyF10, s.Toggle())
	assert.False(t, s.ShowTargetFrame)
	assert.True(t, s.ShowPanel, "unset keys keep their defaults")
	assert.True(t, s.Tray)
	assert.Equal(t, 60, s.FrameRate)
	assert.True(t, s.FollowTarget)
	assert.Equal(t, ui.Color{R: 1, G: 0, B: 0, A: 1}, s.Panel())
	assert.Equal(t, "remember the boss at 3:00", s.Note)
}

func TestLoad_ClampsNumbers(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "frame_rate: 100000\nfont_scale: 0\n")

	s, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, timing.MaxFrameRate, s.FrameRate)
	assert.Equal(t, 1, s.FontScale)
}

func TestLoad_UnknownToggleKey(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "toggle_key: Hyper\n")

	s, err := settings.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, settings.ErrUnknownKey)
	assert.Equal(t, settings.Default(), s, "defaults are returned alongside the error")
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "frame_rate: [1, 2\n")

	_, err := settings.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings")
}

func TestLoad_UnknownKey(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "target_window: Game\nfram_rate: 30\n")

	s, err := settings.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fram_rate")
	assert.Equal(t, settings.Default(), s, "a misspelled key is not silently ignored")
}

func TestLoad_CommentsOnlyGivesDefaults(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "# target_window: Game\n")

	s, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestSave_WritesReadableFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	s := settings.Default()
	s.TargetWindow = "Notepad"
	s.Note = "line"
	require.NoError(t, settings.Save(path, s))

	content := testutil.ReadFile(t, path)
	assert.Contains(t, content, "target_window: Notepad")
	assert.Contains(t, content, "toggle_key: Pause")

	loaded, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestSave_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := settings.Save(filepath.Join(t.TempDir(), "missing", "config.yaml"), settings.Default())
	require.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	path, err := settings.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, settings.FileName, filepath.Base(path))
}
