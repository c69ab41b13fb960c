package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/logger"
	"github.com/Norgate-AV/ovly/internal/overlay"
	"github.com/Norgate-AV/ovly/internal/platform"
	"github.com/Norgate-AV/ovly/internal/settings"
	"github.com/Norgate-AV/ovly/internal/testutil"
	"github.com/Norgate-AV/ovly/internal/timing"
	"github.com/Norgate-AV/ovly/internal/ui"
	"github.com/Norgate-AV/ovly/internal/version"
)

// resetFlags resets all flags to their default values between tests
func resetFlags() {
	flags := RootCmd.PersistentFlags()
	_ = flags.Set("verbose", "false")
	_ = flags.Set("logs", "false")
	_ = flags.Set("config", "")
	_ = flags.Set("fps", "0")
	_ = flags.Set("follow-target", "false")
	_ = flags.Set("no-tray", "false")
	_ = flags.Set("elevate", "false")
}

// newFlagCommand builds a command with the same flags as RootCmd
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}

	cmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	cmd.PersistentFlags().BoolP("logs", "l", false, "print log file")
	cmd.PersistentFlags().StringP("config", "c", "", "settings file")
	cmd.PersistentFlags().Int("fps", 0, "frame rate")
	cmd.PersistentFlags().Bool("follow-target", false, "follow target")
	cmd.PersistentFlags().Bool("no-tray", false, "no tray")
	cmd.PersistentFlags().Bool("elevate", false, "elevate")

	return cmd
}

// TestRootCmd_Args tests positional argument validation
func TestRootCmd_Args(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		expectErr bool
	}{
		{name: "no target", args: []string{}},
		{name: "one target", args: []string{"Notepad"}},
		{name: "two targets", args: []string{"Notepad", "Calculator"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := RootCmd.Args(RootCmd, tt.args)
			if tt.expectErr {
				assert.Error(t, err, "Only one target title is accepted")
				return
			}

			assert.NoError(t, err)
		})
	}
}

// TestHandleLogsFlag tests the --logs flag functionality
func TestHandleLogsFlag(t *testing.T) {
	resetFlags()
	defer resetFlags()

	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	logPath := filepath.Join(tmpDir, "ovly", "ovly.log")
	testContent := "Test log content\nLine 2\nLine 3"
	require.NoError(t, os.MkdirAll(filepath.Dir(logPath), 0o755))
	require.NoError(t, os.WriteFile(logPath, []byte(testContent), 0o644))

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	exitCalled := false
	exitCode := -1
	mockExit := func(code int) {
		exitCalled = true
		exitCode = code
	}

	err := handleLogsFlag(&Config{ShowLogs: true}, mockExit)
	assert.NoError(t, err)

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.True(t, exitCalled, "Should call exit function for --logs flag")
	assert.Equal(t, 0, exitCode, "Should exit with code 0 for --logs")
	assert.Contains(t, buf.String(), testContent, "Should print log file content to stdout")
}

// TestHandleLogsFlag_NoLogFile tests --logs when nothing has been logged yet
func TestHandleLogsFlag_NoLogFile(t *testing.T) {
	t.Setenv("LOCALAPPDATA", t.TempDir())

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	exitCode := -1
	err := handleLogsFlag(&Config{ShowLogs: true}, func(code int) { exitCode = code })

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.NoError(t, err)
	assert.Equal(t, 1, exitCode, "Missing log file is an error")
	assert.Contains(t, buf.String(), "Log file does not exist")
}

// TestHandleLogsFlag_NotSet tests that nothing happens without --logs
func TestHandleLogsFlag_NotSet(t *testing.T) {
	t.Parallel()

	exitCalled := false
	err := handleLogsFlag(&Config{}, func(int) { exitCalled = true })

	assert.NoError(t, err)
	assert.False(t, exitCalled)
}

// TestRootCmd_Version tests --version flag
func TestRootCmd_Version(t *testing.T) {
	resetFlags()

	output := captureCommandOutput(t, []string{"--version"})

	assert.Contains(t, output, version.GetVersion(), "Should print version information")
}

// TestRootCmd_Help tests --help flag
func TestRootCmd_Help(t *testing.T) {
	resetFlags()

	output := captureCommandOutput(t, []string{"--help"})

	assert.Contains(t, output, "ovly [target-title]", "Should show usage")
	assert.Contains(t, output, "Click-through overlay", "Should show description")
	for _, flag := range []string{"--verbose", "--logs", "--config", "--fps", "--follow-target", "--no-tray", "--elevate"} {
		assert.Contains(t, output, flag, "Should list %s", flag)
	}
}

// TestRootCmd_Flags tests flag parsing into Config
func TestRootCmd_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "no flags",
			args:     []string{},
			expected: Config{},
		},
		{
			name:     "verbose short",
			args:     []string{"-V"},
			expected: Config{Verbose: true},
		},
		{
			name:     "logs long",
			args:     []string{"--logs"},
			expected: Config{ShowLogs: true},
		},
		{
			name:     "config short",
			args:     []string{"-c", "custom.yaml"},
			expected: Config{ConfigPath: "custom.yaml"},
		},
		{
			name:     "fps",
			args:     []string{"--fps", "60"},
			expected: Config{FrameRate: 60},
		},
		{
			name: "all switches",
			args: []string{"--follow-target", "--no-tray", "--elevate", "-V"},
			expected: Config{
				Verbose:      true,
				FollowTarget: true,
				NoTray:       true,
				Elevate:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := newFlagCommand()
			require.NoError(t, cmd.ParseFlags(tt.args), "Flag parsing should not error")

			cfg := NewConfigFromFlags(cmd, nil)
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

// TestNewConfigFromFlags_Target tests that the positional argument is the target
func TestNewConfigFromFlags_Target(t *testing.T) {
	t.Parallel()

	cfg := NewConfigFromFlags(newFlagCommand(), []string{"Untitled - Notepad"})
	assert.Equal(t, "Untitled - Notepad", cfg.Target)
}

// TestRootCmd_InvalidFlag tests behavior with unknown flags
func TestRootCmd_InvalidFlag(t *testing.T) {
	resetFlags()

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	RootCmd.SetArgs([]string{"--invalid-flag", "Notepad"})
	err := RootCmd.Execute()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.Error(t, err, "Should return error for invalid flag")
	assert.Contains(t, buf.String(), "unknown flag", "Error message should mention unknown flag")
}

// Helper function to capture command output
func captureCommandOutput(_ *testing.T, args []string) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	RootCmd.SetArgs(args)
	_ = RootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	return buf.String()
}

func TestConfig_Apply(t *testing.T) {
	t.Parallel()

	base := settings.Default()
	base.TargetWindow = "From File"

	t.Run("empty config keeps the file", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, base, (&Config{}).Apply(base))
	})

	t.Run("flags override", func(t *testing.T) {
		t.Parallel()

		got := (&Config{Target: "Game", FrameRate: 60, FollowTarget: true, NoTray: true}).Apply(base)

		assert.Equal(t, "Game", got.TargetWindow)
		assert.Equal(t, 60, got.FrameRate)
		assert.True(t, got.FollowTarget)
		assert.False(t, got.Tray)
		assert.Equal(t, "From File", base.TargetWindow, "Apply must not modify its input")
	})
}

func TestMergeUIChanges(t *testing.T) {
	t.Parallel()

	file := settings.Default()
	file.TargetWindow = "From File"
	file.FrameRate = 144

	edited := file
	edited.TargetWindow = "From Flag"
	edited.FrameRate = 30
	edited.ShowPanel = false
	edited.ShowTargetFrame = false
	edited.Note = "hello"

	got := mergeUIChanges(file, edited)

	assert.Equal(t, "From File", got.TargetWindow, "Command line overrides are not persisted")
	assert.Equal(t, 144, got.FrameRate)
	assert.False(t, got.ShowPanel)
	assert.False(t, got.ShowTargetFrame)
	assert.Equal(t, "hello", got.Note)
}

// TestEnsureElevated_AlreadyElevated tests when process is already elevated
func TestEnsureElevated_AlreadyElevated(t *testing.T) {
	t.Parallel()

	exitCalled := false
	relaunchCalled := false

	isElevated := func() bool { return true }
	relaunchAsAdmin := func() error {
		relaunchCalled = true
		return nil
	}
	exitFunc := func(int) {
		exitCalled = true
	}

	err := ensureElevatedWithDeps(logger.Discard(), isElevated, relaunchAsAdmin, exitFunc)

	assert.NoError(t, err, "Should not error when already elevated")
	assert.False(t, relaunchCalled, "Should not relaunch when already elevated")
	assert.False(t, exitCalled, "Should not exit when already elevated")
}

// TestEnsureElevated_NotElevated_SuccessfulRelaunch tests the relaunch flow
func TestEnsureElevated_NotElevated_SuccessfulRelaunch(t *testing.T) {
	t.Parallel()

	exitCode := -1
	relaunchCalled := false

	isElevated := func() bool { return false }
	relaunchAsAdmin := func() error {
		relaunchCalled = true
		return nil
	}
	exitFunc := func(code int) {
		exitCode = code
	}

	err := ensureElevatedWithDeps(logger.Discard(), isElevated, relaunchAsAdmin, exitFunc)

	assert.NoError(t, err, "Should not return error on successful relaunch")
	assert.True(t, relaunchCalled, "Should call relaunch when not elevated")
	assert.Equal(t, 0, exitCode, "Should exit with code 0 after successful relaunch")
}

// TestEnsureElevated_NotElevated_RelaunchFails tests relaunch failure handling
func TestEnsureElevated_NotElevated_RelaunchFails(t *testing.T) {
	t.Parallel()

	exitCalled := false
	relaunchErr := fmt.Errorf("failed to relaunch")

	isElevated := func() bool { return false }
	relaunchAsAdmin := func() error { return relaunchErr }
	exitFunc := func(int) { exitCalled = true }

	err := ensureElevatedWithDeps(logger.Discard(), isElevated, relaunchAsAdmin, exitFunc)

	require.Error(t, err, "Should return error when relaunch fails")
	assert.False(t, exitCalled, "Should not exit when relaunch fails")
	assert.Contains(t, err.Error(), "error relaunching as admin")
	assert.ErrorIs(t, err, relaunchErr, "Should wrap the relaunch error")
}

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ovly.yaml")
		require.NoError(t, os.WriteFile(path, []byte("target_window: Game\nframe_rate: 60\n"), 0o644))

		s, got := loadSettings(&Config{ConfigPath: path}, logger.Discard())

		assert.Equal(t, path, got)
		assert.Equal(t, "Game", s.TargetWindow)
		assert.Equal(t, 60, s.FrameRate)
	})

	t.Run("broken file falls back to defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ovly.yaml")
		require.NoError(t, os.WriteFile(path, []byte("frame_rate: [oops"), 0o644))

		s, got := loadSettings(&Config{ConfigPath: path}, logger.Discard())

		assert.Empty(t, got, "Saving is off so the broken file is not replaced")
		assert.Equal(t, settings.Default(), s)
	})
}

// runFixture wires runOverlay to the loop mocks.
type runFixture struct {
	backend  *testutil.MockBackend
	tracker  *testutil.MockTargetTracker
	alerter  *testutil.MockAlerter
	path     string
	file     settings.Settings
	onClose  func(reason string)
	trayUp   int
	trayDown int
}

func newRunFixture(t *testing.T) *runFixture {
	t.Helper()

	f := &runFixture{
		backend: testutil.NewMockBackend(),
		tracker: testutil.NewMockTargetTracker("Game"),
		alerter: testutil.NewMockAlerter(),
		path:    filepath.Join(t.TempDir(), "config.yaml"),
		file:    settings.Default(),
	}
	f.backend.Host.Ev.WithMaxFrames(5)

	return f
}

func (f *runFixture) params() RunParams {
	s := (&Config{Target: "Game", FrameRate: 60}).Apply(f.file)

	return RunParams{
		Settings:     s,
		FileSettings: f.file,
		SettingsPath: f.path,
		Services: &platform.Services{
			Backend: f.backend,
			FindTarget: func(string) (interfaces.TargetTracker, error) {
				return f.tracker, nil
			},
			Alerter: f.alerter,
		},
		Logger: logger.Discard(),
		NotifyOnClose: func(onClose func(string)) error {
			f.onClose = onClose
			return nil
		},
		StartTray: func(func()) func() {
			f.trayUp++
			return func() { f.trayDown++ }
		},
	}
}

func TestRunOverlay_NoTarget(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	p := f.params()
	p.Settings.TargetWindow = ""

	err := runOverlay(p)

	assert.ErrorIs(t, err, ErrNoTarget)
	assert.Empty(t, f.backend.OpenCalls, "No window without a target")
}

func TestRunOverlay_TargetNotFoundShowsAlert(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	p := f.params()
	p.Services.FindTarget = func(query string) (interfaces.TargetTracker, error) {
		return nil, fmt.Errorf("%w: %q", overlay.ErrTargetNotFound, query)
	}

	err := runOverlay(p)

	require.Error(t, err)
	assert.ErrorIs(t, err, overlay.ErrTargetNotFound)
	require.Len(t, f.alerter.Calls, 1)
	assert.Equal(t, "Target window not found", f.alerter.Calls[0].Title)
	assert.Zero(t, f.trayUp, "Tray is not shown when startup fails")
}

func TestRunOverlay_DisplayErrorShowsAlert(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	f.backend.WithOpenError(testutil.ErrMockOpen)

	err := runOverlay(f.params())

	var displayErr *overlay.DisplayError
	require.ErrorAs(t, err, &displayErr)
	require.Len(t, f.alerter.Calls, 1)
	assert.Equal(t, "Display error", f.alerter.Calls[0].Title)
}

func TestRunOverlay_CleanExit(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)

	err := runOverlay(f.params())

	require.NoError(t, err)
	assert.Equal(t, 1, f.backend.Host.ClosedCalls, "Host is released on exit")
	assert.Equal(t, 1, f.trayUp)
	assert.Equal(t, 1, f.trayDown, "Tray is removed on exit")
	assert.NotNil(t, f.onClose, "Close handler is installed")
	assert.Equal(t, 60, f.backend.OpenCalls[0].FrameRate, "Command line frame rate wins")
	assert.Equal(t, 1, f.backend.Host.Win.ShowCalls)
	assert.NoFileExists(t, f.path, "Nothing changed so nothing is saved")
}

func TestRunOverlay_TrayDisabled(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	p := f.params()
	p.Settings.Tray = false

	require.NoError(t, runOverlay(p))
	assert.Zero(t, f.trayUp)
}

func TestRunOverlay_CloseRequestStopsLoop(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	f.backend.Host.Ev.WithMaxFrames(1000)

	relays := 0
	f.backend.Host.InputRelay.WithOnUpdate(func(*ui.IO) {
		relays++
		if relays == 3 {
			f.onClose("CTRL_C_EVENT")
		}
	})

	err := runOverlay(f.params())

	require.NoError(t, err)
	assert.Less(t, f.backend.Host.Ev.Frames, 10, "Loop stops soon after the close request")
}

func TestRunOverlay_RenderFailure(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	f.backend.Host.Rend.WithRenderError(2, errors.New("device lost"))

	err := runOverlay(f.params())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 1")
	assert.Equal(t, 1, f.backend.Host.ClosedCalls)
}

func TestRunOverlay_SavesPanelChangesOnExit(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)

	relays := 0
	f.backend.Host.InputRelay.WithOnUpdate(func(io *ui.IO) {
		relays++
		io.SetKey(ui.KeyPause, relays == 2)
	})

	require.NoError(t, runOverlay(f.params()))

	saved, err := settings.Load(f.path)
	require.NoError(t, err)
	assert.False(t, saved.ShowPanel, "Toggled panel state is saved")
	assert.Empty(t, saved.TargetWindow, "Command line target is not saved")
	assert.Equal(t, timing.DefaultFrameRate, saved.FrameRate, "Command line frame rate is not saved")
}

func TestRunOverlay_BrokenSettingsFileIsNotOverwritten(t *testing.T) {
	t.Parallel()

	original := "target_window: Game\ntoggle_key: f10\nnote: [unterminated\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	file, got := loadSettings(&Config{ConfigPath: path}, logger.Discard())

	f := newRunFixture(t)
	f.file = file
	f.path = got

	relays := 0
	f.backend.Host.InputRelay.WithOnUpdate(func(io *ui.IO) {
		relays++
		io.SetKey(ui.KeyPause, relays == 2)
	})

	require.NoError(t, runOverlay(f.params()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content), "Panel changes never replace a file that failed to load")
}

func TestRunOverlay_PanelUsesConfiguredColor(t *testing.T) {
	t.Parallel()

	f := newRunFixture(t)
	f.file.PanelColor = []float32{0.5, 0.25, 0.125, 1}

	require.NoError(t, runOverlay(f.params()))

	assert.Contains(t, f.backend.Host.Rend.LastColors, ui.Color{R: 0.5, G: 0.25, B: 0.125, A: 1},
		"Panel background is drawn in panel_color")
	assert.NotContains(t, f.backend.Host.Rend.LastColors, ui.DefaultStyle().WindowBg)
}
