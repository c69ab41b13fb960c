package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/ovly/internal/hud"
	"github.com/Norgate-AV/ovly/internal/logger"
	"github.com/Norgate-AV/ovly/internal/overlay"
	"github.com/Norgate-AV/ovly/internal/platform"
	"github.com/Norgate-AV/ovly/internal/settings"
	"github.com/Norgate-AV/ovly/internal/tray"
	"github.com/Norgate-AV/ovly/internal/ui"
	"github.com/Norgate-AV/ovly/internal/version"
)

const windowTitle = "ovly"

// ErrNoTarget is returned when neither the command line nor the settings file
// names a target window.
var ErrNoTarget = errors.New("no target window: pass a title or set target_window in the settings file")

// RunParams holds everything runOverlay needs. Execute fills it with the real
// platform; tests swap in mocks.
type RunParams struct {
	Settings     settings.Settings
	FileSettings settings.Settings
	SettingsPath string
	Services     *platform.Services
	Logger       logger.Logger

	// NotifyOnClose registers onClose for console and signal close events.
	NotifyOnClose func(onClose func(reason string)) error
	// StartTray shows the tray icon and returns the function that removes it.
	StartTray func(onQuit func()) (stop func())
}

// RootCmd is the root command for the ovly CLI application.
var RootCmd = &cobra.Command{
	Use:          "ovly [target-title]",
	Short:        "ovly - Click-through overlay on top of another application's window",
	Version:      version.GetVersion(),
	Args:         cobra.MaximumNArgs(1),
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	RootCmd.PersistentFlags().StringP("config", "c", "", "path to the settings file (default: config.yaml next to the executable)")
	RootCmd.PersistentFlags().Int("fps", 0, "frame rate cap (overrides frame_rate in the settings file)")
	RootCmd.PersistentFlags().Bool("follow-target", false, "move the overlay onto the target window as it moves")
	RootCmd.PersistentFlags().Bool("no-tray", false, "do not show the notification area icon")
	RootCmd.PersistentFlags().Bool("elevate", false, "relaunch with administrator privileges to overlay elevated targets")
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	if err := logger.Dump(nil, logger.Options{}); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logger.Path(logger.Options{}))
			exitFunc(1)
			return nil
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
		return nil
	}

	exitFunc(0)
	return nil
}

// initializeLogger creates the file and console logger
func initializeLogger(cfg *Config) (*logger.DualLogger, error) {
	log, err := logger.New(logger.Options{
		Verbose:  cfg.Verbose,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// loadSettings reads the settings file. A broken file is reported and the
// defaults are used so the overlay still starts. The returned path is empty in
// that case, which turns saving off and leaves the user's file untouched.
func loadSettings(cfg *Config, log logger.Logger) (settings.Settings, string) {
	path := cfg.ConfigPath
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			log.Warn("Could not resolve the settings path", slog.Any("error", err))
			return settings.Default(), ""
		}
		path = p
	}

	s, err := settings.Load(path)
	if err != nil {
		log.Warn("Failed to load settings, using defaults and not saving",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return settings.Default(), ""
	}

	log.Debug("Settings loaded", slog.String("path", path))
	return s, path
}

// ensureElevatedWithDeps relaunches elevated and exits when the process is not
// already running with administrator privileges.
func ensureElevatedWithDeps(
	log logger.Logger,
	isElevated func() bool,
	relaunchAsAdmin func() error,
	exitFunc func(int),
) error {
	log.Debug("Checking elevation status")
	if !isElevated() {
		log.Info("Relaunching as administrator")

		if err := relaunchAsAdmin(); err != nil {
			log.Error("RelaunchAsAdmin failed", slog.Any("error", err))
			return fmt.Errorf("error relaunching as admin: %w", err)
		}

		// The elevated instance takes over from here
		log.Debug("Relaunched successfully, exiting non-elevated instance")
		log.Close()
		exitFunc(0)
		return nil
	}

	log.Debug("Running with administrator privileges")
	return nil
}

// mergeUIChanges copies the fields the panel edits onto the file settings, so
// command line overrides never end up in the file.
func mergeUIChanges(file, edited settings.Settings) settings.Settings {
	file.ShowPanel = edited.ShowPanel
	file.ShowTargetFrame = edited.ShowTargetFrame
	file.Note = edited.Note
	return file
}

func startTray(log logger.Logger) func(onQuit func()) func() {
	return func(onQuit func()) func() {
		m := tray.New(tray.Options{
			Tooltip: "ovly",
			OnQuit:  onQuit,
			Log:     log,
		})
		m.Start()
		return m.Stop
	}
}

// panelStyle is the default UI style with the panel colour from the settings.
func panelStyle(s settings.Settings) ui.Style {
	style := ui.DefaultStyle()
	style.WindowBg = s.Panel()
	return style
}

// runOverlay creates the overlay, runs it until it stops and saves any panel
// changes on a clean exit.
func runOverlay(p RunParams) error {
	log := p.Logger
	s := p.Settings

	if s.TargetWindow == "" {
		return ErrNoTarget
	}

	log.Info("Starting overlay",
		slog.String("target", s.TargetWindow),
		slog.Int("fps", s.FrameRate),
		slog.Bool("follow", s.FollowTarget),
	)

	sys, err := overlay.Init(overlay.Config{
		Title:        windowTitle,
		TargetWindow: s.TargetWindow,
		FrameRate:    s.FrameRate,
		FontScale:    s.FontScale,
		Backend:      p.Services.Backend,
		FindTarget:   p.Services.FindTarget,
		Relay:        p.Services.Relay,
		UIOptions:    []ui.Option{ui.WithStyle(panelStyle(s))},
		Log:          log,
	})
	if err != nil {
		log.Error("Failed to initialize overlay", slog.Any("error", err))
		title, message := overlay.Describe(err)
		p.Services.Alerter.ShowError(title, message)
		return err
	}

	defer sys.Close()

	var save func(settings.Settings) error
	if p.SettingsPath != "" {
		save = func(edited settings.Settings) error {
			return settings.Save(p.SettingsPath, mergeUIChanges(p.FileSettings, edited))
		}
	}

	h := hud.New(hud.Options{
		Settings: s,
		Tracker:  sys.Tracker(),
		Window:   sys.Window(),
		Save:     save,
		Log:      log,
	})

	if p.NotifyOnClose != nil {
		err := p.NotifyOnClose(func(reason string) {
			log.Info("Close requested", slog.String("reason", reason))
			sys.RequestClose()
		})
		if err != nil {
			log.Warn("Failed to install close handler", slog.Any("error", err))
		}
	}

	if s.Tray && p.StartTray != nil {
		stop := p.StartTray(sys.RequestClose)
		defer stop()
	}

	code := sys.Run(h.Update, h.Render)
	log.Debug("Overlay stopped", slog.Int("exit_code", code))

	if code != 0 {
		return fmt.Errorf("overlay stopped with exit code %d", code)
	}

	if h.Dirty() && save != nil {
		if err := save(h.Settings()); err != nil {
			log.Warn("Failed to save settings on exit", slog.Any("error", err))
		} else {
			log.Debug("Settings saved on exit", slog.String("path", p.SettingsPath))
		}
	}

	return nil
}

// Execute runs the provided command with the given arguments.
func Execute(cmd *cobra.Command, args []string) error {
	cfg := NewConfigFromFlags(cmd, args)

	if err := handleLogsFlag(cfg, os.Exit); err != nil {
		return err
	}

	log, err := initializeLogger(cfg)
	if err != nil {
		return err
	}

	defer log.Close()

	log.Debug("Starting ovly",
		slog.String("version", version.GetVersion()),
		slog.String("commit", version.GetCommit()),
		slog.Any("args", args),
	)
	log.Debug("Flags set",
		slog.Bool("verbose", cfg.Verbose),
		slog.String("config", cfg.ConfigPath),
		slog.Int("fps", cfg.FrameRate),
		slog.Bool("followTarget", cfg.FollowTarget),
		slog.Bool("noTray", cfg.NoTray),
		slog.Bool("elevate", cfg.Elevate),
	)

	// Recover from panics and log them
	defer func() {
		if r := recover(); r != nil {
			log.Error("PANIC RECOVERED",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
			fmt.Fprintf(os.Stderr, "Check log file for details: %s\n", log.Path())
		}
	}()

	fileSettings, path := loadSettings(cfg, log)

	if cfg.Elevate {
		relaunch := func() error { return platform.RelaunchAsAdmin(os.Args[1:]) }
		if err := ensureElevatedWithDeps(log, platform.IsElevated, relaunch, os.Exit); err != nil {
			return err
		}
	}

	s := cfg.Apply(fileSettings)

	services := platform.New(platform.Options{
		FollowTarget: s.FollowTarget,
		Log:          log,
	})

	return runOverlay(RunParams{
		Settings:      s,
		FileSettings:  fileSettings,
		SettingsPath:  path,
		Services:      services,
		Logger:        log,
		NotifyOnClose: platform.NotifyOnClose,
		StartTray:     startTray(log),
	})
}
