// Package logger provides the overlay's structured logging: a rotating file
// sink that records everything and a coloured console sink for people.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	appName = "ovly"

	// DefaultMaxSize is the size in megabytes at which the log file rotates.
	// Trace output is per frame, so this is larger than a CLI would need.
	DefaultMaxSize = 8

	// DefaultMaxBackups is the number of rotated files to keep.
	DefaultMaxBackups = 3

	// DefaultMaxAge is the number of days rotated files are kept.
	DefaultMaxAge = 14

	// LevelTrace sits below Debug and is only ever written to the file.
	LevelTrace = slog.LevelDebug - 4
)

// Logger is the logging surface used across the overlay.
type Logger interface {
	Trace(msg string, args ...any) // file only
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Close()
	Path() string
}

// Options configures New.
type Options struct {
	Verbose    bool
	Dir        string // empty means %LOCALAPPDATA%\ovly
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Console    io.Writer // nil means stdout
}

// Path returns the log file location for opts.
func Path(opts Options) string {
	dir := opts.Dir
	if dir == "" {
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}

		dir = filepath.Join(base, appName)
	}

	return filepath.Join(dir, appName+".log")
}

// Dump copies the current log file to w (stdout when nil).
func Dump(w io.Writer, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	path := Path(opts)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}

	return nil
}

// DualLogger writes every record to the rotating file and the console.
type DualLogger struct {
	file    *slog.Logger
	console *slog.Logger
	rotator *lumberjack.Logger
	path    string
	session string
}

// New creates the log directory if needed and opens the logger.
func New(opts Options) (*DualLogger, error) {
	if opts.MaxSize == 0 {
		opts.MaxSize = DefaultMaxSize
	}

	if opts.MaxBackups == 0 {
		opts.MaxBackups = DefaultMaxBackups
	}

	if opts.MaxAge == 0 {
		opts.MaxAge = DefaultMaxAge
	}

	if opts.Console == nil {
		opts.Console = os.Stdout
	}

	path := Path(opts)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}

	session := uuid.NewString()

	file := slog.New(slog.NewTextHandler(rotator, &slog.HandlerOptions{
		Level: LevelTrace,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	})).With(slog.String("session", session))

	console := slog.New(&ConsoleHandler{
		writer:  opts.Console,
		verbose: opts.Verbose,
	})

	return &DualLogger{
		file:    file,
		console: console,
		rotator: rotator,
		path:    path,
		session: session,
	}, nil
}

// Close flushes and closes the log file.
func (l *DualLogger) Close() {
	if l.rotator == nil {
		return
	}

	if err := l.rotator.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to close log file: %v\n", err)
	}
}

// Path returns the log file path.
func (l *DualLogger) Path() string {
	return l.path
}

// Session returns the id attached to every file record of this run.
func (l *DualLogger) Session() string {
	return l.session
}

func (l *DualLogger) Trace(msg string, args ...any) {
	l.file.Log(context.Background(), LevelTrace, msg, args...)
}

func (l *DualLogger) Debug(msg string, args ...any) {
	l.file.Debug(msg, args...)
	l.console.Debug(msg, args...)
}

func (l *DualLogger) Info(msg string, args ...any) {
	l.file.Info(msg, args...)
	l.console.Info(msg, args...)
}

func (l *DualLogger) Warn(msg string, args ...any) {
	l.file.Warn(msg, args...)
	l.console.Warn(msg, args...)
}

func (l *DualLogger) Error(msg string, args ...any) {
	l.file.Error(msg, args...)
	l.console.Error(msg, args...)
}

// ConsoleHandler prints one short line per record, without timestamps.
type ConsoleHandler struct {
	writer  io.Writer
	verbose bool
}

var consoleLevels = map[slog.Level]struct {
	prefix string
	color  *color.Color
}{
	slog.LevelError: {"ERROR: ", color.New(color.FgRed)},
	slog.LevelWarn:  {"WARNING: ", color.New(color.FgYellow)},
	slog.LevelDebug: {"VERBOSE: ", color.New(color.FgCyan)},
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level <= LevelTrace {
		return false
	}

	return h.verbose || level != slog.LevelDebug
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})

	style, ok := consoleLevels[r.Level]
	if !ok {
		_, _ = fmt.Fprintln(h.writer, b.String())
		return nil
	}

	_, _ = style.color.Fprintf(h.writer, "%s%s\n", style.prefix, b.String())
	return nil
}

func (h *ConsoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *ConsoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

type discard struct{}

func (discard) Trace(string, ...any) {}
func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}
func (discard) Close()               {}
func (discard) Path() string         { return "" }

// Discard returns a Logger that drops everything. Useful in tests.
func Discard() Logger {
	return discard{}
}
