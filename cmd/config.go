// Package cmd implements the command-line interface for ovly.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/ovly/internal/settings"
)

// Config holds all application configuration taken from the command line
type Config struct {
	Verbose      bool
	ShowLogs     bool
	ConfigPath   string
	Target       string
	FrameRate    int
	FollowTarget bool
	NoTray       bool
	Elevate      bool
}

// NewConfigFromFlags creates a Config from parsed command flags
func NewConfigFromFlags(cmd *cobra.Command, args []string) *Config {
	cfg := &Config{
		Verbose:      getBoolFlag(cmd, "verbose"),
		ShowLogs:     getBoolFlag(cmd, "logs"),
		ConfigPath:   getStringFlag(cmd, "config"),
		FrameRate:    getIntFlag(cmd, "fps"),
		FollowTarget: getBoolFlag(cmd, "follow-target"),
		NoTray:       getBoolFlag(cmd, "no-tray"),
		Elevate:      getBoolFlag(cmd, "elevate"),
	}

	if len(args) > 0 {
		cfg.Target = args[0]
	}

	return cfg
}

// Apply overlays the command line on top of the settings file.
func (c *Config) Apply(s settings.Settings) settings.Settings {
	if c.Target != "" {
		s.TargetWindow = c.Target
	}

	if c.FrameRate > 0 {
		s.FrameRate = c.FrameRate
	}

	if c.FollowTarget {
		s.FollowTarget = true
	}

	if c.NoTray {
		s.Tray = false
	}

	return s
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}

func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetString(name)
	}

	return val
}

func getIntFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetInt(name)
	}

	return val
}
