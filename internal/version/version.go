// Package version reports the ovly build version.
package version

import "runtime/debug"

// Injected at build time via -ldflags "-X github.com/Norgate-AV/ovly/internal/version.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the semantic version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit hash. Local builds fall back to the VCS
// revision stamped by the Go toolchain when one is available.
func GetCommit() string {
	if commit != "none" {
		return commit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}

	return commit
}

// GetDate returns the build date.
func GetDate() string {
	return date
}

// GetFullVersion returns version with commit and date info
func GetFullVersion() string {
	return GetVersion() + " (commit: " + GetCommit() + ", built: " + GetDate() + ")"
}
