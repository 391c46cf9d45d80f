// Package misc keeps build time program information.
package misc

import (
	"runtime/debug"
)

var (
	appName = "sbc"
	version = "dev"
)

// GetAppName returns short program name, used for logs, reports and temp files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version as set during the build.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision recorded in the build info if available.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
