// Package version reports the build version of the wallie binary.
//
// Release builds inject the values with ldflags:
//
//	go build -ldflags="-X github.com/wallie/wallie/internal/version.Version=v1.2.3 \
//	                   -X github.com/wallie/wallie/internal/version.Commit=abc123"
//
// Other builds derive them from the VCS stamp Go embeds in the binary, and
// fall back to "dev" and "unknown".
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// Version is the semantic version, or "dev-YYYYMMDD" for untagged builds
	Version = ""
	// Commit is the short git commit hash, suffixed "-dirty" for modified trees
	Commit = ""
)

const (
	shortHashLen = 7
	shortMaxLen  = 16
)

func init() {
	var settings map[string]string
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = make(map[string]string, len(info.Settings))
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}

	if Commit == "" {
		Commit = commitFromVCS(settings)
	}
	if Version == "" {
		Version = versionFromVCS(settings)
	}
}

// commitFromVCS returns the short revision from build settings
func commitFromVCS(settings map[string]string) string {
	rev := settings["vcs.revision"]
	if rev == "" {
		return "unknown"
	}
	if len(rev) > shortHashLen {
		rev = rev[:shortHashLen]
	}
	if settings["vcs.modified"] == "true" {
		rev += "-dirty"
	}
	return rev
}

// versionFromVCS returns a dev version dated by the commit time
func versionFromVCS(settings map[string]string) string {
	if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
		return "dev-" + t.Format("20060102")
	}
	return "dev"
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Short returns the version without commit details, as shown in the TUI header.
func Short() string {
	if len(Version) > shortMaxLen {
		return Version[:shortMaxLen]
	}
	return Version
}
