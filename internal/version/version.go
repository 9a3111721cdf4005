// Package version reports the emcodec build.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version and Commit can be set at build time:
//
//	go build -ldflags="-X github.com/muurk/emcodec/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/emcodec/internal/version.Commit=abc1234" ./cmd/emcodec
//
// Otherwise they are taken from the VCS stamp in the build info.
var (
	Version = ""
	Commit  = ""
)

// GoVersion is the toolchain the binary was built with.
var GoVersion = "unknown"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		apply(info)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// apply fills unset values from build info.
func apply(info *debug.BuildInfo) {
	if info.GoVersion != "" {
		GoVersion = info.GoVersion
	}

	// Module version is set for `go install github.com/muurk/emcodec/cmd/emcodec@v1.2.3`
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			Commit = rev[:min(len(rev), 7)]
			if settings["vcs.modified"] == "true" {
				Commit += "-dirty"
			}
		}
	}
	if Version == "" {
		if t := settings["vcs.time"]; len(t) >= len("2006-01-02") {
			Version = "dev-" + strings.ReplaceAll(t[:10], "-", "")
		}
	}
}

// Full returns the version, commit and toolchain on one line.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s)", Version, Commit, GoVersion)
}
