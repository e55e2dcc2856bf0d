// Package version reports build information for the CLI and the API
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Set at build time:
//
//	-ldflags "-X 'stopwords/internal/core/version.version=v0.1.0'
//	          -X 'stopwords/internal/core/version.commit=abcd'
//	          -X 'stopwords/internal/core/version.date=2026-01-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information; commit and date fall back to the
// VCS stamp embedded by the go tool when ldflags did not set them
func Info() BuildInfo {
	bi := BuildInfo{
		Service:   "stopwords",
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && bi.Commit == "none":
				bi.Commit = s.Value
			case s.Key == "vcs.time" && bi.Date == "unknown":
				bi.Date = s.Value
			}
		}
		if bi.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			bi.Version = info.Main.Version
		}
	}
	return bi
}
