package utils

import (
	"runtime/debug"
	"strings"
)

// version will be set by GoReleaser during builds
var version string

// GetVersion returns the current version of the application. If
// version was not injected via ldflags it falls back to Go's build
// info, then to "unknown". Any leading "v" prefix is stripped.
func GetVersion() string {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		} else {
			v = "unknown"
		}
	}
	return strings.TrimPrefix(v, "v")
}
