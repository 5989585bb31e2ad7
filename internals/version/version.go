package version

import (
	"runtime/debug"
	"strings"
)

// SemVer is set at build time for releases.
//
// Example:
//
//	-ldflags "-X github.com/marover/webpilot/internals/version.SemVer=1.2.3"
var SemVer = "0.0.0-dev"

// Version returns SemVer plus the vcs revision as build metadata when the
// binary carries one.
func Version() string {
	v := strings.TrimSpace(SemVer)
	if v == "" {
		v = "0.0.0-dev"
	}
	rev, dirty := vcsInfo()
	if rev == "" {
		return v
	}
	if dirty {
		rev += "-dirty"
	}
	if strings.Contains(v, "+") {
		return v + "." + rev
	}
	return v + "+" + rev
}

func vcsInfo() (rev string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = strings.TrimSpace(s.Value)
		case "vcs.modified":
			dirty = strings.TrimSpace(s.Value) == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return rev, dirty
}
