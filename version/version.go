// Package version reports the build version of gosurvey.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// readBuildInfo is replaced in tests
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the version string. Without ldflags the module version
// recorded by go install is used when there is one.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// GetFullVersion returns the version with commit and build date when known
func GetFullVersion() string {
	commit, date := GitCommit, BuildDate
	if commit == "unknown" {
		if info, ok := readBuildInfo(); ok {
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					commit = s.Value
				case "vcs.time":
					if date == "unknown" {
						date = s.Value
					}
				}
			}
		}
	}

	v := GetVersion()
	if commit == "unknown" {
		return v
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", v, commit, date)
}
