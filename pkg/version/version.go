package version

import (
	"runtime/debug"
)

// Set at build time with -ldflags "-X".
var (
	Version  = "0.0.0"
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "0.0.0" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Revision == "unknown" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				Revision = s.Value
			}
		}
	}
}

// String returns the version and revision in the form "version+revision".
func String() string {
	return Version + "+" + Revision
}
