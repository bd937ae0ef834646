package buildinfo

import "runtime/debug"

var BuildInfo *debug.BuildInfo

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	}
	BuildInfo = info
}

// Version returns the main module version, "(devel)" for local builds.
func Version() string {
	return BuildInfo.Main.Version
}
