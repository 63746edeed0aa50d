package version

import "runtime/debug"

var (
	// Build-time parameters set via -ldflags
	Version = "unknown"
)

// Without -ldflags, as with `go install`, fall back to the module version
// embedded in the binary.
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	mainVersion := info.Main.Version
	if mainVersion == "" || mainVersion == "(devel)" {
		// bin not built using `go install`
		return
	}
	Version = mainVersion
}
