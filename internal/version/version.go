// Package version reports which build of the crosshair overlay is running.
package version

// Overridden with -ldflags "-X crosshair-overlay/internal/version.Version=..." at release.
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String describes the build in one line.
func String() string {
	return Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
