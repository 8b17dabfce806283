// Package version holds the release version of the binary. Release builds
// override it with -ldflags "-X sportsterminal/internal/version.Version=X.Y.Z".
package version

// Version is the semantic version without the leading "v".
var Version = "1.0.0"
