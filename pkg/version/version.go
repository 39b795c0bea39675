// Package version reports the build version of digicarbon.
package version

// Set at build time with -ldflags "-X github.com/digicarbon/digicarbon/pkg/version.version=...".
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = "dev"
	gitCommit = ""
)

// GetVersion returns the build version, with the commit when known.
func GetVersion() string {
	if gitCommit == "" {
		return version
	}
	return version + " (" + gitCommit + ")"
}
