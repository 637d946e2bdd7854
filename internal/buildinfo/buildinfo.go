// Package buildinfo holds release metadata stamped in with -ldflags -X.
package buildinfo

// Empty in local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// VersionOr returns Version, or fallback when the binary was built locally.
func VersionOr(fallback string) string {
	if Version == "" {
		return fallback
	}
	return Version
}
