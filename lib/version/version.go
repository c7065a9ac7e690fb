// Package version holds the diaelem release, stamped at build time with
// -ldflags "-X oss.terrastruct.com/diaelem/lib/version.Version=...".
package version

import "regexp"

var Version = "v0.1.0-HEAD"

var semverRegex = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+`)

// OnlyNumbers returns the x.y.z part of Version, or "" if there is none.
func OnlyNumbers() string {
	return semverRegex.FindString(Version)
}
