// Package buildinfo normalizes the version, commit, and date strings injected
// via ldflags at build time.
package buildinfo

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// New returns an Info with the version normalized by NormalizeVersion.
func New(version, commit, date string) Info {
	return Info{
		Version: NormalizeVersion(version),
		Commit:  commit,
		Date:    date,
	}
}

// NormalizeVersion renders a semver version as "vMAJOR.MINOR.PATCH[-pre][+meta]".
// Strings that are not semver (e.g. "dev") are returned unchanged.
func NormalizeVersion(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return version
	}
	return "v" + v.String()
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
