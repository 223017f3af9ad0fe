// Package semver provides the three-component version value type used by
// changelogger. Parsing is strict: exactly major.minor.patch with an optional
// leading "v". Prerelease and build metadata are rejected since release tags
// and version overrides are always plain versions here.
package semver

import (
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Version is a semantic version with strict (major, minor, patch) ordering.
// The zero value is 0.0.0, the "no previous release" version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// strictPattern accepts "1.2.3" and "v1.2.3", nothing else.
var strictPattern = regexp.MustCompile(`^v?\d+\.\d+\.\d+$`)

// Parse parses a version string in strict X.Y.Z form (optional leading "v").
// Returns an error for anything else, including prerelease or build suffixes.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if !strictPattern.MatchString(trimmed) {
		return Version{}, fmt.Errorf("invalid version %q (expected: X.Y.Z)", s)
	}

	v, err := goversion.NewSemver(trimmed)
	if err != nil {
		return Version{}, fmt.Errorf("parsing version %q: %w", s, err)
	}

	seg := v.Segments64()
	return Version{
		Major: uint64(seg[0]),
		Minor: uint64(seg[1]),
		Patch: uint64(seg[2]),
	}, nil
}

// MustParse parses a version string and panics on failure. Test helper.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromTag parses a git tag name as a version. Returns false for tags that
// are not strict semver (those are skipped during tag scanning, not errors).
func FromTag(tag string) (Version, bool) {
	v, err := Parse(tag)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// String returns the bare "X.Y.Z" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag returns the conventional tag name "vX.Y.Z".
func (v Version) Tag() string {
	return "v" + v.String()
}

// IsZero reports whether v is 0.0.0, meaning no release exists yet.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0 or 1 by (major, minor, patch) ordering.
func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		return cmp(v.Major, o.Major)
	}
	if v.Minor != o.Minor {
		return cmp(v.Minor, o.Minor)
	}
	return cmp(v.Patch, o.Patch)
}

// GreaterThan reports whether v > o.
func (v Version) GreaterThan(o Version) bool {
	return v.Compare(o) > 0
}

// BumpMajor returns the next major version (minor and patch reset).
func (v Version) BumpMajor() Version {
	return Version{Major: v.Major + 1}
}

// BumpMinor returns the next minor version (patch reset).
func (v Version) BumpMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// BumpPatch returns the next patch version.
func (v Version) BumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

func cmp(a, b uint64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
