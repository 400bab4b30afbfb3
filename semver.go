package promoter

import "github.com/woozymasta/semver"

// Semver adapts a tag-style SemVer value (github.com/woozymasta/semver)
// to Version. Shorthand tags X / X.Y and a leading "v" are accepted.
type Semver struct {
	v semver.Semver
}

var _ Version = Semver{}

// ParseSemver parses a tag. It reports false for anything that is not a
// valid SemVer-like tag.
func ParseSemver(s string) (Semver, bool) {
	v, ok := semver.Parse(s)
	if !ok || !v.IsValid() {
		return Semver{}, false
	}
	// keep original for output selection
	v.Original = s

	return Semver{v: v}, true
}

// MustParseSemver is like ParseSemver but panics on invalid input.
// Intended for tests and static tables.
func MustParseSemver(s string) Semver {
	v, ok := ParseSemver(s)
	if !ok {
		panic("promoter: invalid semver " + s)
	}

	return v
}

// Compare implements Version.
func (s Semver) Compare(other Version) int {
	if o, ok := other.(Semver); ok {
		return s.v.Compare(o.v)
	}

	return compareMixed(s, other)
}

// Segment implements Version.
func (s Semver) Segment(i int) int {
	switch i {
	case 0:
		return s.v.Major
	case 1:
		return s.v.Minor
	case 2:
		return s.v.Patch
	default:
		return 0
	}
}

// IsPrerelease implements Version.
func (s Semver) IsPrerelease() bool {
	return s.v.HasPre()
}

// String returns the canonical "vMAJOR.MINOR.PATCH[-PRERELEASE]" form.
func (s Semver) String() string {
	return s.v.Canonical()
}

// Original returns the tag as it was given to ParseSemver.
func (s Semver) Original() string {
	return s.v.Original
}
