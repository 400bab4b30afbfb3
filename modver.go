package promoter

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ModVersion adapts a Go module version (golang.org/x/mod/semver) to Version.
// It holds the canonical form, so "1.2", "v1.2" and "v1.2.0+meta" are equal.
type ModVersion struct {
	canon string
	seg   [3]int
	pre   bool
	raw   string
}

var _ Version = ModVersion{}

// ParseModVersion accepts X, X.Y, X.Y.Z with or without a leading "v", and
// any other string x/mod/semver considers valid once prefixed with "v".
func ParseModVersion(s string) (ModVersion, bool) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "v") {
		t = "v" + t
	}

	if !semver.IsValid(t) {
		return ModVersion{}, false
	}

	canon := semver.Canonical(t)
	m := modCore.FindStringSubmatch(canon)
	if m == nil {
		return ModVersion{}, false
	}

	out := ModVersion{
		canon: canon,
		pre:   semver.Prerelease(canon) != "",
		raw:   s,
	}
	for i := range out.seg {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			// segment overflows int
			return ModVersion{}, false
		}
		out.seg[i] = n
	}

	return out, true
}

// Compare implements Version.
func (m ModVersion) Compare(other Version) int {
	if o, ok := other.(ModVersion); ok {
		return semver.Compare(m.canon, o.canon)
	}

	return compareMixed(m, other)
}

// Segment implements Version.
func (m ModVersion) Segment(i int) int {
	if i < 0 || i >= len(m.seg) {
		return 0
	}

	return m.seg[i]
}

// IsPrerelease implements Version.
func (m ModVersion) IsPrerelease() bool {
	return m.pre
}

// String returns the canonical module version.
func (m ModVersion) String() string {
	return m.canon
}

// Original returns the string given to ParseModVersion.
func (m ModVersion) Original() string {
	return m.raw
}
