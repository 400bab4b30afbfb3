package promoter

import (
	"cmp"
	"strings"
)

// Version is an ordered version value consumed by the policy.
type Version interface {
	// Compare returns <0, 0 or >0 when the receiver is lower, equal or higher.
	Compare(other Version) int
	// Segment returns the i-th numeric component: 0 major, 1 minor, 2 patch.
	// Missing components read as 0.
	Segment(i int) int
	// IsPrerelease reports whether the version is not a final release.
	IsPrerelease() bool
	// String returns the canonical form. Two versions with equal strings are
	// the same version for stabilization purposes.
	String() string
}

// Candidate is one entry of the list being ordered. Whatever else the
// candidate carries is opaque to the policy.
type Candidate interface {
	Version() Version
}

// Spec is a plain Candidate carrying a version and an arbitrary payload.
type Spec struct {
	Ver     Version
	Payload any
}

// Version implements Candidate.
func (s Spec) Version() Version {
	return s.Ver
}

// Package describes the dependency being resolved.
type Package interface {
	// LockedVersion returns the currently pinned version or nil.
	LockedVersion() Version
	// Unlock reports whether the caller allows moving away from the lock.
	Unlock() bool
	// PrereleaseSpecified reports whether the user's own constraint
	// already names a prerelease.
	PrereleaseSpecified() bool
}

// Dependency is a plain Package.
type Dependency struct {
	Name       string
	Locked     Version // nil => not locked
	Unlocked   bool
	Prerelease bool
}

// LockedVersion implements Package.
func (d Dependency) LockedVersion() Version {
	return d.Locked
}

// Unlock implements Package.
func (d Dependency) Unlock() bool {
	return d.Unlocked
}

// PrereleaseSpecified implements Package.
func (d Dependency) PrereleaseSpecified() bool {
	return d.Prerelease
}

// compareMixed orders versions coming from different adapters:
// segments first (major, minor, patch), then prerelease before release,
// then the canonical strings.
func compareMixed(a, b Version) int {
	for i := 0; i < 3; i++ {
		if d := cmp.Compare(a.Segment(i), b.Segment(i)); d != 0 {
			return d
		}
	}

	switch ap, bp := a.IsPrerelease(), b.IsPrerelease(); {
	case ap && !bp:
		return -1
	case !ap && bp:
		return 1
	}

	return strings.Compare(a.String(), b.String())
}
