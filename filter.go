package promoter

// Filter keeps the candidates that stay inside the policy's level relative to
// the package's locked version. Without a lock, or at LevelMajor, every
// candidate passes. The input slice is not modified.
//
//	LevelMinor: major must match the lock, version >= lock
//	LevelPatch: major and minor must match the lock, version >= lock
func (p Policy) Filter(pkg Package, in []Candidate) []Candidate {
	pkg = orNoPackage(pkg)
	out := make([]Candidate, 0, len(in))

	locked := pkg.LockedVersion()
	if locked == nil || p.level == LevelMajor {
		return append(out, in...)
	}

	n := scopeSegments(p.level)
	for _, c := range in {
		if !inScope(c.Version(), locked, n) {
			continue
		}
		out = append(out, c)
	}

	return out
}

// scopeSegments returns how many leading segments must equal the lock.
func scopeSegments(l Level) int {
	switch l {
	case LevelMinor:
		return 1
	case LevelPatch:
		return 2
	default:
		return 0
	}
}

// inScope reports whether v shares the first n segments with locked and is
// not older than it.
func inScope(v, locked Version, n int) bool {
	for i := 0; i < n; i++ {
		if v.Segment(i) != locked.Segment(i) {
			return false
		}
	}

	return atLeast(v, locked)
}

// atLeast reports v >= locked. Canonically equal versions count as equal even
// when the underlying comparison breaks ties on the original spelling.
func atLeast(v, locked Version) bool {
	return v.Compare(locked) >= 0 || v.String() == locked.String()
}
