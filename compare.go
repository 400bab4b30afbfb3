package promoter

// ruleInput is everything a comparison rule may look at.
type ruleInput struct {
	level      Level
	locked     Version // nil => no lock
	prerelease bool    // package constraint names a prerelease
	a, b       Version
}

// rule returns an ordering and true when it applies to the pair.
type rule func(in ruleInput) (int, bool)

// rules are evaluated in order; the first one that applies decides.
//
// The result is not a strict weak ordering in general: which rule fires
// depends on the pair, not on a per-element key. Callers rely on the exact
// outcome, so keep the order and the asc/desc asymmetry as is.
var rules = []rule{
	prereleaseFirst,
	unrestricted,
	belowLock,
	majorMismatch,
	minorMismatch,
	natural,
}

// Compare orders two candidate versions for pkg under the policy.
// Negative means a should be tried before b.
func (p Policy) Compare(pkg Package, a, b Version) int {
	pkg = orNoPackage(pkg)
	in := ruleInput{
		level:      p.level,
		locked:     pkg.LockedVersion(),
		prerelease: pkg.PrereleaseSpecified(),
		a:          a,
		b:          b,
	}

	for _, r := range rules {
		if c, ok := r(in); ok {
			return c
		}
	}

	return 0
}

// prereleaseFirst puts a prerelease ahead of a release, unless the package is
// locked and its constraint already asks for a prerelease.
func prereleaseFirst(in ruleInput) (int, bool) {
	if in.locked != nil && in.prerelease {
		return 0, false
	}

	switch ap, bp := in.a.IsPrerelease(), in.b.IsPrerelease(); {
	case ap && !bp:
		return -1, true
	case !ap && bp:
		return 1, true
	default:
		return 0, false
	}
}

// unrestricted: at LevelMajor plain ascending order.
func unrestricted(in ruleInput) (int, bool) {
	if in.level != LevelMajor {
		return 0, false
	}

	return in.a.Compare(in.b), true
}

// belowLock: anything older than the lock is out of any promotion scope,
// fall back to ascending order.
func belowLock(in ruleInput) (int, bool) {
	if in.locked == nil {
		return 0, false
	}

	if in.a.Compare(in.locked) < 0 || in.b.Compare(in.locked) < 0 {
		return in.a.Compare(in.b), true
	}

	return 0, false
}

// majorMismatch: crossing a major is out of scope for every level; when it
// cannot be avoided prefer the higher version.
func majorMismatch(in ruleInput) (int, bool) {
	if in.a.Segment(0) == in.b.Segment(0) {
		return 0, false
	}

	return in.b.Compare(in.a), true
}

// minorMismatch: same as majorMismatch one segment finer, for LevelPatch.
func minorMismatch(in ruleInput) (int, bool) {
	if in.level == LevelMinor || in.a.Segment(1) == in.b.Segment(1) {
		return 0, false
	}

	return in.b.Compare(in.a), true
}

// natural: smallest sufficient bump first.
func natural(in ruleInput) (int, bool) {
	return in.a.Compare(in.b), true
}
