package promoter

// stabilize moves candidates equal to the locked version to the end, keeping
// the relative order of both groups. Staying exactly where the package is
// becomes the last resort. Nothing moves at LevelMajor, when the package is
// unlocked, or when there is no lock.
func (p Policy) stabilize(pkg Package, sorted []Candidate) []Candidate {
	if p.level == LevelMajor {
		return sorted
	}

	locked := pkg.LockedVersion()
	if pkg.Unlock() || locked == nil {
		return sorted
	}

	key := locked.String()
	out := make([]Candidate, 0, len(sorted))
	var same []Candidate
	for _, c := range sorted {
		if c.Version().String() == key {
			same = append(same, c)
			continue
		}
		out = append(out, c)
	}

	return append(out, same...)
}
