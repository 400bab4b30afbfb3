package promoter

import "sort"

// SortVersions returns candidates in the order a resolver should try them
// for pkg:
//  1. strict only: drop candidates outside the level (Filter)
//  2. sort with Compare (stable, so equal candidates keep input order)
//  3. move the locked version last unless pkg is unlocked
//
// Without Strict the result is a permutation of in. The input slice is never
// modified; an empty input yields an empty, non-nil result.
func (p Policy) SortVersions(pkg Package, in []Candidate) []Candidate {
	pkg = orNoPackage(pkg)

	var out []Candidate
	if p.strict {
		out = p.Filter(pkg, in)
	} else {
		out = append(make([]Candidate, 0, len(in)), in...)
	}

	if len(out) > 1 {
		sort.SliceStable(out, func(i, j int) bool {
			return p.Compare(pkg, out[i].Version(), out[j].Version()) < 0
		})
	}

	return p.stabilize(pkg, out)
}

// SortVersionsN sorts and then returns at most n candidates (n <= 0 means all).
func (p Policy) SortVersionsN(pkg Package, in []Candidate, n int) []Candidate {
	return capCandidates(p.SortVersions(pkg, in), n)
}

// orNoPackage treats a nil Package as an unlocked dependency without a lock.
func orNoPackage(pkg Package) Package {
	if pkg == nil {
		return Dependency{}
	}

	return pkg
}
