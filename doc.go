/*
Package promoter orders candidate versions of a dependency for a resolver,
biased toward how far the dependency is allowed to move from its locked
version.

The package is resolver-agnostic: it works on values implementing Version,
Candidate and Package, and never fetches, parses or resolves anything itself.
Adapters for tag-style SemVer (ParseSemver) and Go module versions
(ParseModVersion) are provided.

Pipeline of Policy.SortVersions:

 1. Strict only: Filter drops candidates outside the level relative to the
    locked version (patch: same major.minor, minor: same major; never older
    than the lock). LevelMajor and unlocked packages pass everything.
 2. Sort with Policy.Compare, a ranked list of pairwise rules:
    prerelease first, plain ascending at LevelMajor or below the lock,
    highest first across a major (or, at LevelPatch, a minor) boundary,
    otherwise smallest bump first.
 3. Unless the package is unlocked, move the locked version itself to the
    end: staying put is the last resort.

Levels:
  - LevelMajor (default): anything goes, no filtering, no anchoring.
  - LevelMinor: keep the major.
  - LevelPatch: keep major and minor.

Usage example:

	p, err := promoter.NewPolicy("minor", false)
	if err != nil {
		return err
	}

	lock, _ := promoter.ParseSemver("1.5.0")
	pkg := promoter.Dependency{Name: "rack", Locked: lock}

	var in []promoter.Candidate
	for _, t := range []string{"1.4.0", "1.5.0", "1.5.1", "1.6.0", "2.0.0"} {
		v, _ := promoter.ParseSemver(t)
		in = append(in, promoter.Spec{Ver: v, Payload: t})
	}

	for _, c := range p.SortVersions(pkg, in) {
		fmt.Println(c.(promoter.Spec).Payload)
	}
	// 1.4.0 2.0.0 1.5.1 1.6.0 1.5.0

Policy setters are not synchronized. Sorting methods take the policy by
value, so give each resolution run its own copy.
*/
package promoter
