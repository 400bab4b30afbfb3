package promoter

// specs builds Spec candidates from tags.
func specs(tags ...string) []Candidate {
	out := make([]Candidate, 0, len(tags))
	for _, t := range tags {
		out = append(out, Spec{Ver: MustParseSemver(t), Payload: t})
	}

	return out
}

// tagsOf returns the payload tags of Spec candidates, in order.
func tagsOf(in []Candidate) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		out = append(out, c.(Spec).Payload.(string))
	}

	return out
}

func locked(tag string) Dependency {
	return Dependency{Name: "pkg", Locked: MustParseSemver(tag)}
}

func mustPolicy(level string, strict bool) Policy {
	p, err := NewPolicy(level, strict)
	if err != nil {
		panic(err)
	}

	return p
}
