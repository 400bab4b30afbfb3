package promoter

import "testing"

func TestParseModVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		canon string
		seg   [3]int
		pre   bool
	}{
		{"v1.2.3", "v1.2.3", [3]int{1, 2, 3}, false},
		{"1.2.3", "v1.2.3", [3]int{1, 2, 3}, false},
		{"v1.2", "v1.2.0", [3]int{1, 2, 0}, false},
		{"3", "v3.0.0", [3]int{3, 0, 0}, false},
		{"v1.2.3+meta", "v1.2.3", [3]int{1, 2, 3}, false},
		{"v0.0.0-20240101000000-abcdefabcdef", "v0.0.0-20240101000000-abcdefabcdef", [3]int{0, 0, 0}, true},
		{"v2.0.0-rc.1", "v2.0.0-rc.1", [3]int{2, 0, 0}, true},
	}

	for _, tc := range cases {
		v, ok := ParseModVersion(tc.in)
		if !ok {
			t.Fatalf("ParseModVersion(%q) failed", tc.in)
		}
		if v.String() != tc.canon {
			t.Fatalf("ParseModVersion(%q).String() = %q; want %q", tc.in, v.String(), tc.canon)
		}
		for i, want := range tc.seg {
			if got := v.Segment(i); got != want {
				t.Fatalf("ParseModVersion(%q).Segment(%d) = %d; want %d", tc.in, i, got, want)
			}
		}
		if v.IsPrerelease() != tc.pre {
			t.Fatalf("ParseModVersion(%q).IsPrerelease() = %v; want %v", tc.in, v.IsPrerelease(), tc.pre)
		}
		if v.Original() != tc.in {
			t.Fatalf("ParseModVersion(%q).Original() = %q", tc.in, v.Original())
		}
	}

	for _, bad := range []string{"", "latest", "v1.2.3.4", "1.02.3"} {
		if _, ok := ParseModVersion(bad); ok {
			t.Fatalf("ParseModVersion(%q) accepted", bad)
		}
	}
}

func TestModVersion_SortVersions(t *testing.T) {
	t.Parallel()

	var in []Candidate
	for _, s := range []string{"v1.3.0", "v1.2.5", "v1.2.1", "v2.0.0", "v1.2.2"} {
		v, ok := ParseModVersion(s)
		if !ok {
			t.Fatalf("ParseModVersion(%q) failed", s)
		}
		in = append(in, Spec{Ver: v, Payload: s})
	}

	lock, _ := ParseModVersion("v1.2.1")
	p := mustPolicy("patch", false)
	got := tagsOf(p.SortVersions(Dependency{Locked: lock}, in))
	want := []string{"v2.0.0", "v1.3.0", "v1.2.2", "v1.2.5", "v1.2.1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v; want %v", got, want)
		}
	}
}

func TestCompareMixed(t *testing.T) {
	t.Parallel()

	mod, _ := ParseModVersion("v1.2.3")
	tagged := MustParseSemver("1.2.4")
	pre := MustParseSemver("1.2.3-rc.1")

	if mod.Compare(tagged) >= 0 || tagged.Compare(mod) <= 0 {
		t.Fatal("want v1.2.3 < 1.2.4 across adapters")
	}
	if pre.Compare(mod) >= 0 || mod.Compare(pre) <= 0 {
		t.Fatal("want 1.2.3-rc.1 < v1.2.3 across adapters")
	}
}
