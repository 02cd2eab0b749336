package normalize

import "testing"

func TestNormalizeDegree(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		raw            string
		wantCanonical  string
		wantRecognized bool
	}{
		{"btech dotted", "B.Tech", "B.Tech", true},
		{"bachelor of engineering maps to btech", "Bachelor of Engineering", "B.Tech", true},
		{"be abbreviation", "b.e.", "B.Tech", true},
		{"case and whitespace insensitive", "  MBA  ", "MBA", true},
		{"bsc honours variant", "B.Sc (Hons)", "B.Sc", true},
		{"lateral entry", "BTech Lateral", "B.Tech Lateral", true},
		{"phd spelled out", "Doctor of Philosophy", "Ph.D.", true},
		{"unknown label", "Integrated M.Sc-Ph.D", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeDegree(tt.raw)
			if got.Recognized != tt.wantRecognized {
				t.Fatalf("NormalizeDegree(%q).Recognized = %v, want %v", tt.raw, got.Recognized, tt.wantRecognized)
			}
			if got.Recognized && got.Canonical != tt.wantCanonical {
				t.Errorf("NormalizeDegree(%q).Canonical = %q, want %q", tt.raw, got.Canonical, tt.wantCanonical)
			}
			if got.Raw != tt.raw {
				t.Errorf("NormalizeDegree(%q).Raw = %q, want original input", tt.raw, got.Raw)
			}
		})
	}
}

func TestDegreeKey(t *testing.T) {
	t.Parallel()

	// Recognized degrees group by canonical tag regardless of spelling.
	if NormalizeDegree("b.e.").Key() != NormalizeDegree("B.Tech").Key() {
		t.Error("b.e. and B.Tech should share a degree key")
	}

	// Unrecognized degrees group by lowercased raw text, so the same unknown
	// label in two catalogs still compares equal.
	a := NormalizeDegree("Integrated Law Program")
	b := NormalizeDegree("  integrated law program ")
	if a.Key() != b.Key() {
		t.Errorf("unrecognized keys differ: %q vs %q", a.Key(), b.Key())
	}

	// But distinct unknown labels never collide.
	c := NormalizeDegree("Some Other Program")
	if a.Key() == c.Key() {
		t.Error("distinct unrecognized degrees must not share a key")
	}
}

func TestDegreeString(t *testing.T) {
	t.Parallel()
	if got := NormalizeDegree("bachelor of commerce").String(); got != "B.Com" {
		t.Errorf("String() = %q, want B.Com", got)
	}
	if got := NormalizeDegree("Mystery Degree").String(); got != "Mystery Degree" {
		t.Errorf("String() = %q, want raw passthrough", got)
	}
}
