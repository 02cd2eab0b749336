package normalize

import "testing"

func TestNormalizeSpecialization(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"lowercase and trim", "  Data Science  ", "data"},
		{"strips degree prefix", "B.Tech Computer Science", "computer"},
		{"strips generic suffix", "Mechanical Engineering", "mechanical"},
		{"collapses parentheses", "CSE (AI & ML)", "cse ai & ml"},
		{"collapses whitespace", "cyber   security", "cyber security"},
		{"bachelor of prefix", "Bachelor of Business Administration", "business"},
		{"no-op on plain branch", "cyber security", "cyber security"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeSpecialization(tt.raw); got != tt.want {
				t.Errorf("NormalizeSpecialization(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStandardizeField(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want string
	}{
		{"Computer Science", "Computer Science & IT"},
		{"Computing", "Computer Science & IT"},
		{"Nursing", "Health Sciences"},
		{"Management", "Commerce & Business"},
		{"Liberal Arts", "Arts & Humanities"},
		{"Law", "Law"},
		{"Astrobiology", "Astrobiology"}, // unmapped passes through
	}

	for _, tt := range tests {
		tt := tt
		if got := StandardizeField(tt.raw); got != tt.want {
			t.Errorf("StandardizeField(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDegreeLevelOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		degree string
		want   Level
	}{
		{"B.Tech", LevelBachelor},
		{"b.e.", LevelBachelor},
		{"MBA", LevelMasters},
		{"B.Tech Lateral", LevelLateral},
		{"Diploma", LevelDiploma},
		{"phd", LevelPhD},
		{"Certificate", LevelCertificate},
		{"Mystery Degree", LevelOther},
	}

	for _, tt := range tests {
		tt := tt
		if got := DegreeLevelOf(tt.degree); got != tt.want {
			t.Errorf("DegreeLevelOf(%q) = %q, want %q", tt.degree, got, tt.want)
		}
	}
}
