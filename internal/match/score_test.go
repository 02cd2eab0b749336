package match

import "testing"

func TestScoreSpecializations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  string
		value float64
		tier  ScoreTier
	}{
		{
			name:  "identical text",
			a:     "Computer Science & Engineering",
			b:     "Computer Science & Engineering",
			value: 100,
			tier:  TierExact,
		},
		{
			name:  "equal after normalization",
			a:     "B.Tech Computer Science",
			b:     "Computer Science",
			value: 100,
			tier:  TierExact,
		},
		{
			name:  "substring containment",
			a:     "Computer Science (Artificial Intelligence)",
			b:     "Artificial Intelligence",
			value: 90,
			tier:  TierContains,
		},
		{
			name:  "synonym group",
			a:     "AIML",
			b:     "Machine Learning",
			value: 85,
			tier:  TierGroup,
		},
		{
			name:  "partial token overlap",
			a:     "Thermal Fluid Power Systems",
			b:     "Thermal Power Systems",
			value: 52.5,
			tier:  TierPartial,
		},
		{
			name: "unrelated branches",
			a:    "Mechanical Engineering",
			b:    "Fashion Design",
			tier: TierNone,
		},
		{
			name: "only short tokens on both sides",
			a:    "IoT",
			b:    "ECE",
			tier: TierNone,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ScoreSpecializations(tt.a, tt.b)
			if got.Value != tt.value {
				t.Errorf("ScoreSpecializations(%q, %q).Value = %v, want %v", tt.a, tt.b, got.Value, tt.value)
			}
			if got.Tier != tt.tier {
				t.Errorf("ScoreSpecializations(%q, %q).Tier = %q, want %q", tt.a, tt.b, got.Tier, tt.tier)
			}
		})
	}
}

func TestScoreSpecializationsReflexive(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Computer Science & Engineering",
		"Nursing",
		"Banking & Finance",
		"Animation, VFX and Gaming",
		"",
	}
	for _, in := range inputs {
		got := ScoreSpecializations(in, in)
		if got.Value != 100 || got.Tier != TierExact {
			t.Errorf("ScoreSpecializations(%q, %q) = %+v, want exact 100", in, in, got)
		}
	}
}

func TestScoreSpecializationsSymmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"Computer Science & Engineering", "CSE"},
		{"Data Science", "Big Data"},
		{"Mechanical Engineering", "Fashion Design"},
		{"Cyber Security", "Computer Science (Cyber Security)"},
	}
	for _, p := range pairs {
		ab := ScoreSpecializations(p[0], p[1])
		ba := ScoreSpecializations(p[1], p[0])
		if ab.Value != ba.Value || ab.Tier != ba.Tier {
			t.Errorf("asymmetric: ScoreSpecializations(%q, %q) = %+v but reversed = %+v", p[0], p[1], ab, ba)
		}
	}
}

func TestScoreMatchThreshold(t *testing.T) {
	t.Parallel()

	if (Score{Value: 50, Tier: TierPartial}).Match() != true {
		t.Error("score of exactly 50 should count as a match")
	}
	if (Score{Value: 49.9, Tier: TierNone}).Match() != false {
		t.Error("score below 50 should not count as a match")
	}
}
