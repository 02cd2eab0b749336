package match

import (
	"strings"
	"testing"

	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
)

func program(id, degree, specialization string, duration int) catalog.Program {
	return catalog.Program{
		ID:             id,
		Name:           degree + " " + specialization,
		Degree:         degree,
		Specialization: specialization,
		Duration:       duration,
	}
}

func TestFindBestMatch(t *testing.T) {
	t.Parallel()

	selected := program("sel", "B.Tech", "Computer Science & Engineering", 4)

	tests := []struct {
		name       string
		candidates []catalog.Program
		wantID     string
		quality    Quality
	}{
		{
			name:       "no candidates",
			candidates: nil,
		},
		{
			name: "duration mismatch excluded",
			candidates: []catalog.Program{
				program("c1", "B.Tech", "Computer Science & Engineering", 3),
			},
		},
		{
			name: "degree mismatch excluded",
			candidates: []catalog.Program{
				program("c1", "BCA", "Computer Science & Engineering", 4),
			},
		},
		{
			name: "exact specialization is perfect",
			candidates: []catalog.Program{
				program("c1", "B.Tech", "Computer Science & Engineering", 4),
			},
			wantID:  "c1",
			quality: QualityPerfect,
		},
		{
			name: "degree spelling variant still qualifies",
			candidates: []catalog.Program{
				program("c1", "B.E.", "Computer Science & Engineering", 4),
			},
			wantID:  "c1",
			quality: QualityPerfect,
		},
		{
			name: "synonym group is good",
			candidates: []catalog.Program{
				program("c1", "B.Tech", "CSE", 4),
			},
			wantID:  "c1",
			quality: QualityGood,
		},
		{
			name: "weak overlap is rejected",
			candidates: []catalog.Program{
				program("c1", "B.Tech", "Fashion Design", 4),
			},
		},
		{
			name: "first perfect candidate wins",
			candidates: []catalog.Program{
				program("c1", "B.Tech", "Computer Science & Engineering", 4),
				program("c2", "B.Tech", "B.Tech Computer Science & Engineering", 4),
			},
			wantID:  "c1",
			quality: QualityPerfect,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FindBestMatch(selected, tt.candidates)
			if tt.wantID == "" {
				if got != nil {
					t.Fatalf("FindBestMatch() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("FindBestMatch() = nil, want a result")
			}
			if got.Program.ID != tt.wantID {
				t.Errorf("matched program %q, want %q", got.Program.ID, tt.wantID)
			}
			if got.Quality != tt.quality {
				t.Errorf("quality = %q, want %q", got.Quality, tt.quality)
			}
			if got.Reason == "" {
				t.Error("result has empty reason")
			}
		})
	}
}

func TestFindBestMatchApproximate(t *testing.T) {
	t.Parallel()

	selected := program("sel", "B.Tech", "Thermal Fluid Power Systems", 4)
	candidates := []catalog.Program{
		program("c1", "B.Tech", "Thermal Power Systems", 4),
	}

	got := FindBestMatch(selected, candidates)
	if got == nil {
		t.Fatal("FindBestMatch() = nil, want an approximate result")
	}
	if got.Quality != QualityApproximate {
		t.Fatalf("quality = %q, want %q", got.Quality, QualityApproximate)
	}
	if got.Score < MatchThreshold || got.Score >= GoodThreshold {
		t.Errorf("score = %v, want within [%v, %v)", got.Score, MatchThreshold, GoodThreshold)
	}
	if !strings.Contains(got.Reason, "B.Tech") || !strings.Contains(got.Reason, "4 years") {
		t.Errorf("reason %q should name the degree and duration", got.Reason)
	}
}

func TestBestAcross(t *testing.T) {
	t.Parallel()

	selected := program("sel", "B.Tech", "Computer Science & Engineering", 4)

	pools := []Pool{
		{UniversityID: "alpha", Programs: []catalog.Program{
			program("a1", "B.Tech", "Fashion Design", 4),
		}},
		{UniversityID: "beta", Programs: []catalog.Program{
			program("b1", "B.Tech", "CSE", 4),
		}},
		{UniversityID: "gamma", Programs: []catalog.Program{
			program("g1", "B.Tech", "Computer Science & Engineering", 4),
		}},
	}

	results, overall := BestAcross(selected, pools)
	if len(results) != 3 {
		t.Fatalf("got %d per-university results, want 3", len(results))
	}
	if results[0].Result != nil {
		t.Errorf("alpha should have no match, got %+v", results[0].Result)
	}
	if results[1].Result == nil || results[1].Result.Quality != QualityGood {
		t.Errorf("beta should match with good quality, got %+v", results[1].Result)
	}
	if results[2].Result == nil || results[2].Result.Quality != QualityPerfect {
		t.Errorf("gamma should match with perfect quality, got %+v", results[2].Result)
	}
	if overall.Quality != QualityPerfect {
		t.Errorf("overall quality = %q, want %q", overall.Quality, QualityPerfect)
	}
}

func TestBestAcrossNoMatch(t *testing.T) {
	t.Parallel()

	selected := program("sel", "B.Tech", "Computer Science & Engineering", 4)
	pools := []Pool{
		{UniversityID: "alpha", Programs: []catalog.Program{
			program("a1", "MBA", "Marketing", 2),
		}},
	}

	_, overall := BestAcross(selected, pools)
	if overall.Quality != QualityNoMatch {
		t.Fatalf("overall quality = %q, want %q", overall.Quality, QualityNoMatch)
	}
	if !strings.Contains(overall.Reason, selected.Name) {
		t.Errorf("reason %q should name the selected program", overall.Reason)
	}
}
