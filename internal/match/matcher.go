package match

import (
	"fmt"

	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
	"github.com/codermillat/wbe-uni-fee-compare/internal/normalize"
)

// Quality grades how comparable a matched program is to the selection.
type Quality string

const (
	QualityPerfect     Quality = "perfect"
	QualityGood        Quality = "good"
	QualityApproximate Quality = "approximate"
	QualityNoMatch     Quality = "no-match"
)

// Result is a qualifying counterpart found in a candidate pool.
type Result struct {
	Program catalog.Program
	Quality Quality
	Score   float64
	Reason  string
}

// FindBestMatch picks the single most comparable program out of candidates,
// or nil when none qualifies. Candidates must share the selected program's
// canonical degree and its duration; within that pool, specialization
// similarity decides the winner. Ties keep the first candidate scanned.
func FindBestMatch(selected catalog.Program, candidates []catalog.Program) *Result {
	if len(candidates) == 0 {
		return nil
	}

	selectedKey := normalize.NormalizeDegree(selected.Degree).Key()

	var pool []catalog.Program
	for _, c := range candidates {
		if normalize.NormalizeDegree(c.Degree).Key() == selectedKey && c.Duration == selected.Duration {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	for _, c := range pool {
		if s := ScoreSpecializations(c.Specialization, selected.Specialization); s.Value >= PerfectThreshold {
			return &Result{
				Program: c,
				Quality: QualityPerfect,
				Score:   scoreExact,
				Reason:  "Perfect match: Same degree, duration, and specialization",
			}
		}
	}

	var best *catalog.Program
	bestScore := 0.0
	for i, c := range pool {
		s := ScoreSpecializations(c.Specialization, selected.Specialization)
		if s.Match() && s.Value > bestScore {
			bestScore = s.Value
			best = &pool[i]
		}
	}
	if best == nil {
		return nil
	}

	switch {
	case bestScore >= GoodThreshold:
		return &Result{
			Program: *best,
			Quality: QualityGood,
			Score:   bestScore,
			Reason: fmt.Sprintf("Strong match: Same degree (%s) and duration (%d years) with similar specialization",
				selected.Degree, selected.Duration),
		}
	case bestScore >= MatchThreshold:
		return &Result{
			Program: *best,
			Quality: QualityApproximate,
			Score:   bestScore,
			Reason: fmt.Sprintf("Related match: Same degree (%s) and duration (%d years) but different specialization",
				selected.Degree, selected.Duration),
		}
	}
	return nil
}

// Pool is one university's candidate programs for fan-out matching.
type Pool struct {
	UniversityID string
	Programs     []catalog.Program
}

// UniversityMatch pairs a university with its match result. Result is nil
// when that university offered no qualifying counterpart.
type UniversityMatch struct {
	UniversityID string
	Result       *Result
}

// Overall summarizes a fan-out: the best quality seen across every pool.
type Overall struct {
	Quality Quality
	Reason  string
}

// BestAcross runs the matcher against every pool independently and grades
// the fan-out as a whole. Perfect beats good; beyond that the first pool
// that produced any match sets the overall grade.
func BestAcross(selected catalog.Program, pools []Pool) ([]UniversityMatch, Overall) {
	results := make([]UniversityMatch, 0, len(pools))
	var overall *Result
	for _, p := range pools {
		r := FindBestMatch(selected, p.Programs)
		results = append(results, UniversityMatch{UniversityID: p.UniversityID, Result: r})
		if r == nil {
			continue
		}
		if overall == nil {
			overall = r
			continue
		}
		if rank(r.Quality) > rank(overall.Quality) {
			overall = r
		}
	}
	if overall == nil {
		return results, Overall{
			Quality: QualityNoMatch,
			Reason:  fmt.Sprintf("No comparable program found for %s at other universities", selected.Name),
		}
	}
	return results, Overall{Quality: overall.Quality, Reason: overall.Reason}
}

func rank(q Quality) int {
	switch q {
	case QualityPerfect:
		return 3
	case QualityGood:
		return 2
	case QualityApproximate:
		return 1
	}
	return 0
}
