// Package match pairs a selected program with the most comparable program
// at other universities. Scoring is a heuristic over normalized
// specialization text, not exact string matching.
package match

import (
	"strings"

	"github.com/codermillat/wbe-uni-fee-compare/internal/normalize"
)

// ScoreTier labels which rule produced a specialization score.
type ScoreTier string

const (
	TierExact    ScoreTier = "exact"
	TierContains ScoreTier = "contains"
	TierGroup    ScoreTier = "group"
	TierPartial  ScoreTier = "partial"
	TierNone     ScoreTier = "none"
)

// Score thresholds. A pair scoring at or above MatchThreshold counts as a
// match; PerfectThreshold and GoodThreshold grade match quality.
const (
	scoreExact    = 100.0
	scoreContains = 90.0
	scoreGroup    = 85.0
	partialWeight = 70.0

	MatchThreshold   = 50.0
	GoodThreshold    = 70.0
	PerfectThreshold = 90.0
)

// Score is the outcome of comparing two specialization strings.
type Score struct {
	Value float64
	Tier  ScoreTier
}

// Match reports whether the score clears the match threshold.
func (s Score) Match() bool {
	return s.Value >= MatchThreshold
}

// stopwords are generic tokens that carry no discriminating signal for the
// partial-overlap rule.
var stopwords = map[string]bool{
	"engineering": true,
	"science":     true,
	"technology":  true,
	"management":  true,
	"studies":     true,
	"and":         true,
	"with":        true,
	"in":          true,
}

// ScoreSpecializations computes the closeness of two specialization strings.
// Rules apply in strict precedence order; the first that fires wins:
//
//  1. Equal after normalization -> 100, exact.
//  2. One normalized string contains the other -> 90, contains.
//  3. Both belong to the same synonym group -> 85, group.
//  4. Significant-token overlap scaled to 70 -> partial if it clears the
//     match threshold, none otherwise.
//
// Symmetric by construction: every rule treats a and b interchangeably.
func ScoreSpecializations(a, b string) Score {
	normA := normalize.NormalizeSpecialization(a)
	normB := normalize.NormalizeSpecialization(b)

	if normA == normB {
		return Score{Value: scoreExact, Tier: TierExact}
	}

	if strings.Contains(normA, normB) || strings.Contains(normB, normA) {
		return Score{Value: scoreContains, Tier: TierContains}
	}

	for _, group := range specializationGroups {
		if inGroup(normA, group) && inGroup(normB, group) {
			return Score{Value: scoreGroup, Tier: TierGroup}
		}
	}

	tokensA := significantTokens(normA)
	tokensB := significantTokens(normB)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return Score{Tier: TierNone}
	}

	common := 0
	for _, tok := range tokensA {
		for _, other := range tokensB {
			if tok == other {
				common++
				break
			}
		}
	}
	if common == 0 {
		return Score{Tier: TierNone}
	}

	value := float64(common) / float64(max(len(tokensA), len(tokensB))) * partialWeight
	if value >= MatchThreshold {
		return Score{Value: value, Tier: TierPartial}
	}
	return Score{Value: value, Tier: TierNone}
}

// inGroup reports group membership via bidirectional substring containment,
// so abbreviated catalog entries ("cse") and verbose ones still hit the same
// group.
func inGroup(norm string, group []string) bool {
	if norm == "" {
		return false
	}
	for _, variant := range group {
		if strings.Contains(norm, variant) || strings.Contains(variant, norm) {
			return true
		}
	}
	return false
}

// significantTokens splits a normalized specialization into tokens worth
// comparing: longer than three characters and not a stopword.
func significantTokens(norm string) []string {
	var tokens []string
	for _, tok := range strings.Fields(norm) {
		if len(tok) <= 3 || stopwords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
