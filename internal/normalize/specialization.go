package normalize

import (
	"regexp"
	"strings"
)

// Specialization text mixes degree names into the branch name ("B.Tech in
// Data Science" vs "Data Science"), so matching strips degree prefixes and
// generic trailing words before comparing.
var (
	degreePrefixRE = regexp.MustCompile(`^(b\.?tech|b\.?e\.?|bachelor of|b\.?sc|b\.?a|bba|bcom|m\.?tech|m\.?e|mba|m\.?sc|m\.?a|mca|llb|llm|phd|pharm\.?d|b\.?arch|b\.?des|b\.?pharm|bpt|b\.?optom|mpt|m\.?pharm|m\.?arch|m\.?des|m\.?com|m\.?ed|b\.?ed|d\.?pharm|diploma in|certificate in|master of|doctor of)\s*`)
	genericSuffixRE = regexp.MustCompile(`\s*(engineering|science|technology|management|administration|commerce|arts|law|pharmacy|architecture|design|education|nursing|physiotherapy|optometry|applications|studies|program)$`)
	parensRE        = regexp.MustCompile(`[()]`)
	whitespaceRE    = regexp.MustCompile(`\s+`)
)

// NormalizeSpecialization canonicalizes a free-text specialization for
// comparison. Total function: worst case it returns the trimmed lowercased
// input.
func NormalizeSpecialization(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = degreePrefixRE.ReplaceAllString(s, "")
	s = genericSuffixRE.ReplaceAllString(s, "")
	s = parensRE.ReplaceAllString(s, " ")
	s = whitespaceRE.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
