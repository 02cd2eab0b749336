// Package category assigns scholarship category tags to programs. The
// assignment is an offline pass run when a catalog is authored or updated;
// fee calculation reads the stored tag and never recomputes it.
package category

import (
	"strings"

	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
	"github.com/codermillat/wbe-uni-fee-compare/internal/normalize"
)

const (
	Category1 = "category1"
	Category2 = "category2"
	Category3 = "category3"
	Category4 = "category4"
)

// category1Degrees covers engineering, management, computing, architecture,
// law and journalism programs.
var category1Degrees = map[string]bool{
	"B.Tech":         true,
	"B.Tech Lateral": true,
	"M.Tech":         true,
	"BBA":            true,
	"MBA":            true,
	"BCA":            true,
	"MCA":            true,
	"B.Arch":         true,
	"LLB":            true,
	"BA LLB":         true,
	"BBA LLB":        true,
	"LLM":            true,
	"BJMC":           true,
	"MJMC":           true,
}

// category1Allied lists allied-health B.Sc specializations grouped with the
// professional programs rather than the general sciences.
var category1Allied = []string{
	"radiology",
	"medical lab technology",
	"optometry",
	"operation theatre",
}

// category4Degrees covers medical and pharmacy programs.
var category4Degrees = map[string]bool{
	"MBBS":    true,
	"BDS":     true,
	"B.Pharm": true,
	"D.Pharm": true,
	"M.Pharm": true,
	"BPT":     true,
}

// Assign returns the scholarship category tag for a program. Rules apply in
// order; the first that fires wins, and anything unclassified falls through
// to category3.
func Assign(p catalog.Program) string {
	degree := normalize.NormalizeDegree(p.Degree).Key()
	spec := strings.ToLower(p.Specialization)

	if category1Degrees[degree] {
		return Category1
	}
	if degree == "B.Sc" {
		for _, allied := range category1Allied {
			if strings.Contains(spec, allied) {
				return Category1
			}
		}
	}

	if (degree == "B.Sc" || degree == "Diploma") && p.Field == "Nursing" {
		return Category2
	}

	if category4Degrees[degree] {
		return Category4
	}
	if degree == "M.Sc" && p.Field == "Nursing" {
		return Category4
	}

	return Category3
}
