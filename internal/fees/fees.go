// Package fees computes cost breakdowns for programs. Each university runs
// a distinct fee and scholarship scheme; a Rule bound at catalog load time
// encapsulates that scheme so calculation call sites stay uniform.
package fees

import "github.com/codermillat/wbe-uni-fee-compare/internal/catalog"

// TierType labels which scholarship path produced a calculated tier.
type TierType string

const (
	TypeFlat        TierType = "flat"
	TypeStandard    TierType = "standard"
	TypeEnhanced    TierType = "enhanced"
	TypeGPATiered   TierType = "gpa-tiered"
	TypeCourseBased TierType = "course-based"
)

// TierCalc is one scholarship option fully priced out for a program.
type TierCalc struct {
	Name       string   `json:"name"`
	Percentage float64  `json:"percentage"`
	GPAMin     float64  `json:"gpaMin"`
	GPAMax     float64  `json:"gpaMax"`
	Conditions string   `json:"conditions,omitempty"`
	Type       TierType `json:"type"`

	YearlyFees []float64 `json:"yearlyFees"`
	TotalFees  float64   `json:"totalFees"`
	Savings    float64   `json:"savings"`
}

// Breakdown itemizes the non-tuition components of a calculation.
type Breakdown struct {
	OneTime   float64 `json:"oneTime"`
	Recurring float64 `json:"recurring"`
	// Industry is charged once in year 1 for flagged programs at
	// course-based universities, zero everywhere else.
	Industry float64 `json:"industry,omitempty"`
	// Enhanced components only apply to enhanced tiers, where the
	// comprehensive package fee replaces the standard one-time + recurring
	// total.
	EnhancedComprehensive float64 `json:"enhancedComprehensive,omitempty"`
	EnhancedRecurring     float64 `json:"enhancedRecurring,omitempty"`
}

// Calculation is the complete fee picture for one program at one
// university: every scholarship path priced out, plus the undiscounted
// total for comparison.
type Calculation struct {
	UniversityID string         `json:"universityId"`
	ProgramID    string         `json:"programId"`
	Scheme       catalog.Scheme `json:"scheme"`
	Breakdown    Breakdown      `json:"breakdown"`

	// OriginalTotal is the zero-scholarship cost: all annual fees plus
	// one-time, recurring and industry components.
	OriginalTotal float64 `json:"originalTotal"`

	Tiers []TierCalc `json:"tiers"`

	// Enhanced tiers and services are only present at category-tiered
	// universities whose category carries an enhanced tier set.
	Enhanced         []TierCalc `json:"enhanced,omitempty"`
	EnhancedServices []string   `json:"enhancedServices,omitempty"`

	// NoScholarship marks a category that resolves to zero tiers. Distinct
	// from a zero-percent tier: there is no discount path at all.
	NoScholarship       bool   `json:"noScholarship,omitempty"`
	CategoryName        string `json:"categoryName,omitempty"`
	CategoryDescription string `json:"categoryDescription,omitempty"`
}

// GPAScaleMax is the top of the GPA scale every tier window is declared
// on. Values outside [0, GPAScaleMax] are not GPAs.
const GPAScaleMax = 5.0

// EligibleTiers filters tiers to those whose inclusive GPA window admits the
// student. A nil GPA means unknown and filters nothing. Display-side only:
// the monetary figures in each tier are unaffected.
func EligibleTiers(tiers []TierCalc, gpa *float64) []TierCalc {
	if gpa == nil {
		return tiers
	}
	var eligible []TierCalc
	for _, t := range tiers {
		if t.GPAMin <= *gpa && *gpa <= t.GPAMax {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// discount applies a scholarship percentage to every annual fee.
func discount(annualFees []float64, percentage float64) []float64 {
	yearly := make([]float64, len(annualFees))
	for i, fee := range annualFees {
		yearly[i] = fee * (1 - percentage/100)
	}
	return yearly
}

func sum(fees []float64) float64 {
	var total float64
	for _, f := range fees {
		total += f
	}
	return total
}
