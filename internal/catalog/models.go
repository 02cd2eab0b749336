// Package catalog provides the static university catalog definitions.
// Catalogs are authored offline, embedded into the binary, and treated as
// immutable, pre-validated data for the lifetime of the process.
package catalog

// Scheme identifies which fee and scholarship rule-set a university uses.
type Scheme string

const (
	// SchemeFlat applies a single flat scholarship percentage to every
	// annual fee, with no recurring fee model.
	SchemeFlat Scheme = "flat"

	// SchemeCategoryTiered selects scholarship tiers by the program's
	// scholarship category and layers a recurring fee schedule
	// (examination, registration, medical, alumni) on top.
	SchemeCategoryTiered Scheme = "categoryTiered"

	// SchemeGPATiered uses a fixed GPA-gated tier list independent of
	// program category, with examination and health insurance recurring fees.
	SchemeGPATiered Scheme = "gpaTiered"

	// SchemeCourseBased selects a flat percentage by degree type alone and
	// adds a one-time industry fee for flagged programs.
	SchemeCourseBased Scheme = "courseBased"
)

// Program is a single degree offering at one university.
// AnnualFees always has exactly Duration entries; catalogs violating that
// are an authoring defect, not something the calculators defend against.
type Program struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Degree         string    `json:"degree"`
	Field          string    `json:"field"`
	Specialization string    `json:"specialization"`
	Duration       int       `json:"duration"`
	AnnualFees     []float64 `json:"annualFees"`
	Highlights     []string  `json:"highlights"`

	// ScholarshipCategory is assigned by the offline categorization pass
	// (cmd/categorize) and only read by category-tiered universities.
	ScholarshipCategory string `json:"scholarshipCategory,omitempty"`

	// Industry fee flags are only read by course-based universities.
	HasIndustryFee       bool    `json:"hasIndustryFee,omitempty"`
	IndustryFeeFirstYear float64 `json:"industryFeeFirstYear,omitempty"`
}

// Tier is one scholarship percentage option gated by an inclusive GPA range.
type Tier struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	GPAMin     float64 `json:"gpaMin"`
	GPAMax     float64 `json:"gpaMax"`
	Conditions string  `json:"conditions,omitempty"`
}

// RecurringFees holds per-year fee amounts. Which fields apply depends on
// the university's scheme; absent components are zero.
type RecurringFees struct {
	Examination     float64 `json:"examination,omitempty"`
	Registration    float64 `json:"registration,omitempty"`
	Medical         float64 `json:"medical,omitempty"`
	Alumni          float64 `json:"alumni,omitempty"`
	HealthInsurance float64 `json:"healthInsurance,omitempty"`
}

// EnhancedFees describes the partner-enhanced package fee structure that
// replaces the standard one-time + recurring total for enhanced tiers.
type EnhancedFees struct {
	// Comprehensive is the year-1 all-inclusive package fee.
	Comprehensive float64 `json:"comprehensive"`
	// Annual is charged each year from year 2 onward.
	Annual   float64  `json:"annual"`
	Services []string `json:"services,omitempty"`
}

// EnhancedTierSet is an alternate tier list layered on the enhanced fee
// structure for one scholarship category.
type EnhancedTierSet struct {
	Tiers []Tier `json:"tiers"`
}

// Category groups programs for scholarship eligibility at a category-tiered
// university. A category with zero tiers means no scholarship is available
// for its programs, which is a distinct outcome, not an error.
type Category struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Tiers       []Tier           `json:"tiers"`
	Enhanced    *EnhancedTierSet `json:"enhanced,omitempty"`
}

// DegreeRates is the course-based scheme's scholarship table: one rate for a
// single named degree, another rate for every other degree. No GPA gating.
type DegreeRates struct {
	Degree      string  `json:"degree"`
	Rate        float64 `json:"rate"`
	DefaultRate float64 `json:"defaultRate"`
}

// Scholarships holds the scheme tag plus whichever configuration block the
// scheme reads. Unused blocks stay empty.
type Scholarships struct {
	Scheme         Scheme              `json:"scheme"`
	FlatPercentage float64             `json:"percentage,omitempty"`
	Categories     map[string]Category `json:"categories,omitempty"`
	Tiers          []Tier              `json:"tiers,omitempty"`
	DegreeRates    *DegreeRates        `json:"degreeRates,omitempty"`
}

// AdditionalFees holds non-tuition fees charged by a university.
type AdditionalFees struct {
	OneTime   float64        `json:"oneTime"`
	Recurring *RecurringFees `json:"recurring,omitempty"`
	Enhanced  *EnhancedFees  `json:"enhanced,omitempty"`
}

// University is one partner institution with its program catalog and
// fee/scholarship configuration.
type University struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ShortName      string         `json:"shortName,omitempty"`
	Location       string         `json:"location,omitempty"`
	Accreditation  string         `json:"accreditation,omitempty"`
	AdditionalFees AdditionalFees `json:"additionalFees"`
	Scholarships   Scholarships   `json:"scholarships"`
	Programs       []Program      `json:"programs"`
}

// ProgramByID returns the program with the given id, or nil.
func (u *University) ProgramByID(id string) *Program {
	for i := range u.Programs {
		if u.Programs[i].ID == id {
			return &u.Programs[i]
		}
	}
	return nil
}
