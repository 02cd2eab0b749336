package fees

import (
	"fmt"

	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
	"github.com/codermillat/wbe-uni-fee-compare/internal/normalize"
)

// Rule prices programs under one university's fee and scholarship scheme.
// Implementations are pure: same program in, same calculation out.
type Rule interface {
	Scheme() catalog.Scheme
	Calculate(p catalog.Program) Calculation
}

// RuleFor binds a university's scholarship configuration to its scheme's
// rule. Called once at catalog load; an unknown scheme tag is a catalog
// authoring defect.
func RuleFor(u catalog.University) (Rule, error) {
	switch u.Scholarships.Scheme {
	case catalog.SchemeFlat:
		return &flatRule{u: u}, nil
	case catalog.SchemeCategoryTiered:
		return &categoryTieredRule{u: u}, nil
	case catalog.SchemeGPATiered:
		return &gpaTieredRule{u: u}, nil
	case catalog.SchemeCourseBased:
		if u.Scholarships.DegreeRates == nil {
			return nil, fmt.Errorf("university %s: course-based scheme without degree rates", u.ID)
		}
		return &courseBasedRule{u: u}, nil
	}
	return nil, fmt.Errorf("university %s: unknown scholarship scheme %q", u.ID, u.Scholarships.Scheme)
}

// flatRule applies one flat percentage to every annual fee. No recurring
// fee model.
type flatRule struct {
	u catalog.University
}

func (r *flatRule) Scheme() catalog.Scheme { return catalog.SchemeFlat }

func (r *flatRule) Calculate(p catalog.Program) Calculation {
	calc := base(r.u, p)
	calc.Tiers = []TierCalc{
		priceTier(p, catalog.Tier{
			Name:       "Flat Scholarship",
			Percentage: r.u.Scholarships.FlatPercentage,
			GPAMax:     5.0,
		}, calc.Breakdown.OneTime+calc.Breakdown.Recurring, TypeFlat),
	}
	return calc
}

// categoryTieredRule selects tiers by the program's scholarship category
// and layers the standard recurring schedule on top. Categories may also
// carry an enhanced tier set priced against the comprehensive package fee.
type categoryTieredRule struct {
	u catalog.University
}

func (r *categoryTieredRule) Scheme() catalog.Scheme { return catalog.SchemeCategoryTiered }

func (r *categoryTieredRule) Calculate(p catalog.Program) Calculation {
	calc := base(r.u, p)

	if rec := r.u.AdditionalFees.Recurring; rec != nil {
		d := float64(p.Duration)
		// Examination every year; registration and medical start in year 2;
		// alumni once in the final year.
		calc.Breakdown.Recurring = rec.Examination*d +
			rec.Registration*(d-1) +
			rec.Medical*(d-1) +
			rec.Alumni
		calc.OriginalTotal = sum(p.AnnualFees) + calc.Breakdown.OneTime + calc.Breakdown.Recurring
	}

	category, ok := r.u.Scholarships.Categories[p.ScholarshipCategory]
	if !ok || len(category.Tiers) == 0 {
		calc.NoScholarship = true
		calc.CategoryName = category.Name
		if calc.CategoryName == "" {
			calc.CategoryName = "No Category"
		}
		calc.CategoryDescription = category.Description
		return calc
	}
	calc.CategoryName = category.Name
	calc.CategoryDescription = category.Description

	standardExtra := calc.Breakdown.OneTime + calc.Breakdown.Recurring
	for _, t := range category.Tiers {
		calc.Tiers = append(calc.Tiers, priceTier(p, t, standardExtra, TypeStandard))
	}

	if enh := r.u.AdditionalFees.Enhanced; enh != nil && category.Enhanced != nil {
		calc.Breakdown.EnhancedComprehensive = enh.Comprehensive
		calc.Breakdown.EnhancedRecurring = enh.Annual * float64(p.Duration-1)
		calc.EnhancedServices = enh.Services
		enhancedExtra := calc.Breakdown.EnhancedComprehensive + calc.Breakdown.EnhancedRecurring
		for _, t := range category.Enhanced.Tiers {
			calc.Enhanced = append(calc.Enhanced, priceTier(p, t, enhancedExtra, TypeEnhanced))
		}
	}
	return calc
}

// gpaTieredRule uses a fixed GPA-gated tier list shared by every program.
type gpaTieredRule struct {
	u catalog.University
}

func (r *gpaTieredRule) Scheme() catalog.Scheme { return catalog.SchemeGPATiered }

func (r *gpaTieredRule) Calculate(p catalog.Program) Calculation {
	calc := base(r.u, p)

	if rec := r.u.AdditionalFees.Recurring; rec != nil {
		calc.Breakdown.Recurring = (rec.Examination + rec.HealthInsurance) * float64(p.Duration)
		calc.OriginalTotal = sum(p.AnnualFees) + calc.Breakdown.OneTime + calc.Breakdown.Recurring
	}

	extra := calc.Breakdown.OneTime + calc.Breakdown.Recurring
	for _, t := range r.u.Scholarships.Tiers {
		calc.Tiers = append(calc.Tiers, priceTier(p, t, extra, TypeGPATiered))
	}
	return calc
}

// courseBasedRule picks a flat rate by degree type alone: one rate for the
// named degree, the default rate for everything else. No GPA gating.
type courseBasedRule struct {
	u catalog.University
}

func (r *courseBasedRule) Scheme() catalog.Scheme { return catalog.SchemeCourseBased }

func (r *courseBasedRule) Calculate(p catalog.Program) Calculation {
	calc := base(r.u, p)

	if rec := r.u.AdditionalFees.Recurring; rec != nil {
		calc.Breakdown.Recurring = rec.Examination * float64(p.Duration)
	}
	if p.HasIndustryFee {
		calc.Breakdown.Industry = p.IndustryFeeFirstYear
	}
	calc.OriginalTotal = sum(p.AnnualFees) + calc.Breakdown.OneTime +
		calc.Breakdown.Recurring + calc.Breakdown.Industry

	rates := r.u.Scholarships.DegreeRates
	percentage := rates.DefaultRate
	name := "Standard Scholarship"
	if normalize.NormalizeDegree(p.Degree).Key() == normalize.NormalizeDegree(rates.Degree).Key() {
		percentage = rates.Rate
		name = rates.Degree + " Scholarship"
	}

	extra := calc.Breakdown.OneTime + calc.Breakdown.Recurring + calc.Breakdown.Industry
	calc.Tiers = []TierCalc{
		priceTier(p, catalog.Tier{
			Name:       name,
			Percentage: percentage,
			GPAMax:     5.0,
		}, extra, TypeCourseBased),
	}
	return calc
}

// base seeds a calculation with the components shared by every scheme.
func base(u catalog.University, p catalog.Program) Calculation {
	oneTime := u.AdditionalFees.OneTime
	return Calculation{
		UniversityID:  u.ID,
		ProgramID:     p.ID,
		Scheme:        u.Scholarships.Scheme,
		Breakdown:     Breakdown{OneTime: oneTime},
		OriginalTotal: sum(p.AnnualFees) + oneTime,
	}
}

// priceTier prices one scholarship tier: discounted yearly fees, the total
// including non-tuition extras, and the savings against full tuition.
func priceTier(p catalog.Program, t catalog.Tier, extra float64, typ TierType) TierCalc {
	yearly := discount(p.AnnualFees, t.Percentage)
	discounted := sum(yearly)
	return TierCalc{
		Name:       t.Name,
		Percentage: t.Percentage,
		GPAMin:     t.GPAMin,
		GPAMax:     t.GPAMax,
		Conditions: t.Conditions,
		Type:       typ,
		YearlyFees: yearly,
		TotalFees:  discounted + extra,
		Savings:    sum(p.AnnualFees) - discounted,
	}
}
