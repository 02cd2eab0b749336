// Package report renders counselor-facing outreach messages from completed
// fee calculations. Pure templating: every function is deterministic in its
// inputs and performs no I/O.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
	"github.com/codermillat/wbe-uni-fee-compare/internal/fees"
)

// Formatter renders offer and comparison messages. Amounts are formatted
// with Indian-style digit grouping, no fraction digits.
type Formatter struct {
	agencyName string
	printer    *message.Printer
}

func NewFormatter(agencyName string) *Formatter {
	return &Formatter{
		agencyName: agencyName,
		printer:    message.NewPrinter(language.MustParse("en-IN")),
	}
}

// INR formats a rupee amount with locale grouping, e.g. ₹10,50,000.
func (f *Formatter) INR(amount float64) string {
	return f.printer.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// OfferOptions personalizes an offer message. All fields are optional.
type OfferOptions struct {
	StudentName string
	// GPA narrows tiered scholarships to the ones the student is eligible
	// for. Nil leaves every tier in play.
	GPA *float64
	// ScholarshipOverride replaces the calculated scholarship selection
	// with a counselor-negotiated percentage.
	ScholarshipOverride *float64
}

// Offer renders the shareable admission message for one calculated program.
func (f *Formatter) Offer(u catalog.University, p catalog.Program, calc fees.Calculation, opts OfferOptions) string {
	var b strings.Builder

	if opts.StudentName != "" {
		fmt.Fprintf(&b, "Dear %s,\n\n", opts.StudentName)
	}
	fmt.Fprintf(&b, "🎓 GREAT NEWS ABOUT YOUR ADMISSION TO %s! 🇮🇳\n\n", strings.ToUpper(u.Name))
	fmt.Fprintf(&b, "I'm pleased to share the detailed fee structure for your %s program at %s.\n\n", p.Name, u.Name)

	b.WriteString("📚 PROGRAM DETAILS:\n")
	fmt.Fprintf(&b, "✅ Program: %s\n", p.Name)
	fmt.Fprintf(&b, "✅ Duration: %d years\n", p.Duration)
	if u.Location != "" {
		fmt.Fprintf(&b, "✅ Location: %s\n", u.Location)
	}
	if u.Accreditation != "" {
		fmt.Fprintf(&b, "✅ Recognition: %s\n", u.Accreditation)
	}
	b.WriteString("\n")

	b.WriteString(f.scholarshipSection(p, calc, opts))

	if len(p.Highlights) > 0 {
		b.WriteString("\n🌟 PROGRAM HIGHLIGHTS:\n")
		for _, h := range p.Highlights {
			fmt.Fprintf(&b, "✓ %s\n", h)
		}
	}

	b.WriteString("\n🏠 SUPPORT SERVICES INCLUDED:\n")
	services := calc.EnhancedServices
	if len(services) == 0 {
		services = []string{
			"Admission Processing & Documentation",
			"Visa Support & Airport Reception",
			"FRRO Registration Assistance",
			"Accommodation Guidance",
		}
	}
	for _, s := range services {
		fmt.Fprintf(&b, "✓ %s\n", s)
	}

	b.WriteString("\n📞 Ready to proceed with your admission? Contact us for the next steps!\n\n")
	fmt.Fprintf(&b, "Best regards,\n%s", f.agencyName)

	return b.String()
}

// scholarshipSection renders the fee block appropriate to the calculation
// outcome: no-scholarship, a single confirmed tier, or a best-of-several
// summary. An enhanced tier is shown only when it genuinely beats the best
// standard option.
func (f *Formatter) scholarshipSection(p catalog.Program, calc fees.Calculation, opts OfferOptions) string {
	var b strings.Builder

	if opts.ScholarshipOverride != nil {
		tier := overrideTier(p, calc, *opts.ScholarshipOverride)
		fmt.Fprintf(&b, "🎉 SCHOLARSHIP CONFIRMED: %.0f%% DISCOUNT!\n\n", tier.Percentage)
		b.WriteString(f.feeBreakdown(tier, calc))
		return b.String()
	}

	if calc.NoScholarship {
		b.WriteString("📚 PROGRAM INVESTMENT:\n")
		b.WriteString("This is a premium program with no scholarships available.\n")
		fmt.Fprintf(&b, "Total Program Cost: %s\n", f.INR(calc.OriginalTotal))
		return b.String()
	}

	eligible := fees.EligibleTiers(calc.Tiers, opts.GPA)
	if len(eligible) == 0 {
		b.WriteString("📚 SCHOLARSHIP OPPORTUNITIES:\n")
		b.WriteString("Please contact us to discuss scholarship options based on your academic profile.\n")
		fmt.Fprintf(&b, "Total Program Cost (before scholarship): %s\n", f.INR(calc.OriginalTotal))
		return b.String()
	}

	best := eligible[0]
	if enhanced := bestEnhanced(calc, opts.GPA); enhanced != nil && enhanced.TotalFees < best.TotalFees {
		fmt.Fprintf(&b, "🚀 EXCLUSIVE PARTNERSHIP BENEFITS!\n")
		fmt.Fprintf(&b, "Standard Application: %.0f%% scholarship (%s)\n", best.Percentage, f.INR(best.TotalFees))
		fmt.Fprintf(&b, "Through Our Partnership: %.0f%% scholarship (%s)\n", enhanced.Percentage, f.INR(enhanced.TotalFees))
		fmt.Fprintf(&b, "📈 Additional Savings: %s\n\n", f.INR(best.TotalFees-enhanced.TotalFees))
		b.WriteString(f.feeBreakdown(*enhanced, calc))
		return b.String()
	}

	if len(eligible) == 1 {
		fmt.Fprintf(&b, "🎉 SCHOLARSHIP CONFIRMED: %.0f%% DISCOUNT!\n", best.Percentage)
		if opts.GPA != nil {
			fmt.Fprintf(&b, "Based on your academic performance (GPA %.2f), you qualify for %s.\n", *opts.GPA, best.Name)
		}
		b.WriteString("\n")
		b.WriteString(f.feeBreakdown(best, calc))
		return b.String()
	}

	fmt.Fprintf(&b, "🎉 MULTIPLE SCHOLARSHIPS AVAILABLE!\n")
	fmt.Fprintf(&b, "You qualify for up to %.0f%% scholarship.\n\n", best.Percentage)
	fmt.Fprintf(&b, "💰 BEST OPTION - %s:\n", best.Name)
	fmt.Fprintf(&b, "Total After %.0f%% Scholarship: %s\n", best.Percentage, f.INR(best.TotalFees))
	fmt.Fprintf(&b, "💵 You Save: %s\n", f.INR(best.Savings))
	return b.String()
}

// feeBreakdown renders per-year fees plus the non-tuition components that
// apply to the tier.
func (f *Formatter) feeBreakdown(tier fees.TierCalc, calc fees.Calculation) string {
	var b strings.Builder

	b.WriteString("💰 YOUR PROGRAM FEES:\n")
	for i, fee := range tier.YearlyFees {
		fmt.Fprintf(&b, "Year %d: %s\n", i+1, f.INR(fee))
	}

	if tier.Type == fees.TypeEnhanced {
		fmt.Fprintf(&b, "Year 1 Comprehensive Package: %s\n", f.INR(calc.Breakdown.EnhancedComprehensive))
		if calc.Breakdown.EnhancedRecurring > 0 && len(tier.YearlyFees) > 1 {
			perYear := calc.Breakdown.EnhancedRecurring / float64(len(tier.YearlyFees)-1)
			fmt.Fprintf(&b, "Years 2-%d: %s per year (Annual Services Fee)\n", len(tier.YearlyFees), f.INR(perYear))
		}
	} else {
		fmt.Fprintf(&b, "One-Time Fee (First Year): %s\n", f.INR(calc.Breakdown.OneTime))
		if calc.Breakdown.Recurring > 0 {
			fmt.Fprintf(&b, "Recurring Fees (Full Duration): %s\n", f.INR(calc.Breakdown.Recurring))
		}
		if calc.Breakdown.Industry > 0 {
			fmt.Fprintf(&b, "Industry Collaboration Fee (Year 1): %s\n", f.INR(calc.Breakdown.Industry))
		}
	}

	fmt.Fprintf(&b, "\n💸 Total After Scholarship: %s\n", f.INR(tier.TotalFees))
	fmt.Fprintf(&b, "💵 You Save: %s\n", f.INR(tier.Savings))
	return b.String()
}

// bestEnhanced returns the first enhanced tier the student is eligible for,
// or nil when the calculation has none.
func bestEnhanced(calc fees.Calculation, gpa *float64) *fees.TierCalc {
	eligible := fees.EligibleTiers(calc.Enhanced, gpa)
	if len(eligible) == 0 {
		return nil
	}
	return &eligible[0]
}

// overrideTier prices a counselor-negotiated percentage against the
// standard fee structure.
func overrideTier(p catalog.Program, calc fees.Calculation, percentage float64) fees.TierCalc {
	yearly := make([]float64, len(p.AnnualFees))
	var discounted, tuition float64
	for i, fee := range p.AnnualFees {
		yearly[i] = fee * (1 - percentage/100)
		discounted += yearly[i]
		tuition += fee
	}
	extra := calc.Breakdown.OneTime + calc.Breakdown.Recurring + calc.Breakdown.Industry
	return fees.TierCalc{
		Name:       "Negotiated Scholarship",
		Percentage: percentage,
		GPAMax:     5.0,
		Type:       fees.TypeStandard,
		YearlyFees: yearly,
		TotalFees:  discounted + extra,
		Savings:    tuition - discounted,
	}
}
