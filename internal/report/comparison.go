package report

import (
	"fmt"
	"strings"

	"github.com/codermillat/wbe-uni-fee-compare/internal/catalog"
	"github.com/codermillat/wbe-uni-fee-compare/internal/fees"
)

// Entry is one university's contribution to a comparison: the program under
// consideration there and its completed fee calculation. MatchReason is
// empty for the university the student originally selected.
type Entry struct {
	University  catalog.University
	Program     catalog.Program
	Calculation fees.Calculation
	MatchReason string
}

// effectiveTotal is the cheapest total a student can actually reach at one
// university: the best eligible tier, the enhanced tier when it beats it,
// or the undiscounted total when no scholarship applies.
func effectiveTotal(calc fees.Calculation, gpa *float64) (float64, string) {
	if calc.NoScholarship {
		return calc.OriginalTotal, "No scholarships available"
	}
	eligible := fees.EligibleTiers(calc.Tiers, gpa)
	if len(eligible) == 0 {
		return calc.OriginalTotal, "Scholarship subject to assessment"
	}
	best := eligible[0]
	label := fmt.Sprintf("%.0f%% scholarship", best.Percentage)
	if enhanced := bestEnhanced(calc, gpa); enhanced != nil && enhanced.TotalFees < best.TotalFees {
		return enhanced.TotalFees, fmt.Sprintf("%.0f%% scholarship via partnership", enhanced.Percentage)
	}
	return best.TotalFees, label
}

// Comparison renders the budget-aware comparison message across every
// university that produced a calculation. The recommendation goes to the
// lowest effective total; ties keep the first entry.
func (f *Formatter) Comparison(entries []Entry, studentName string, gpa *float64) string {
	if len(entries) == 0 {
		return ""
	}

	totals := make([]float64, len(entries))
	labels := make([]string, len(entries))
	cheapest := 0
	for i, e := range entries {
		totals[i], labels[i] = effectiveTotal(e.Calculation, gpa)
		if totals[i] < totals[cheapest] {
			cheapest = i
		}
	}
	recommended := entries[cheapest]

	var b strings.Builder
	if studentName != "" {
		fmt.Fprintf(&b, "Dear %s,\n\n", studentName)
	}
	b.WriteString("📊 SMART UNIVERSITY COMPARISON & RECOMMENDATION\n\n")
	fmt.Fprintf(&b, "🏆 BUDGET RECOMMENDATION: %s\n", recommended.University.Name)
	fmt.Fprintf(&b, "💰 Best value at %s with %s.\n\n", f.INR(totals[cheapest]), labels[cheapest])

	b.WriteString("📈 COMPLETE COST BREAKDOWN:\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "\n🇮🇳 %s - %s\n", e.University.Name, e.Program.Name)
		fmt.Fprintf(&b, "💰 Total Investment: %s\n", f.INR(totals[i]))
		fmt.Fprintf(&b, "🎓 Scholarship: %s\n", labels[i])
		if e.MatchReason != "" {
			fmt.Fprintf(&b, "🔍 %s\n", e.MatchReason)
		}
	}

	b.WriteString("\n📞 Ready to proceed with the best option for your future? Contact us now!\n\n")
	fmt.Fprintf(&b, "Best regards,\n%s", f.agencyName)

	return b.String()
}
