package output

import (
	"fmt"
	"strings"

	"github.com/rsharma/taxwise/internal/domain"
	"github.com/shopspring/decimal"
)

// RenderSlabReference prints the slab tables for both regimes, including
// the age-bracket variants of the old regime.
func RenderSlabReference(rules *domain.TaxRules) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("TAX SLABS (FY %s)", rules.FinancialYear)) + "\n\n")

	sb.WriteString(SectionStyle.Render("New Tax Regime (Default)") + "\n")
	writeSlabTable(&sb, rules.NewRegimeSlabs)
	sb.WriteString(MutedStyle.Render(fmt.Sprintf("Rebate: %s if income ≤ %s",
		FormatINR(rules.RebateNew.MaxRebate), FormatINR(rules.RebateNew.IncomeLimit))) + "\n")
	sb.WriteString(MutedStyle.Render("Standard Deduction: "+FormatINR(rules.StandardDeductionNew)) + "\n\n")

	sb.WriteString(SectionStyle.Render("Old Tax Regime (Below 60 Years)") + "\n")
	writeSlabTable(&sb, rules.OldRegimeSlabsBelow60)
	sb.WriteString(MutedStyle.Render(fmt.Sprintf("Rebate: %s if income ≤ %s",
		FormatINR(rules.RebateOld.MaxRebate), FormatINR(rules.RebateOld.IncomeLimit))) + "\n")
	sb.WriteString(MutedStyle.Render("Standard Deduction: "+FormatINR(rules.StandardDeductionOld)) + "\n\n")

	sb.WriteString(SectionStyle.Render("Old Tax Regime (Senior Citizen: 60-80 Years)") + "\n")
	writeSlabTable(&sb, rules.OldRegimeSlabsSenior)
	sb.WriteString("\n")

	sb.WriteString(SectionStyle.Render("Old Tax Regime (Super Senior Citizen: 80+ Years)") + "\n")
	writeSlabTable(&sb, rules.OldRegimeSlabsSuperSen)

	return sb.String()
}

func writeSlabTable(sb *strings.Builder, slabs []domain.Slab) {
	sb.WriteString(fmt.Sprintf("  %-28s %10s\n", "Income Slab", "Tax Rate"))
	sb.WriteString("  " + strings.Repeat("-", 28) + " " + strings.Repeat("-", 10) + "\n")

	prev := decimal.Zero
	for _, s := range slabs {
		rate := "Nil"
		if s.Rate.GreaterThan(decimal.Zero) {
			rate = s.Rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
		}
		var slabRange string
		switch {
		case s.Unbounded:
			slabRange = "Above " + FormatINR(prev)
		case prev.IsZero():
			slabRange = "Up to " + FormatINR(s.UpperBound)
		default:
			slabRange = FormatINR(prev.Add(decimal.NewFromInt(1))) + " - " + FormatINR(s.UpperBound)
		}
		sb.WriteString(fmt.Sprintf("  %-28s %10s\n", slabRange, rate))
		prev = s.UpperBound
	}
}

// RenderLimitReference prints the exemption and deduction ceilings as a
// quick reference, mirroring the structure of the return form.
func RenderLimitReference(rules *domain.TaxRules) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("DEDUCTION LIMITS REFERENCE") + "\n\n")

	sb.WriteString(SectionStyle.Render("Section 10 Exemptions") + "\n")
	writeLimitRow(&sb, "HRA [10(13A)]", "As per formula")
	writeLimitRow(&sb, "LTA [10(5)]", "Actual expenses")
	writeLimitRow(&sb, "Children Education [10(14)(ii)]", FormatINR(rules.ChildEducationPerMonth)+"/month/child")
	writeLimitRow(&sb, "Hostel [10(14)(ii)]", FormatINR(rules.HostelPerChildPerMonth)+"/month/child")
	writeLimitRow(&sb, "Helper/Driver [10(14)(i)]", "Actual expenses")
	writeLimitRow(&sb, "Gratuity [10(10)] - Old", FormatINR(rules.GratuityCapOld))
	writeLimitRow(&sb, "Gratuity [10(10)] - New", FormatINR(rules.GratuityCapNew))
	writeLimitRow(&sb, "Leave Encashment [10(10AA)]", FormatINR(rules.LeaveEncashmentCap))
	sb.WriteString("\n")

	sb.WriteString(SectionStyle.Render("Chapter VI-A Deductions (Old Regime Only)") + "\n")
	writeLimitRow(&sb, "80C (Combined)", FormatINR(rules.Limit80C))
	writeLimitRow(&sb, "80CCD(1B) - Additional NPS", FormatINR(rules.Limit80CCD1B))
	writeLimitRow(&sb, "80CCD(2) - Employer NPS (Both)", rules.Rate80CCD2.Mul(decimal.NewFromInt(100)).StringFixed(0)+"% of Basic+DA")
	writeLimitRow(&sb, "80D - Self/Family", FormatINR(rules.Limit80DSelf)+"/"+FormatINR(rules.Limit80DSelfSenior))
	writeLimitRow(&sb, "80D - Parents", FormatINR(rules.Limit80DParents)+"/"+FormatINR(rules.Limit80DParentsSen))
	writeLimitRow(&sb, "80DD - Disabled Dependent", FormatINR(rules.Limit80DD)+"/"+FormatINR(rules.Limit80DDSevere))
	writeLimitRow(&sb, "80DDB - Medical Treatment", FormatINR(rules.Limit80DDB)+"/"+FormatINR(rules.Limit80DDBSenior))
	writeLimitRow(&sb, "80E - Education Loan Interest", "No limit")
	writeLimitRow(&sb, "80EE - Home Loan Interest", FormatINR(rules.Limit80EE))
	writeLimitRow(&sb, "80EEA - Add. Home Loan", FormatINR(rules.Limit80EEA))
	writeLimitRow(&sb, "80EEB - EV Loan Interest", FormatINR(rules.Limit80EEB))
	writeLimitRow(&sb, "80G - Donations", "50%/100%")
	writeLimitRow(&sb, "80GG - Rent (No HRA)", FormatINR(rules.Limit80GGPerMonth.Mul(decimal.NewFromInt(12)))+"/year")
	writeLimitRow(&sb, "80TTA - Savings Interest", FormatINR(rules.Limit80TTA))
	writeLimitRow(&sb, "80TTB - Senior Interest", FormatINR(rules.Limit80TTB))
	sb.WriteString("\n")

	sb.WriteString(SectionStyle.Render("Section 24 - Home Loan Interest") + "\n")
	writeLimitRow(&sb, "Self-Occupied (Old Regime)", FormatINR(rules.SelfOccupiedInterestCap))
	writeLimitRow(&sb, "Let-Out Property (Both)", "No limit")

	return sb.String()
}

func writeLimitRow(sb *strings.Builder, label, value string) {
	sb.WriteString(fmt.Sprintf("  %-36s %20s\n", label, value))
}
