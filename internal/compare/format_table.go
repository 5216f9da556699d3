package compare

import (
	"fmt"
	"strings"

	"github.com/rsharma/taxwise/internal/domain"
	"github.com/rsharma/taxwise/internal/output"
	"github.com/shopspring/decimal"
)

const (
	labelWidth  = 40
	amountWidth = 13
)

// TableFormatter renders the full side-by-side comparison as a styled
// console table: the income pipeline, the tax computation, balance due
// when taxes were prepaid, the recommendation, and the summary box.
type TableFormatter struct{}

// Format renders the comparison table.
func (tf *TableFormatter) Format(c *Comparison) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(output.HeaderStyle.Render("INDIA TAX REGIME COMPARISON") + "\n")
	sb.WriteString(output.MutedStyle.Render(fmt.Sprintf("Assessment Year: %s (Financial Year: %s)", c.AssessmentYear, c.FinancialYear)) + "\n")
	sb.WriteString(output.MutedStyle.Render("Age Category: "+ageCategoryLabel(c.AgeCategory)) + "\n\n")

	sb.WriteString(output.SectionStyle.Render("COMPARISON") + "\n\n")
	tf.writeColumnHeader(&sb)

	tf.writeRow(&sb, "Gross Salary", c.OldRegime.GrossSalary, c.NewRegime.GrossSalary, false)

	tf.writeItemRows(&sb, "Section 10 Exemptions", c.OldRegime.Exemptions, c.NewRegime.Exemptions)
	tf.writeRow(&sb, "Total Exemptions", c.OldRegime.TotalExemptions, c.NewRegime.TotalExemptions, true)

	tf.writeDivider(&sb)
	tf.writeRow(&sb, "Income from Salary", c.OldRegime.IncomeFromSalary, c.NewRegime.IncomeFromSalary, false)

	tf.writeItemRows(&sb, "Section 16 Deductions", c.OldRegime.Section16Deductions, c.NewRegime.Section16Deductions)
	tf.writeRow(&sb, "Total Section 16", c.OldRegime.TotalSection16, c.NewRegime.TotalSection16, true)

	tf.writeDivider(&sb)
	tf.writeRow(&sb, "Net Salary Income", c.OldRegime.NetSalaryIncome, c.NewRegime.NetSalaryIncome, false)

	if !c.OldRegime.IncomeFromHouseProperty.IsZero() || !c.NewRegime.IncomeFromHouseProperty.IsZero() {
		tf.writeRow(&sb, "Income from House Property", c.OldRegime.IncomeFromHouseProperty, c.NewRegime.IncomeFromHouseProperty, false)
	}
	if c.OldRegime.OtherIncome.GreaterThan(decimal.Zero) || c.NewRegime.OtherIncome.GreaterThan(decimal.Zero) {
		tf.writeRow(&sb, "Other Income", c.OldRegime.OtherIncome, c.NewRegime.OtherIncome, false)
	}

	tf.writeDivider(&sb)
	tf.writeRow(&sb, "GROSS TOTAL INCOME", c.OldRegime.GrossTotalIncome, c.NewRegime.GrossTotalIncome, true)

	tf.writeItemRows(&sb, "Chapter VI-A Deductions", c.OldRegime.ChapterVIADeductions, c.NewRegime.ChapterVIADeductions)
	tf.writeRow(&sb, "Total Chapter VI-A", c.OldRegime.TotalChapterVIA, c.NewRegime.TotalChapterVIA, true)

	tf.writeDivider(&sb)
	tf.writeRow(&sb, "TAXABLE INCOME", c.OldRegime.TaxableIncome, c.NewRegime.TaxableIncome, true)

	sb.WriteString("\n" + output.SectionStyle.Render("TAX CALCULATION") + "\n\n")
	tf.writeColumnHeader(&sb)
	tf.writeRow(&sb, "Tax on Income", c.OldRegime.TaxOnIncome, c.NewRegime.TaxOnIncome, false)
	tf.writeRow(&sb, "Less: Rebate u/s 87A", c.OldRegime.Rebate87A, c.NewRegime.Rebate87A, false)
	tf.writeRow(&sb, "Tax after Rebate", c.OldRegime.TaxAfterRebate, c.NewRegime.TaxAfterRebate, false)
	if c.OldRegime.Surcharge.GreaterThan(decimal.Zero) || c.NewRegime.Surcharge.GreaterThan(decimal.Zero) {
		tf.writeRow(&sb, "Add: Surcharge", c.OldRegime.Surcharge, c.NewRegime.Surcharge, false)
	}
	tf.writeRow(&sb, "Add: Health & Education Cess (4%)", c.OldRegime.Cess, c.NewRegime.Cess, false)

	tf.writeDivider(&sb)
	tf.writeRow(&sb, "TOTAL TAX PAYABLE", c.OldRegime.TotalTax, c.NewRegime.TotalTax, true)

	tf.writeDivider(&sb)
	tf.writeTextRow(&sb, "Effective Tax Rate",
		output.FormatPercent(c.OldRegime.EffectiveTaxRate),
		output.FormatPercent(c.NewRegime.EffectiveTaxRate))

	if c.TotalTaxesPaid.GreaterThan(decimal.Zero) {
		tf.writeDivider(&sb)
		tf.writeSingleRow(&sb, "TDS Deducted", output.FormatINR(c.TDSDeducted))
		tf.writeSingleRow(&sb, "Advance Tax Paid", output.FormatINR(c.AdvanceTaxPaid))
		tf.writeRow(&sb, "Balance Tax Payable / (Refund)", c.BalanceOld, c.BalanceNew, true)
	}

	sb.WriteString("\n" + output.SectionStyle.Render("RECOMMENDATION") + "\n\n")
	tf.writeRecommendation(&sb, c)

	sb.WriteString("\n" + output.SectionStyle.Render("SUMMARY") + "\n\n")
	tf.writeSummaryBox(&sb, "OLD REGIME", c.OldRegime)
	tf.writeSummaryBox(&sb, "NEW REGIME", c.NewRegime)

	return []byte(sb.String()), nil
}

func (tf *TableFormatter) writeColumnHeader(sb *strings.Builder) {
	sb.WriteString(fmt.Sprintf("  %-*s %*s %*s\n", labelWidth, "PARTICULARS", amountWidth, "OLD REGIME", amountWidth, "NEW REGIME"))
	sb.WriteString(fmt.Sprintf("  %s %s %s\n", strings.Repeat("-", labelWidth), strings.Repeat("-", amountWidth), strings.Repeat("-", amountWidth)))
}

func (tf *TableFormatter) writeDivider(sb *strings.Builder) {
	sb.WriteString("  " + strings.Repeat("-", labelWidth+2*amountWidth+2) + "\n")
}

func (tf *TableFormatter) writeRow(sb *strings.Builder, label string, oldVal, newVal decimal.Decimal, highlight bool) {
	tf.writeStyledTextRow(sb, label, output.FormatINR(oldVal), output.FormatINR(newVal), highlight)
}

func (tf *TableFormatter) writeTextRow(sb *strings.Builder, label, oldVal, newVal string) {
	tf.writeStyledTextRow(sb, label, oldVal, newVal, false)
}

func (tf *TableFormatter) writeStyledTextRow(sb *strings.Builder, label, oldVal, newVal string, highlight bool) {
	row := fmt.Sprintf("  %-*s %*s %*s", labelWidth, label, amountWidth, oldVal, amountWidth, newVal)
	if highlight {
		row = output.HighlightStyle.Render(row)
	}
	sb.WriteString(row + "\n")
}

func (tf *TableFormatter) writeSingleRow(sb *strings.Builder, label, value string) {
	sb.WriteString(fmt.Sprintf("  %-*s %*s\n", labelWidth, label, 2*amountWidth+1, value))
}

// writeItemRows prints a category's line items side by side; an item a
// regime does not allow renders as "-".
func (tf *TableFormatter) writeItemRows(sb *strings.Builder, title string, oldItems, newItems []domain.LineItem) {
	merged := mergeLineItems(oldItems, newItems)
	if len(merged) == 0 {
		return
	}

	sb.WriteString("\n  " + output.MutedStyle.Render(title) + "\n")
	for _, row := range merged {
		oldVal, newVal := "-", "-"
		if row.Old != nil {
			oldVal = output.FormatINR(*row.Old)
		}
		if row.New != nil {
			newVal = output.FormatINR(*row.New)
		}
		sb.WriteString(fmt.Sprintf("    %-*s %*s %*s\n", labelWidth-2, row.Code.Label(), amountWidth, oldVal, amountWidth, newVal))
	}
}

func (tf *TableFormatter) writeRecommendation(sb *strings.Builder, c *Comparison) {
	switch {
	case c.Savings.GreaterThan(decimal.Zero):
		sb.WriteString(output.RecommendStyle.Render("  NEW TAX REGIME is better for you!") + "\n")
		sb.WriteString(output.RecommendStyle.Render("  You save "+output.FormatINR(c.Savings)+" by choosing New Regime") + "\n")
	case c.Savings.LessThan(decimal.Zero):
		sb.WriteString(output.RecommendStyle.Render("  OLD TAX REGIME is better for you!") + "\n")
		sb.WriteString(output.RecommendStyle.Render("  You save "+output.FormatINR(c.Savings.Abs())+" by choosing Old Regime") + "\n")
	default:
		sb.WriteString(output.HighlightStyle.Render("  Both regimes result in the same tax liability.") + "\n")
		sb.WriteString(output.HighlightStyle.Render("  New Regime is simpler with fewer compliance requirements.") + "\n")
	}
}

func (tf *TableFormatter) writeSummaryBox(sb *strings.Builder, title string, b *domain.Breakdown) {
	sb.WriteString("  " + output.HeaderStyle.Render(title) + "\n")
	sb.WriteString(fmt.Sprintf("    %-18s %12s\n", "Gross Salary:", output.FormatLakhs(b.GrossSalary)))
	sb.WriteString(fmt.Sprintf("    %-18s %12s\n", "Total Deductions:", output.FormatLakhs(b.TotalDeductions())))
	sb.WriteString(fmt.Sprintf("    %-18s %12s\n", "Taxable Income:", output.FormatLakhs(b.TaxableIncome)))
	sb.WriteString(fmt.Sprintf("    %-18s %12s\n", "Total Tax:", output.FormatLakhs(b.TotalTax)))
}

func ageCategoryLabel(a domain.AgeBracket) string {
	switch a {
	case domain.AgeSenior:
		return "Senior (60-80)"
	case domain.AgeSuperSenior:
		return "Super Senior (80+)"
	default:
		return "Below 60"
	}
}
