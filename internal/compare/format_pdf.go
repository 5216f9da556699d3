package compare

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/rsharma/taxwise/internal/domain"
	"github.com/rsharma/taxwise/internal/output"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders the comparison as a printable A4 report. Amounts
// use an ASCII rupee prefix because the core PDF fonts are Latin-1.
type PDFFormatter struct{}

// Format generates the PDF report bytes for a comparison.
func (pf *PDFFormatter) Format(c *Comparison) ([]byte, error) {
	r := &pdfReport{
		pdf: fpdf.New("P", "mm", "A4", ""),
		c:   c,
	}

	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)

	r.addTitlePage()
	r.addComputationPage()
	r.addDeductionDetailPage()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf *fpdf.Fpdf
	c   *Comparison
}

func (r *pdfReport) addTitlePage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(40)
	r.pdf.CellFormat(pdfContentWidth, 14, "Income Tax Regime Comparison", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 13)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(6)
	r.pdf.CellFormat(pdfContentWidth, 9,
		fmt.Sprintf("Assessment Year %s (FY %s)", r.c.AssessmentYear, r.c.FinancialYear),
		"", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.Ln(10)
	r.pdf.CellFormat(pdfContentWidth, 7,
		fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")),
		"", 1, "C", false, 0, "")

	// Result box
	r.pdf.Ln(18)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, "Result", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	rows := []string{
		fmt.Sprintf("Old Regime Total Tax: %s", output.FormatINRASCII(r.c.OldRegime.TotalTax)),
		fmt.Sprintf("New Regime Total Tax: %s", output.FormatINRASCII(r.c.NewRegime.TotalTax)),
		fmt.Sprintf("Recommended: %s regime (saves %s)",
			recommendedLabel(r.c.Recommended), output.FormatINRASCII(r.c.Savings.Abs())),
	}
	for i, row := range rows {
		border := "LR"
		if i == len(rows)-1 {
			border = "LRB"
		}
		r.pdf.CellFormat(pdfContentWidth, 7, row, border, 1, "C", true, 0, "")
	}

	r.pdf.Ln(15)
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(pdfContentWidth, 4.5,
		"This document is for informational purposes only and does not constitute tax advice. "+
			"Please verify all figures against the Income Tax Act and consult a qualified "+
			"tax professional before filing.", "", "C", false)
}

func (r *pdfReport) addComputationPage() {
	r.pdf.AddPage()
	r.drawSectionHeader("Tax Computation")

	widths := []float64{80, 50, 50}
	r.drawTableHeader([]string{"Particulars", "Old Regime", "New Regime"}, widths)

	old, nw := r.c.OldRegime, r.c.NewRegime
	steps := []struct {
		label string
		old   decimal.Decimal
		new   decimal.Decimal
		bold  bool
	}{
		{"Gross Salary", old.GrossSalary, nw.GrossSalary, false},
		{"Less: Exemptions u/s 10", old.TotalExemptions, nw.TotalExemptions, false},
		{"Income from Salary", old.IncomeFromSalary, nw.IncomeFromSalary, false},
		{"Less: Deductions u/s 16", old.TotalSection16, nw.TotalSection16, false},
		{"Net Salary Income", old.NetSalaryIncome, nw.NetSalaryIncome, false},
		{"Income from House Property", old.IncomeFromHouseProperty, nw.IncomeFromHouseProperty, false},
		{"Income from Other Sources", old.OtherIncome, nw.OtherIncome, false},
		{"Gross Total Income", old.GrossTotalIncome, nw.GrossTotalIncome, true},
		{"Less: Chapter VI-A Deductions", old.TotalChapterVIA, nw.TotalChapterVIA, false},
		{"Taxable Income", old.TaxableIncome, nw.TaxableIncome, true},
		{"Tax on Taxable Income", old.TaxOnIncome, nw.TaxOnIncome, false},
		{"Less: Rebate u/s 87A", old.Rebate87A, nw.Rebate87A, false},
		{"Tax after Rebate", old.TaxAfterRebate, nw.TaxAfterRebate, false},
		{"Add: Surcharge", old.Surcharge, nw.Surcharge, false},
		{"Add: Health & Education Cess (4%)", old.Cess, nw.Cess, false},
		{"Total Tax Liability", old.TotalTax, nw.TotalTax, true},
	}
	for _, s := range steps {
		r.drawTableRow([]string{
			s.label,
			output.FormatINRASCII(s.old),
			output.FormatINRASCII(s.new),
		}, widths, s.bold)
	}

	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(pdfContentWidth, 5,
		fmt.Sprintf("Effective tax rate: %s (old) vs %s (new) of gross salary",
			output.FormatPercent(old.EffectiveTaxRate), output.FormatPercent(nw.EffectiveTaxRate)),
		"", 1, "L", false, 0, "")

	if r.c.TotalTaxesPaid.IsPositive() {
		r.pdf.Ln(4)
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(0, 51, 102)
		r.pdf.CellFormat(pdfContentWidth, 7, "Taxes Already Paid", "", 1, "L", false, 0, "")

		r.drawTableHeader([]string{"Particulars", "Old Regime", "New Regime"}, widths)
		r.drawTableRow([]string{"TDS Deducted",
			output.FormatINRASCII(r.c.TDSDeducted), output.FormatINRASCII(r.c.TDSDeducted)}, widths, false)
		r.drawTableRow([]string{"Advance Tax Paid",
			output.FormatINRASCII(r.c.AdvanceTaxPaid), output.FormatINRASCII(r.c.AdvanceTaxPaid)}, widths, false)
		r.drawTableRow([]string{"Balance Due / (Refund)",
			output.FormatINRASCII(r.c.BalanceOld), output.FormatINRASCII(r.c.BalanceNew)}, widths, true)
	}
}

func (r *pdfReport) addDeductionDetailPage() {
	r.pdf.AddPage()
	r.drawSectionHeader("Exemption & Deduction Detail")

	widths := []float64{80, 50, 50}
	categories := []struct {
		title    string
		oldItems []domain.LineItem
		newItems []domain.LineItem
	}{
		{"Exemptions u/s 10", r.c.OldRegime.Exemptions, r.c.NewRegime.Exemptions},
		{"Deductions u/s 16", r.c.OldRegime.Section16Deductions, r.c.NewRegime.Section16Deductions},
		{"Chapter VI-A Deductions", r.c.OldRegime.ChapterVIADeductions, r.c.NewRegime.ChapterVIADeductions},
	}

	for _, cat := range categories {
		rows := mergeLineItems(cat.oldItems, cat.newItems)
		if len(rows) == 0 {
			continue
		}

		if r.pdf.GetY() > 230 {
			r.pdf.AddPage()
		}

		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(0, 51, 102)
		r.pdf.CellFormat(pdfContentWidth, 7, cat.title, "", 1, "L", false, 0, "")

		r.drawTableHeader([]string{"Item", "Old Regime", "New Regime"}, widths)
		for _, row := range rows {
			oldVal, newVal := "-", "-"
			if row.Old != nil {
				oldVal = output.FormatINRASCII(*row.Old)
			}
			if row.New != nil {
				newVal = output.FormatINRASCII(*row.New)
			}
			r.drawTableRow([]string{row.Code.Label(), oldVal, newVal}, widths, false)
		}
		r.drawTableRow([]string{"Total",
			output.FormatINRASCII(domain.SumLineItems(cat.oldItems)),
			output.FormatINRASCII(domain.SumLineItems(cat.newItems))}, widths, true)
		r.pdf.Ln(6)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, bold bool) {
	r.pdf.SetTextColor(50, 50, 50)
	if bold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.SetFillColor(250, 250, 250)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func recommendedLabel(regime domain.Regime) string {
	if regime == domain.RegimeOld {
		return "Old"
	}
	return "New"
}
