package compare

import (
	"encoding/csv"
	"strings"

	"github.com/rsharma/taxwise/internal/domain"
)

// CSVFormatter renders the pipeline figures as one row per step with an
// amount column per regime, suitable for spreadsheets.
type CSVFormatter struct{}

// Format generates CSV output for a comparison.
func (cf *CSVFormatter) Format(c *Comparison) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write([]string{"Particulars", "Old Regime", "New Regime"}); err != nil {
		return nil, err
	}

	rows := [][3]string{
		{"Gross Salary", c.OldRegime.GrossSalary.StringFixed(2), c.NewRegime.GrossSalary.StringFixed(2)},
		{"Total Exemptions", c.OldRegime.TotalExemptions.StringFixed(2), c.NewRegime.TotalExemptions.StringFixed(2)},
		{"Income from Salary", c.OldRegime.IncomeFromSalary.StringFixed(2), c.NewRegime.IncomeFromSalary.StringFixed(2)},
		{"Total Section 16", c.OldRegime.TotalSection16.StringFixed(2), c.NewRegime.TotalSection16.StringFixed(2)},
		{"Net Salary Income", c.OldRegime.NetSalaryIncome.StringFixed(2), c.NewRegime.NetSalaryIncome.StringFixed(2)},
		{"Income from House Property", c.OldRegime.IncomeFromHouseProperty.StringFixed(2), c.NewRegime.IncomeFromHouseProperty.StringFixed(2)},
		{"Other Income", c.OldRegime.OtherIncome.StringFixed(2), c.NewRegime.OtherIncome.StringFixed(2)},
		{"Gross Total Income", c.OldRegime.GrossTotalIncome.StringFixed(2), c.NewRegime.GrossTotalIncome.StringFixed(2)},
		{"Total Chapter VI-A", c.OldRegime.TotalChapterVIA.StringFixed(2), c.NewRegime.TotalChapterVIA.StringFixed(2)},
		{"Taxable Income", c.OldRegime.TaxableIncome.StringFixed(2), c.NewRegime.TaxableIncome.StringFixed(2)},
		{"Tax on Income", c.OldRegime.TaxOnIncome.StringFixed(2), c.NewRegime.TaxOnIncome.StringFixed(2)},
		{"Rebate u/s 87A", c.OldRegime.Rebate87A.StringFixed(2), c.NewRegime.Rebate87A.StringFixed(2)},
		{"Tax after Rebate", c.OldRegime.TaxAfterRebate.StringFixed(2), c.NewRegime.TaxAfterRebate.StringFixed(2)},
		{"Surcharge", c.OldRegime.Surcharge.StringFixed(2), c.NewRegime.Surcharge.StringFixed(2)},
		{"Cess", c.OldRegime.Cess.StringFixed(2), c.NewRegime.Cess.StringFixed(2)},
		{"Total Tax", c.OldRegime.TotalTax.StringFixed(2), c.NewRegime.TotalTax.StringFixed(2)},
		{"Effective Tax Rate (%)", c.OldRegime.EffectiveTaxRate.StringFixed(2), c.NewRegime.EffectiveTaxRate.StringFixed(2)},
	}
	for _, r := range rows {
		if err := writer.Write(r[:]); err != nil {
			return nil, err
		}
	}

	// Itemized lines for each category.
	for _, category := range []struct {
		name     string
		oldItems []domain.LineItem
		newItems []domain.LineItem
	}{
		{"Exemption", c.OldRegime.Exemptions, c.NewRegime.Exemptions},
		{"Section 16", c.OldRegime.Section16Deductions, c.NewRegime.Section16Deductions},
		{"Chapter VI-A", c.OldRegime.ChapterVIADeductions, c.NewRegime.ChapterVIADeductions},
	} {
		for _, row := range mergeLineItems(category.oldItems, category.newItems) {
			oldVal, newVal := "", ""
			if row.Old != nil {
				oldVal = row.Old.StringFixed(2)
			}
			if row.New != nil {
				newVal = row.New.StringFixed(2)
			}
			if err := writer.Write([]string{category.name + ": " + row.Code.Label(), oldVal, newVal}); err != nil {
				return nil, err
			}
		}
	}

	if err := writer.Write([]string{"Recommended Regime", string(c.Recommended), ""}); err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return []byte(sb.String()), nil
}
