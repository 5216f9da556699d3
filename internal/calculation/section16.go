package calculation

import (
	"github.com/rsharma/taxwise/internal/domain"
	"github.com/shopspring/decimal"
)

var five = decimal.NewFromInt(5)

// OldRegimeSection16 computes salary deductions under the old regime: the
// fixed standard deduction, professional tax up to its ceiling, and — for
// government employees only — the entertainment allowance at the least of
// the actual amount, one-fifth of basic salary, and the fixed ceiling.
func OldRegimeSection16(p *domain.TaxpayerProfile, rules *domain.TaxRules) []domain.LineItem {
	items := []domain.LineItem{
		{Code: domain.ItemStandardDeduction, Amount: rules.StandardDeductionOld},
	}

	if p.ProfessionalTaxPaid.GreaterThan(decimal.Zero) {
		items = append(items, domain.LineItem{
			Code:   domain.ItemProfessionalTax,
			Amount: decimal.Min(p.ProfessionalTaxPaid, rules.ProfessionalTaxCap),
		})
	}

	if p.IsGovernmentEmployee && p.EntertainmentAllowance.GreaterThan(decimal.Zero) {
		items = append(items, domain.LineItem{
			Code:   domain.ItemEntertainmentAllowance,
			Amount: decimal.Min(p.EntertainmentAllowance, p.BasicSalary.Div(five), rules.EntertainmentCap),
		})
	}

	return items
}

// NewRegimeSection16 allows only the (larger) standard deduction; no
// professional tax or entertainment allowance.
func NewRegimeSection16(_ *domain.TaxpayerProfile, rules *domain.TaxRules) []domain.LineItem {
	return []domain.LineItem{
		{Code: domain.ItemStandardDeduction, Amount: rules.StandardDeductionNew},
	}
}
