package compare

import (
	"github.com/rsharma/taxwise/internal/domain"
	"github.com/shopspring/decimal"
)

// Comparison holds both regime breakdowns for one profile plus the
// derived presentation metrics. The calculation engine produces the
// breakdowns; the savings, balance and recommendation figures are
// presentation-layer arithmetic and never feed back into the tax
// computation.
type Comparison struct {
	AssessmentYear string            `json:"assessmentYear"`
	FinancialYear  string            `json:"financialYear"`
	AgeCategory    domain.AgeBracket `json:"ageCategory"`
	OldRegime      *domain.Breakdown `json:"oldRegime"`
	NewRegime      *domain.Breakdown `json:"newRegime"`

	// Positive savings means the new regime is cheaper.
	Savings     decimal.Decimal `json:"savings"`
	Recommended domain.Regime   `json:"recommended"`

	// Balance due / refund, shown only when something was already paid.
	TDSDeducted    decimal.Decimal `json:"tdsDeducted"`
	AdvanceTaxPaid decimal.Decimal `json:"advanceTaxPaid"`
	TotalTaxesPaid decimal.Decimal `json:"totalTaxesPaid"`
	BalanceOld     decimal.Decimal `json:"balanceOld"`
	BalanceNew     decimal.Decimal `json:"balanceNew"`
}

// RecommendRegime picks the regime with the lower total tax. A tie goes
// to the new regime for its lighter compliance burden; this is a
// reporting rule, not part of the tax computation.
func RecommendRegime(oldTax, newTax decimal.Decimal) domain.Regime {
	if oldTax.LessThan(newTax) {
		return domain.RegimeOld
	}
	return domain.RegimeNew
}

// pairedItem is one line of a side-by-side category table. A nil amount
// means the item does not exist under that regime (rendered as "-"),
// which is different from an explicit zero.
type pairedItem struct {
	Code domain.ItemCode
	Old  *decimal.Decimal
	New  *decimal.Decimal
}

// mergeLineItems pairs up two category item lists for side-by-side
// display, keeping the old regime's order first and appending items only
// the new regime has.
func mergeLineItems(oldItems, newItems []domain.LineItem) []pairedItem {
	var merged []pairedItem

	for _, it := range oldItems {
		amount := it.Amount
		row := pairedItem{Code: it.Code, Old: &amount}
		if v, ok := domain.FindLineItem(newItems, it.Code); ok {
			nv := v
			row.New = &nv
		}
		merged = append(merged, row)
	}
	for _, it := range newItems {
		if _, ok := domain.FindLineItem(oldItems, it.Code); ok {
			continue
		}
		amount := it.Amount
		merged = append(merged, pairedItem{Code: it.Code, New: &amount})
	}

	return merged
}
