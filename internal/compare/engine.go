package compare

import (
	"github.com/rsharma/taxwise/internal/calculation"
	"github.com/rsharma/taxwise/internal/domain"
)

// Engine runs the calculation engine once per regime and assembles the
// comparison. The two runs share the profile and rules read-only and have
// no ordering dependency.
type Engine struct {
	Calc *calculation.Engine
}

// NewEngine creates a comparison engine over a calculation engine.
func NewEngine(calc *calculation.Engine) *Engine {
	return &Engine{Calc: calc}
}

// Compare computes both regime breakdowns for a validated profile and
// derives the presentation metrics.
func (ce *Engine) Compare(p *domain.TaxpayerProfile) *Comparison {
	oldBreakdown := ce.Calc.Calculate(p, domain.RegimeOld)
	newBreakdown := ce.Calc.Calculate(p, domain.RegimeNew)

	taxesPaid := p.TotalTaxesPaid()

	return &Comparison{
		AssessmentYear: ce.Calc.Rules.AssessmentYear,
		FinancialYear:  ce.Calc.Rules.FinancialYear,
		AgeCategory:    p.AgeCategory,
		OldRegime:      oldBreakdown,
		NewRegime:      newBreakdown,

		Savings:     oldBreakdown.TotalTax.Sub(newBreakdown.TotalTax),
		Recommended: RecommendRegime(oldBreakdown.TotalTax, newBreakdown.TotalTax),

		TDSDeducted:    p.TDSDeducted,
		AdvanceTaxPaid: p.AdvanceTaxPaid,
		TotalTaxesPaid: taxesPaid,
		BalanceOld:     oldBreakdown.TotalTax.Sub(taxesPaid),
		BalanceNew:     newBreakdown.TotalTax.Sub(taxesPaid),
	}
}
