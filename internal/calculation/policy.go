package calculation

import (
	"github.com/rsharma/taxwise/internal/domain"
)

// Policy supplies everything that differs between the two regimes: which
// exemptions and deductions exist, which slab table applies, the rebate
// pair, the surcharge tiers, and the house-property treatment. The engine
// pipeline is written once against this contract.
type Policy interface {
	Regime() domain.Regime
	Exemptions(p *domain.TaxpayerProfile) []domain.LineItem
	Section16Deductions(p *domain.TaxpayerProfile) []domain.LineItem
	ChapterVIADeductions(p *domain.TaxpayerProfile) []domain.LineItem
	SelfOccupiedInterestDeductible() bool
	Slabs(age domain.AgeBracket) []domain.Slab
	RebateRule() domain.RebateRule
	SurchargeTiers() []domain.SurchargeTier
}

// OldRegimePolicy implements the legacy rule set: broad exemptions and
// deductions, narrower slabs that vary by age bracket.
type OldRegimePolicy struct {
	Rules *domain.TaxRules
}

func (op OldRegimePolicy) Regime() domain.Regime { return domain.RegimeOld }

func (op OldRegimePolicy) Exemptions(p *domain.TaxpayerProfile) []domain.LineItem {
	return OldRegimeExemptions(p, op.Rules)
}

func (op OldRegimePolicy) Section16Deductions(p *domain.TaxpayerProfile) []domain.LineItem {
	return OldRegimeSection16(p, op.Rules)
}

func (op OldRegimePolicy) ChapterVIADeductions(p *domain.TaxpayerProfile) []domain.LineItem {
	return OldRegimeChapterVIA(p, op.Rules)
}

func (op OldRegimePolicy) SelfOccupiedInterestDeductible() bool { return true }

func (op OldRegimePolicy) Slabs(age domain.AgeBracket) []domain.Slab {
	return op.Rules.OldRegimeSlabs(age)
}

func (op OldRegimePolicy) RebateRule() domain.RebateRule { return op.Rules.RebateOld }

func (op OldRegimePolicy) SurchargeTiers() []domain.SurchargeTier { return op.Rules.SurchargeOld }

// NewRegimePolicy implements the default rule set: few exemptions, one
// Chapter VI-A deduction, wider age-independent slabs, larger rebate.
type NewRegimePolicy struct {
	Rules *domain.TaxRules
}

func (np NewRegimePolicy) Regime() domain.Regime { return domain.RegimeNew }

func (np NewRegimePolicy) Exemptions(p *domain.TaxpayerProfile) []domain.LineItem {
	return NewRegimeExemptions(p, np.Rules)
}

func (np NewRegimePolicy) Section16Deductions(p *domain.TaxpayerProfile) []domain.LineItem {
	return NewRegimeSection16(p, np.Rules)
}

func (np NewRegimePolicy) ChapterVIADeductions(p *domain.TaxpayerProfile) []domain.LineItem {
	return NewRegimeChapterVIA(p, np.Rules)
}

func (np NewRegimePolicy) SelfOccupiedInterestDeductible() bool { return false }

func (np NewRegimePolicy) Slabs(_ domain.AgeBracket) []domain.Slab {
	return np.Rules.NewRegimeSlabs
}

func (np NewRegimePolicy) RebateRule() domain.RebateRule { return np.Rules.RebateNew }

func (np NewRegimePolicy) SurchargeTiers() []domain.SurchargeTier { return np.Rules.SurchargeNew }
