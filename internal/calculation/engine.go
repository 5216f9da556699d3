package calculation

import (
	"github.com/rsharma/taxwise/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Engine computes a fully itemized tax breakdown for one regime. It is a
// pure function over a validated profile and a read-only rules table: no
// hidden state, so two runs over the same profile are bit-identical and
// the two regime runs may happen in either order.
type Engine struct {
	Rules  *domain.TaxRules
	Logger Logger
}

// NewEngine creates an engine with the compiled-in AY 2026-27 rules.
func NewEngine() *Engine {
	return NewEngineWithRules(domain.DefaultTaxRules())
}

// NewEngineWithRules creates an engine over an explicit rules table.
func NewEngineWithRules(rules *domain.TaxRules) *Engine {
	return &Engine{Rules: rules, Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// PolicyFor returns the regime policy backing a computation.
func (e *Engine) PolicyFor(regime domain.Regime) Policy {
	if regime == domain.RegimeOld {
		return OldRegimePolicy{Rules: e.Rules}
	}
	return NewRegimePolicy{Rules: e.Rules}
}

// GrossSalary sums every salary component plus the taxable excess of the
// combined employer retirement contributions over their joint cap.
func (e *Engine) GrossSalary(p *domain.TaxpayerProfile) decimal.Decimal {
	gross := p.BasicSalary.
		Add(p.DearnessAllowance).
		Add(p.HRAReceived).
		Add(p.LTAReceived).
		Add(p.ConveyanceAllowance).
		Add(p.SpecialAllowance).
		Add(p.MedicalAllowance).
		Add(p.TransportAllowance).
		Add(p.ChildrenEducationAllowance).
		Add(p.HostelAllowance).
		Add(p.HelperAllowance).
		Add(p.UniformAllowance).
		Add(p.MealAllowance).
		Add(p.Bonus).
		Add(p.Commission).
		Add(p.OvertimePay).
		Add(p.GratuityReceived).
		Add(p.LeaveEncashmentReceived).
		Add(p.EntertainmentAllowance)

	employerTotal := p.EmployerEPFContribution.
		Add(p.EmployerNPSContribution).
		Add(p.EmployerSuperannuationContribution)
	if employerTotal.GreaterThan(e.Rules.EmployerContributionCombCap) {
		gross = gross.Add(employerTotal.Sub(e.Rules.EmployerContributionCombCap))
	}

	return gross
}

// Calculate runs the sixteen-step pipeline for one regime and returns the
// Breakdown with every intermediate retained. Steps are strictly ordered;
// each depends only on earlier outputs. Regime differences live entirely
// inside the policy.
func (e *Engine) Calculate(p *domain.TaxpayerProfile, regime domain.Regime) *domain.Breakdown {
	policy := e.PolicyFor(regime)
	b := &domain.Breakdown{Regime: policy.Regime()}

	// Step 1: gross salary.
	b.GrossSalary = e.GrossSalary(p)

	// Step 2: Section 10 exemptions.
	b.Exemptions = policy.Exemptions(p)
	b.TotalExemptions = domain.SumLineItems(b.Exemptions)

	// Step 3: income from salary.
	b.IncomeFromSalary = b.GrossSalary.Sub(b.TotalExemptions)

	// Step 4: Section 16 deductions.
	b.Section16Deductions = policy.Section16Deductions(p)
	b.TotalSection16 = domain.SumLineItems(b.Section16Deductions)

	// Step 5: net salary income, floored at zero.
	b.NetSalaryIncome = decimal.Max(decimal.Zero, b.IncomeFromSalary.Sub(b.TotalSection16))

	// Step 6: house property income (signed).
	b.IncomeFromHouseProperty, b.HousePropertyDetails = HousePropertyIncome(p, e.Rules, policy.SelfOccupiedInterestDeductible())

	// Step 7: other income.
	b.OtherIncome = p.InterestIncomeOther.Add(p.OtherIncome).Add(p.SavingsAccountInterest)

	// Step 8: gross total income.
	b.GrossTotalIncome = b.NetSalaryIncome.Add(b.IncomeFromHouseProperty).Add(b.OtherIncome)

	// Step 9: Chapter VI-A deductions.
	b.ChapterVIADeductions = policy.ChapterVIADeductions(p)
	b.TotalChapterVIA = domain.SumLineItems(b.ChapterVIADeductions)

	// Step 10: taxable income, floored at zero.
	b.TaxableIncome = decimal.Max(decimal.Zero, b.GrossTotalIncome.Sub(b.TotalChapterVIA))

	// Step 11: slab tax.
	b.TaxOnIncome = SlabTax(b.TaxableIncome, policy.Slabs(p.AgeCategory))

	// Step 12: Section 87A rebate.
	b.Rebate87A = Rebate87A(b.TaxableIncome, b.TaxOnIncome, policy.RebateRule())

	// Step 13: tax after rebate, floored at zero.
	b.TaxAfterRebate = decimal.Max(decimal.Zero, b.TaxOnIncome.Sub(b.Rebate87A))

	// Step 14: surcharge.
	b.Surcharge = Surcharge(b.TaxableIncome, b.TaxAfterRebate, policy.SurchargeTiers())

	// Step 15: cess and total tax.
	b.Cess = b.TaxAfterRebate.Add(b.Surcharge).Mul(e.Rules.CessRate)
	b.TotalTax = b.TaxAfterRebate.Add(b.Surcharge).Add(b.Cess)

	// Step 16: effective rate against gross salary.
	if b.GrossSalary.GreaterThan(decimal.Zero) {
		b.EffectiveTaxRate = b.TotalTax.Div(b.GrossSalary).Mul(hundred)
	}

	e.Logger.Debugf("%s regime: gross=%s taxable=%s total tax=%s",
		b.Regime, b.GrossSalary, b.TaxableIncome, b.TotalTax)

	return b
}
