package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsharma/taxwise/internal/domain"
)

func basicProfile(salary int64) *domain.TaxpayerProfile {
	return &domain.TaxpayerProfile{
		AgeCategory:         domain.AgeBelow60,
		CityType:            domain.CityNonMetro,
		NumberOfWorkingDays: 220,
		BasicSalary:         decimal.NewFromInt(salary),
	}
}

func TestCalculateNewRegimeRebateZeroesTax(t *testing.T) {
	engine := NewEngine()

	// 12 lakh salary: the 75k standard deduction brings taxable income
	// under the rebate limit, so the liability is zero.
	b := engine.Calculate(basicProfile(1200000), domain.RegimeNew)

	assert.True(t, b.GrossSalary.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, b.TaxableIncome.Equal(decimal.NewFromInt(1125000)), "got %s", b.TaxableIncome)
	assert.True(t, b.TaxOnIncome.Equal(decimal.NewFromInt(52500)), "got %s", b.TaxOnIncome)
	assert.True(t, b.Rebate87A.Equal(decimal.NewFromInt(52500)), "got %s", b.Rebate87A)
	assert.True(t, b.TotalTax.IsZero(), "got %s", b.TotalTax)
	assert.True(t, b.EffectiveTaxRate.IsZero())
}

func TestCalculateOldRegimeWithCess(t *testing.T) {
	engine := NewEngine()

	b := engine.Calculate(basicProfile(1200000), domain.RegimeOld)

	// 1200000 - 50000 standard = 1150000 taxable.
	assert.True(t, b.TaxableIncome.Equal(decimal.NewFromInt(1150000)), "got %s", b.TaxableIncome)
	// 12500 + 100000 + 30% of 150000 = 157500, plus 4% cess.
	assert.True(t, b.TaxOnIncome.Equal(decimal.NewFromInt(157500)), "got %s", b.TaxOnIncome)
	assert.True(t, b.Rebate87A.IsZero())
	assert.True(t, b.Cess.Equal(decimal.NewFromInt(6300)), "got %s", b.Cess)
	assert.True(t, b.TotalTax.Equal(decimal.NewFromInt(163800)), "got %s", b.TotalTax)
}

func TestCalculateRetainsEveryStep(t *testing.T) {
	engine := NewEngine()

	p := basicProfile(1500000)
	p.CityType = domain.CityMetro
	p.HRAReceived = decimal.NewFromInt(300000)
	p.RentPaidAnnual = decimal.NewFromInt(240000)
	p.PPFContribution = decimal.NewFromInt(150000)
	p.ProfessionalTaxPaid = decimal.NewFromInt(2400)
	p.SavingsAccountInterest = decimal.NewFromInt(8000)

	b := engine.Calculate(p, domain.RegimeOld)

	// Every intermediate must be derivable from its neighbors.
	assert.True(t, b.IncomeFromSalary.Equal(b.GrossSalary.Sub(b.TotalExemptions)))
	assert.True(t, b.NetSalaryIncome.Equal(b.IncomeFromSalary.Sub(b.TotalSection16)))
	assert.True(t, b.GrossTotalIncome.Equal(b.NetSalaryIncome.Add(b.IncomeFromHouseProperty).Add(b.OtherIncome)))
	assert.True(t, b.TaxableIncome.Equal(b.GrossTotalIncome.Sub(b.TotalChapterVIA)))
	assert.True(t, b.TotalTax.Equal(b.TaxAfterRebate.Add(b.Surcharge).Add(b.Cess)))

	assert.True(t, b.TotalExemptions.Equal(domain.SumLineItems(b.Exemptions)))
	assert.True(t, b.TotalSection16.Equal(domain.SumLineItems(b.Section16Deductions)))
	assert.True(t, b.TotalChapterVIA.Equal(domain.SumLineItems(b.ChapterVIADeductions)))

	// Savings interest counts as other income before its 80TTA deduction.
	assert.True(t, b.OtherIncome.Equal(decimal.NewFromInt(8000)), "got %s", b.OtherIncome)
}

func TestCalculateIsDeterministic(t *testing.T) {
	engine := NewEngine()
	p := basicProfile(2500000)
	p.HRAReceived = decimal.NewFromInt(400000)
	p.RentPaidAnnual = decimal.NewFromInt(360000)

	first := engine.Calculate(p, domain.RegimeNew)
	second := engine.Calculate(p, domain.RegimeNew)

	assert.True(t, first.TotalTax.Equal(second.TotalTax))
	assert.True(t, first.TaxableIncome.Equal(second.TaxableIncome))
	assert.Equal(t, len(first.Exemptions), len(second.Exemptions))
}

func TestGrossSalaryEmployerContributionExcess(t *testing.T) {
	engine := NewEngine()

	p := basicProfile(1000000)
	p.EmployerEPFContribution = decimal.NewFromInt(500000)
	p.EmployerNPSContribution = decimal.NewFromInt(400000)

	// 900000 combined is over the 7.5 lakh cap by 150000.
	gross := engine.GrossSalary(p)
	assert.True(t, gross.Equal(decimal.NewFromInt(1150000)), "got %s", gross)
}

func TestGrossSalaryEmployerContributionWithinCap(t *testing.T) {
	engine := NewEngine()

	p := basicProfile(1000000)
	p.EmployerEPFContribution = decimal.NewFromInt(300000)

	gross := engine.GrossSalary(p)
	assert.True(t, gross.Equal(decimal.NewFromInt(1000000)), "got %s", gross)
}

func TestCalculateNetSalaryFloorsAtZero(t *testing.T) {
	engine := NewEngine()

	// Salary below the standard deduction must not go negative.
	b := engine.Calculate(basicProfile(40000), domain.RegimeNew)
	assert.True(t, b.NetSalaryIncome.IsZero(), "got %s", b.NetSalaryIncome)
	assert.True(t, b.TotalTax.IsZero())
}

func TestCalculateHousePropertyLossOffset(t *testing.T) {
	engine := NewEngine()

	p := basicProfile(1500000)
	p.HomeLoanInterestSelfOccupied = decimal.NewFromInt(300000)

	oldB := engine.Calculate(p, domain.RegimeOld)
	newB := engine.Calculate(p, domain.RegimeNew)

	assert.True(t, oldB.IncomeFromHouseProperty.Equal(decimal.NewFromInt(-200000)),
		"old regime allows the capped loss, got %s", oldB.IncomeFromHouseProperty)
	assert.True(t, newB.IncomeFromHouseProperty.IsZero(),
		"new regime disallows self-occupied interest, got %s", newB.IncomeFromHouseProperty)
	assert.True(t, oldB.GrossTotalIncome.LessThan(newB.GrossTotalIncome))
}

func TestCalculateSurchargeApplied(t *testing.T) {
	engine := NewEngine()

	b := engine.Calculate(basicProfile(10000000), domain.RegimeNew)

	require.True(t, b.TaxableIncome.GreaterThan(decimal.NewFromInt(5000000)))
	expected := b.TaxAfterRebate.Mul(decimal.NewFromFloat(0.10))
	assert.True(t, b.Surcharge.Equal(expected), "expected %s, got %s", expected, b.Surcharge)
}

func TestEngineWithCustomRules(t *testing.T) {
	rules := domain.DefaultTaxRules()
	rules.StandardDeductionNew = decimal.NewFromInt(100000)
	engine := NewEngineWithRules(rules)

	b := engine.Calculate(basicProfile(1200000), domain.RegimeNew)
	assert.True(t, b.TaxableIncome.Equal(decimal.NewFromInt(1100000)), "got %s", b.TaxableIncome)
}
