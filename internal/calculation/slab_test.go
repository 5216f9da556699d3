package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rsharma/taxwise/internal/domain"
)

func TestSlabTaxNewRegime(t *testing.T) {
	rules := domain.DefaultTaxRules()

	tests := []struct {
		name     string
		income   int64
		expected int64
	}{
		{"zero income", 0, 0},
		{"within exempt slab", 400000, 0},
		{"top of 5% slab", 800000, 20000},
		{"mid 10% slab", 1000000, 40000},
		{"top of 25% slab", 2400000, 300000},
		{"into the 30% slab", 3000000, 480000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := SlabTax(decimal.NewFromInt(tt.income), rules.NewRegimeSlabs)
			assert.True(t, tax.Equal(decimal.NewFromInt(tt.expected)),
				"income %d: expected %d, got %s", tt.income, tt.expected, tax)
		})
	}
}

func TestSlabTaxOldRegimeByAge(t *testing.T) {
	rules := domain.DefaultTaxRules()
	income := decimal.NewFromInt(1000000)

	tests := []struct {
		name     string
		age      domain.AgeBracket
		expected int64
	}{
		// Higher exempt slabs shave 5% off the extra exempt band.
		{"below 60", domain.AgeBelow60, 112500},
		{"senior", domain.AgeSenior, 110000},
		{"super senior", domain.AgeSuperSenior, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := SlabTax(income, rules.OldRegimeSlabs(tt.age))
			assert.True(t, tax.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, tax)
		})
	}
}

func TestSlabTaxContinuousAtBoundaries(t *testing.T) {
	rules := domain.DefaultTaxRules()

	// Tax one rupee above a slab bound should exceed tax at the bound by
	// exactly one rupee at the marginal rate, never by a jump.
	for _, bound := range []int64{400000, 800000, 1200000, 1600000, 2000000, 2400000} {
		at := SlabTax(decimal.NewFromInt(bound), rules.NewRegimeSlabs)
		above := SlabTax(decimal.NewFromInt(bound+1), rules.NewRegimeSlabs)
		diff := above.Sub(at)
		assert.True(t, diff.LessThan(decimal.NewFromFloat(0.31)),
			"discontinuity at %d: tax jumped by %s", bound, diff)
	}
}

func TestSlabTaxNegativeIncome(t *testing.T) {
	rules := domain.DefaultTaxRules()
	tax := SlabTax(decimal.NewFromInt(-50000), rules.NewRegimeSlabs)
	assert.True(t, tax.IsZero())
}

func TestRebate87ACliff(t *testing.T) {
	rules := domain.DefaultTaxRules()

	tests := []struct {
		name     string
		income   int64
		tax      int64
		rule     domain.RebateRule
		expected int64
	}{
		{"new regime at the limit", 1200000, 60000, rules.RebateNew, 60000},
		{"new regime one rupee over", 1200001, 60000, rules.RebateNew, 0},
		{"new regime tax below max", 700000, 15000, rules.RebateNew, 15000},
		{"old regime at the limit", 500000, 12500, rules.RebateOld, 12500},
		{"old regime one rupee over", 500001, 12500, rules.RebateOld, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rebate := Rebate87A(decimal.NewFromInt(tt.income), decimal.NewFromInt(tt.tax), tt.rule)
			assert.True(t, rebate.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, rebate)
		})
	}
}

func TestSurchargeTiers(t *testing.T) {
	rules := domain.DefaultTaxRules()
	tax := decimal.NewFromInt(1000000)

	tests := []struct {
		name     string
		income   int64
		tiers    []domain.SurchargeTier
		expected int64
	}{
		{"old regime at 50 lakh exactly", 5000000, rules.SurchargeOld, 0},
		{"old regime just past 50 lakh", 5000001, rules.SurchargeOld, 100000},
		{"old regime past 1 crore", 15000000, rules.SurchargeOld, 150000},
		{"old regime past 2 crore", 30000000, rules.SurchargeOld, 250000},
		{"old regime past 5 crore", 60000000, rules.SurchargeOld, 370000},
		// New regime tops out at 25%.
		{"new regime past 5 crore", 60000000, rules.SurchargeNew, 250000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Surcharge(decimal.NewFromInt(tt.income), tax, tt.tiers)
			assert.True(t, s.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, s)
		})
	}
}
