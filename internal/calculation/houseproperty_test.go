package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rsharma/taxwise/internal/domain"
)

func TestHousePropertySelfOccupiedCap(t *testing.T) {
	rules := domain.DefaultTaxRules()

	p := &domain.TaxpayerProfile{
		HomeLoanInterestSelfOccupied: decimal.NewFromInt(350000),
	}

	total, details := HousePropertyIncome(p, rules, true)
	assert.True(t, total.Equal(decimal.NewFromInt(-200000)), "got %s", total)

	interest, ok := domain.FindLineItem(details, domain.ItemSelfOccupiedInterest)
	assert.True(t, ok)
	assert.True(t, interest.Equal(decimal.NewFromInt(-200000)), "got %s", interest)
}

func TestHousePropertyNewRegimeIgnoresSelfOccupied(t *testing.T) {
	rules := domain.DefaultTaxRules()

	p := &domain.TaxpayerProfile{
		HomeLoanInterestSelfOccupied: decimal.NewFromInt(150000),
	}

	total, details := HousePropertyIncome(p, rules, false)
	assert.True(t, total.IsZero(), "got %s", total)
	assert.Empty(t, details)
}

func TestHousePropertyLetOut(t *testing.T) {
	rules := domain.DefaultTaxRules()

	p := &domain.TaxpayerProfile{
		RentalIncomeAnnual:     decimal.NewFromInt(300000),
		HomeLoanInterestLetOut: decimal.NewFromInt(150000),
	}

	// 300000 - 30% standard deduction - 150000 interest = 60000.
	for _, deductible := range []bool{true, false} {
		total, details := HousePropertyIncome(p, rules, deductible)
		assert.True(t, total.Equal(decimal.NewFromInt(60000)), "got %s", total)

		standard, ok := domain.FindLineItem(details, domain.ItemRentalStandardDeduction)
		assert.True(t, ok)
		assert.True(t, standard.Equal(decimal.NewFromInt(-90000)), "got %s", standard)
	}
}

func TestHousePropertyLetOutInterestUncapped(t *testing.T) {
	rules := domain.DefaultTaxRules()

	// Let-out interest has no per-property cap; only the combined loss
	// floor applies.
	p := &domain.TaxpayerProfile{
		RentalIncomeAnnual:     decimal.NewFromInt(300000),
		HomeLoanInterestLetOut: decimal.NewFromInt(350000),
	}

	total, _ := HousePropertyIncome(p, rules, false)
	// 300000 - 90000 - 350000 = -140000, within the floor.
	assert.True(t, total.Equal(decimal.NewFromInt(-140000)), "got %s", total)
}

func TestHousePropertyPreConstruction(t *testing.T) {
	rules := domain.DefaultTaxRules()

	p := &domain.TaxpayerProfile{
		PreConstructionInterest: decimal.NewFromInt(250000),
		ConstructionCompleted:   true,
	}

	total, details := HousePropertyIncome(p, rules, true)
	// One fifth per year.
	assert.True(t, total.Equal(decimal.NewFromInt(-50000)), "got %s", total)

	yearly, ok := domain.FindLineItem(details, domain.ItemPreConstructionInterest)
	assert.True(t, ok)
	assert.True(t, yearly.Equal(decimal.NewFromInt(-50000)), "got %s", yearly)
}

func TestHousePropertyPreConstructionNeedsCompletion(t *testing.T) {
	rules := domain.DefaultTaxRules()

	p := &domain.TaxpayerProfile{
		PreConstructionInterest: decimal.NewFromInt(250000),
	}

	total, details := HousePropertyIncome(p, rules, true)
	assert.True(t, total.IsZero(), "got %s", total)
	assert.Empty(t, details)
}

func TestHousePropertyCombinedLossFloor(t *testing.T) {
	rules := domain.DefaultTaxRules()

	// Self-occupied 200000 plus amortized 50000 exceeds the floor.
	p := &domain.TaxpayerProfile{
		HomeLoanInterestSelfOccupied: decimal.NewFromInt(250000),
		PreConstructionInterest:      decimal.NewFromInt(250000),
		ConstructionCompleted:        true,
	}

	total, _ := HousePropertyIncome(p, rules, true)
	assert.True(t, total.Equal(decimal.NewFromInt(-200000)), "got %s", total)
}
