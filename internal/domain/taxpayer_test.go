package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() TaxpayerProfile {
	return TaxpayerProfile{
		AgeCategory: AgeBelow60,
		CityType:    CityNonMetro,
		BasicSalary: decimal.NewFromInt(600000),
	}
}

func TestValidateAcceptsValidProfile(t *testing.T) {
	p := validProfile()
	require.NoError(t, p.Validate())
}

func TestValidateRejectsNegativeAmounts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TaxpayerProfile)
	}{
		{"basic_salary", func(p *TaxpayerProfile) { p.BasicSalary = decimal.NewFromInt(-1) }},
		{"rent_paid_annual", func(p *TaxpayerProfile) { p.RentPaidAnnual = decimal.NewFromInt(-100) }},
		{"ppf_contribution", func(p *TaxpayerProfile) { p.PPFContribution = decimal.NewFromInt(-100) }},
		{"tds_deducted", func(p *TaxpayerProfile) { p.TDSDeducted = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestValidateRejectsNegativeCounts(t *testing.T) {
	p := validProfile()
	p.NumberOfChildren = -1
	require.Error(t, p.Validate())

	p = validProfile()
	p.NumberOfWorkingDays = -1
	require.Error(t, p.Validate())
}

func TestValidateRejectsBadEnums(t *testing.T) {
	p := validProfile()
	p.AgeCategory = "elderly"
	require.Error(t, p.Validate())

	p = validProfile()
	p.CityType = "urban"
	require.Error(t, p.Validate())
}

func TestAgeBracketIsSenior(t *testing.T) {
	assert.False(t, AgeBelow60.IsSenior())
	assert.True(t, AgeSenior.IsSenior())
	assert.True(t, AgeSuperSenior.IsSenior())
}

func TestProfileHelpers(t *testing.T) {
	p := validProfile()
	p.DearnessAllowance = decimal.NewFromInt(100000)
	p.TDSDeducted = decimal.NewFromInt(30000)
	p.AdvanceTaxPaid = decimal.NewFromInt(20000)

	assert.True(t, p.BasicPlusDA().Equal(decimal.NewFromInt(700000)))
	assert.True(t, p.TotalTaxesPaid().Equal(decimal.NewFromInt(50000)))
	assert.True(t, p.HasEarnings())

	assert.False(t, (&TaxpayerProfile{}).HasEarnings())
}
