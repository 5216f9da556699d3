package integration

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsharma/taxwise/internal/calculation"
	"github.com/rsharma/taxwise/internal/compare"
	"github.com/rsharma/taxwise/internal/config"
	"github.com/rsharma/taxwise/internal/domain"
)

const exampleProfile = "../testdata/example_profile.yaml"

func TestEndToEndComparison(t *testing.T) {
	loader := config.NewLoader()

	t.Run("profile_loading", func(t *testing.T) {
		profile, err := loader.LoadProfileFromFile(exampleProfile)
		require.NoError(t, err)
		require.NotNil(t, profile)

		assert.Equal(t, domain.CityMetro, profile.CityType)
		assert.True(t, profile.BasicSalary.Equal(decimal.NewFromInt(1200000)))
		assert.True(t, profile.HasEarnings())
	})

	t.Run("comparison_pipeline", func(t *testing.T) {
		profile, err := loader.LoadProfileFromFile(exampleProfile)
		require.NoError(t, err)

		engine := compare.NewEngine(calculation.NewEngine())
		c := engine.Compare(profile)

		require.NotNil(t, c.OldRegime)
		require.NotNil(t, c.NewRegime)

		// Both regimes see the same gross salary.
		assert.True(t, c.OldRegime.GrossSalary.Equal(c.NewRegime.GrossSalary))

		// This profile is deduction-heavy, so the old regime must end up
		// with the lower taxable income.
		assert.True(t, c.OldRegime.TaxableIncome.LessThan(c.NewRegime.TaxableIncome))

		// HRA and 80C exist only under the old regime.
		_, ok := domain.FindLineItem(c.OldRegime.Exemptions, domain.ItemHRAExemption)
		assert.True(t, ok)
		_, ok = domain.FindLineItem(c.NewRegime.Exemptions, domain.ItemHRAExemption)
		assert.False(t, ok)
		_, ok = domain.FindLineItem(c.NewRegime.ChapterVIADeductions, domain.Item80C)
		assert.False(t, ok)

		// Self-occupied interest reduces old-regime income only.
		assert.True(t, c.OldRegime.IncomeFromHouseProperty.Equal(decimal.NewFromInt(-200000)))
		assert.True(t, c.NewRegime.IncomeFromHouseProperty.IsZero())

		// Balance reflects the 150000 TDS in the fixture.
		assert.True(t, c.TotalTaxesPaid.Equal(decimal.NewFromInt(150000)))
		assert.True(t, c.BalanceOld.Equal(c.OldRegime.TotalTax.Sub(decimal.NewFromInt(150000))))

		assert.Contains(t, []domain.Regime{domain.RegimeOld, domain.RegimeNew}, c.Recommended)
		assert.True(t, c.Savings.Equal(c.OldRegime.TotalTax.Sub(c.NewRegime.TotalTax)))
	})

	t.Run("all_formatters", func(t *testing.T) {
		profile, err := loader.LoadProfileFromFile(exampleProfile)
		require.NoError(t, err)

		c := compare.NewEngine(calculation.NewEngine()).Compare(profile)

		for _, name := range []string{"table", "json", "csv", "pdf"} {
			formatter := compare.GetFormatterByName(name)
			require.NotNil(t, formatter, "formatter %s", name)

			data, err := formatter.Format(c)
			require.NoError(t, err, "formatter %s", name)
			assert.NotEmpty(t, data, "formatter %s", name)
		}
	})

	t.Run("json_output_is_stable", func(t *testing.T) {
		profile, err := loader.LoadProfileFromFile(exampleProfile)
		require.NoError(t, err)

		c := compare.NewEngine(calculation.NewEngine()).Compare(profile)

		first, err := compare.GetFormatterByName("json").Format(c)
		require.NoError(t, err)
		second, err := compare.GetFormatterByName("json").Format(c)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		var decoded compare.Comparison
		require.NoError(t, json.Unmarshal(first, &decoded))
		assert.True(t, decoded.OldRegime.TotalTax.Equal(c.OldRegime.TotalTax))
	})
}

func TestEndToEndRulesOverride(t *testing.T) {
	loader := config.NewLoader()

	profile, err := loader.LoadProfileFromFile(exampleProfile)
	require.NoError(t, err)

	defaultEngine := calculation.NewEngine()
	defaultBreakdown := defaultEngine.Calculate(profile, domain.RegimeNew)

	rules := domain.DefaultTaxRules()
	rules.StandardDeductionNew = rules.StandardDeductionNew.Add(decimal.NewFromInt(25000))
	overridden := calculation.NewEngineWithRules(rules).Calculate(profile, domain.RegimeNew)

	assert.True(t, overridden.TaxableIncome.Equal(defaultBreakdown.TaxableIncome.Sub(decimal.NewFromInt(25000))),
		"a larger standard deduction lowers taxable income rupee for rupee")
}
