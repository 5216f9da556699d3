package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsharma/taxwise/internal/domain"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfileFromFile(t *testing.T) {
	path := writeTempYAML(t, `
age_category: senior
city_type: metro
basic_salary: 1200000
hra_received: 300000
rent_paid_annual: 240000
ppf_contribution: 150000
is_government_employee: true
`)

	loader := NewLoader()
	p, err := loader.LoadProfileFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.AgeSenior, p.AgeCategory)
	assert.Equal(t, domain.CityMetro, p.CityType)
	assert.True(t, p.BasicSalary.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, p.PPFContribution.Equal(decimal.NewFromInt(150000)))
	assert.True(t, p.IsGovernmentEmployee)
}

func TestLoadProfileFromFileDefaults(t *testing.T) {
	path := writeTempYAML(t, `
basic_salary: 500000
`)

	loader := NewLoader()
	p, err := loader.LoadProfileFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.AgeBelow60, p.AgeCategory)
	assert.Equal(t, domain.CityNonMetro, p.CityType)
	assert.Equal(t, 220, p.NumberOfWorkingDays)
	assert.True(t, p.HRAReceived.IsZero(), "absent keys default to zero")
}

func TestLoadProfileFromFileRejectsNegative(t *testing.T) {
	path := writeTempYAML(t, `
basic_salary: -500000
`)

	loader := NewLoader()
	_, err := loader.LoadProfileFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basic_salary")
}

func TestLoadProfileFromFileRejectsBadEnum(t *testing.T) {
	path := writeTempYAML(t, `
age_category: elderly
basic_salary: 500000
`)

	loader := NewLoader()
	_, err := loader.LoadProfileFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age_category")
}

func TestLoadProfileFromFileMissing(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadProfileFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadProfileFromEnv(t *testing.T) {
	t.Setenv("BASIC_SALARY", "900000")
	t.Setenv("HRA_RECEIVED", "200000")
	t.Setenv("RENT_PAID_ANNUAL", "180000")
	t.Setenv("CITY_TYPE", "metro")
	t.Setenv("IS_DISABLED", "true")

	loader := NewLoader()
	p, err := loader.LoadProfileFromEnv()
	require.NoError(t, err)

	assert.True(t, p.BasicSalary.Equal(decimal.NewFromInt(900000)))
	assert.True(t, p.HRAReceived.Equal(decimal.NewFromInt(200000)))
	assert.Equal(t, domain.CityMetro, p.CityType)
	assert.True(t, p.IsDisabled)
	assert.Equal(t, domain.AgeBelow60, p.AgeCategory, "env default applies")
}

func TestLoadProfileFromEnvRejectsNegative(t *testing.T) {
	t.Setenv("BASIC_SALARY", "100000")
	t.Setenv("TDS_DEDUCTED", "-5000")

	loader := NewLoader()
	_, err := loader.LoadProfileFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tds_deducted")
}

func TestLoadRulesPartialOverride(t *testing.T) {
	path := writeTempYAML(t, `
standard_deduction_new: 100000
`)

	loader := NewLoader()
	rules, err := loader.LoadRules(path)
	require.NoError(t, err)

	assert.True(t, rules.StandardDeductionNew.Equal(decimal.NewFromInt(100000)))
	// Everything the file does not name keeps its default.
	assert.True(t, rules.StandardDeductionOld.Equal(decimal.NewFromInt(50000)))
	assert.True(t, rules.CessRate.Equal(decimal.NewFromFloat(0.04)))
	assert.Len(t, rules.NewRegimeSlabs, 7)
}

func TestLoadRulesRejectsBadSlabs(t *testing.T) {
	path := writeTempYAML(t, `
new_regime_slabs:
  - upper_bound: 800000
    rate: 0.05
  - upper_bound: 400000
    rate: 0.10
  - rate: 0.30
    unbounded: true
`)

	loader := NewLoader()
	_, err := loader.LoadRules(path)
	require.Error(t, err)
}
