package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/rsharma/taxwise/internal/domain"
	"gopkg.in/yaml.v3"
)

// Loader reads taxpayer profiles and statutory rules. Profiles come from
// a YAML file or from environment variables; the source does not matter
// to the engine, which only sees a validated TaxpayerProfile value.
type Loader struct{}

// NewLoader creates a new profile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProfileFromFile loads and validates a taxpayer profile from YAML.
// Absent keys default to zero, matching the filing convention that an
// unclaimed item is simply omitted.
func (l *Loader) LoadProfileFromFile(filename string) (*domain.TaxpayerProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.TaxpayerProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&profile)
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// LoadProfileFromEnv builds a profile from environment variables
// (BASIC_SALARY, HRA_RECEIVED, ...). Unset variables default to zero or
// false.
func (l *Loader) LoadProfileFromEnv() (*domain.TaxpayerProfile, error) {
	var profile domain.TaxpayerProfile
	if err := env.Parse(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	applyDefaults(&profile)
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// LoadRules reads a statutory rules file, starting from the compiled-in
// defaults so a partial file only overrides what it names.
func (l *Loader) LoadRules(filename string) (*domain.TaxRules, error) {
	rules := domain.DefaultTaxRules()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return rules, nil
}

// applyDefaults fills the enum fields a YAML source may leave empty.
// Environment loading already defaults these via env tags.
func applyDefaults(p *domain.TaxpayerProfile) {
	if p.AgeCategory == "" {
		p.AgeCategory = domain.AgeBelow60
	}
	if p.CityType == "" {
		p.CityType = domain.CityNonMetro
	}
	if p.NumberOfWorkingDays == 0 {
		p.NumberOfWorkingDays = 220
	}
}
