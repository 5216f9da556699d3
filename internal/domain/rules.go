package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Slab is one contiguous income bracket taxed at a single marginal rate.
// UpperBound is exclusive of the next bracket; the terminal bracket has
// Unbounded set and its UpperBound is ignored.
type Slab struct {
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upperBound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
	Unbounded  bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// RebateRule is a Section 87A threshold/amount pair. The threshold is an
// inclusive boundary: income one rupee above it loses the entire rebate.
type RebateRule struct {
	IncomeLimit decimal.Decimal `yaml:"income_limit" json:"incomeLimit"`
	MaxRebate   decimal.Decimal `yaml:"max_rebate" json:"maxRebate"`
}

// SurchargeTier applies Rate to tax once taxable income strictly exceeds
// Threshold. Tiers must be listed in ascending threshold order.
type SurchargeTier struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// TaxRules bundles every statutory figure for one assessment year: slab
// tables, exemption and deduction limits, rebate pairs, surcharge tiers
// and the cess rate. It is read-only during computation and identical for
// both regime runs; a new assessment year is a table swap, never a code
// change. Loadable from YAML in the same way the profile is.
type TaxRules struct {
	AssessmentYear string `yaml:"assessment_year" json:"assessmentYear"`
	FinancialYear  string `yaml:"financial_year" json:"financialYear"`

	// Slab tables. The old regime varies by age bracket.
	NewRegimeSlabs         []Slab `yaml:"new_regime_slabs" json:"newRegimeSlabs"`
	OldRegimeSlabsBelow60  []Slab `yaml:"old_regime_slabs_below_60" json:"oldRegimeSlabsBelow60"`
	OldRegimeSlabsSenior   []Slab `yaml:"old_regime_slabs_senior" json:"oldRegimeSlabsSenior"`
	OldRegimeSlabsSuperSen []Slab `yaml:"old_regime_slabs_super_senior" json:"oldRegimeSlabsSuperSenior"`

	// Section 16
	StandardDeductionOld decimal.Decimal `yaml:"standard_deduction_old" json:"standardDeductionOld"`
	StandardDeductionNew decimal.Decimal `yaml:"standard_deduction_new" json:"standardDeductionNew"`
	ProfessionalTaxCap   decimal.Decimal `yaml:"professional_tax_cap" json:"professionalTaxCap"`
	EntertainmentCap     decimal.Decimal `yaml:"entertainment_cap" json:"entertainmentCap"`

	// Section 10 exemption limits
	GratuityCapOld              decimal.Decimal `yaml:"gratuity_cap_old" json:"gratuityCapOld"`
	GratuityCapNew              decimal.Decimal `yaml:"gratuity_cap_new" json:"gratuityCapNew"`
	LeaveEncashmentCap          decimal.Decimal `yaml:"leave_encashment_cap" json:"leaveEncashmentCap"`
	ChildEducationPerMonth      decimal.Decimal `yaml:"child_education_per_month" json:"childEducationPerMonth"`
	HostelPerChildPerMonth      decimal.Decimal `yaml:"hostel_per_child_per_month" json:"hostelPerChildPerMonth"`
	MaxChildrenForExemption     int             `yaml:"max_children_for_exemption" json:"maxChildrenForExemption"`
	TransportDisabledPerMonth   decimal.Decimal `yaml:"transport_disabled_per_month" json:"transportDisabledPerMonth"`
	MealPerMeal                 decimal.Decimal `yaml:"meal_per_meal" json:"mealPerMeal"`
	EmployerContributionCombCap decimal.Decimal `yaml:"employer_contribution_combined_cap" json:"employerContributionCombinedCap"`

	// Chapter VI-A limits
	Limit80C           decimal.Decimal `yaml:"limit_80c" json:"limit80C"`
	Limit80CCD1B       decimal.Decimal `yaml:"limit_80ccd_1b" json:"limit80CCD1B"`
	Rate80CCD2         decimal.Decimal `yaml:"rate_80ccd_2" json:"rate80CCD2"`
	Limit80DSelf       decimal.Decimal `yaml:"limit_80d_self" json:"limit80DSelf"`
	Limit80DSelfSenior decimal.Decimal `yaml:"limit_80d_self_senior" json:"limit80DSelfSenior"`
	Limit80DParents    decimal.Decimal `yaml:"limit_80d_parents" json:"limit80DParents"`
	Limit80DParentsSen decimal.Decimal `yaml:"limit_80d_parents_senior" json:"limit80DParentsSenior"`
	Limit80DPreventive decimal.Decimal `yaml:"limit_80d_preventive" json:"limit80DPreventive"`
	Limit80DD          decimal.Decimal `yaml:"limit_80dd" json:"limit80DD"`
	Limit80DDSevere    decimal.Decimal `yaml:"limit_80dd_severe" json:"limit80DDSevere"`
	Limit80DDB         decimal.Decimal `yaml:"limit_80ddb" json:"limit80DDB"`
	Limit80DDBSenior   decimal.Decimal `yaml:"limit_80ddb_senior" json:"limit80DDBSenior"`
	Limit80EE          decimal.Decimal `yaml:"limit_80ee" json:"limit80EE"`
	Limit80EEA         decimal.Decimal `yaml:"limit_80eea" json:"limit80EEA"`
	Limit80EEB         decimal.Decimal `yaml:"limit_80eeb" json:"limit80EEB"`
	Limit80GGPerMonth  decimal.Decimal `yaml:"limit_80gg_per_month" json:"limit80GGPerMonth"`
	Limit80TTA         decimal.Decimal `yaml:"limit_80tta" json:"limit80TTA"`
	Limit80TTB         decimal.Decimal `yaml:"limit_80ttb" json:"limit80TTB"`
	Limit80U           decimal.Decimal `yaml:"limit_80u" json:"limit80U"`
	Limit80USevere     decimal.Decimal `yaml:"limit_80u_severe" json:"limit80USevere"`

	// Section 24 / house property
	SelfOccupiedInterestCap decimal.Decimal `yaml:"self_occupied_interest_cap" json:"selfOccupiedInterestCap"`
	HousePropertyLossCap    decimal.Decimal `yaml:"house_property_loss_cap" json:"housePropertyLossCap"`
	LetOutStandardDedRate   decimal.Decimal `yaml:"let_out_standard_deduction_rate" json:"letOutStandardDeductionRate"`
	PreConstructionYears    int             `yaml:"pre_construction_years" json:"preConstructionYears"`

	// Rebate (Section 87A) per regime
	RebateOld RebateRule `yaml:"rebate_old" json:"rebateOld"`
	RebateNew RebateRule `yaml:"rebate_new" json:"rebateNew"`

	// Surcharge tiers per regime, ascending
	SurchargeOld []SurchargeTier `yaml:"surcharge_old" json:"surchargeOld"`
	SurchargeNew []SurchargeTier `yaml:"surcharge_new" json:"surchargeNew"`

	// Health & education cess on tax plus surcharge
	CessRate decimal.Decimal `yaml:"cess_rate" json:"cessRate"`
}

// OldRegimeSlabs returns the old-regime slab table for an age bracket.
func (r *TaxRules) OldRegimeSlabs(age AgeBracket) []Slab {
	switch age {
	case AgeSuperSenior:
		return r.OldRegimeSlabsSuperSen
	case AgeSenior:
		return r.OldRegimeSlabsSenior
	default:
		return r.OldRegimeSlabsBelow60
	}
}

// Validate checks the structural invariants of the slab tables: bounds
// strictly increasing, rates non-decreasing, terminal bracket unbounded.
func (r *TaxRules) Validate() error {
	for name, slabs := range map[string][]Slab{
		"new_regime_slabs":              r.NewRegimeSlabs,
		"old_regime_slabs_below_60":     r.OldRegimeSlabsBelow60,
		"old_regime_slabs_senior":       r.OldRegimeSlabsSenior,
		"old_regime_slabs_super_senior": r.OldRegimeSlabsSuperSen,
	} {
		if err := validateSlabs(slabs); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if r.CessRate.LessThan(decimal.Zero) {
		return fmt.Errorf("cess_rate cannot be negative")
	}
	return nil
}

func validateSlabs(slabs []Slab) error {
	if len(slabs) == 0 {
		return fmt.Errorf("slab table is empty")
	}
	if !slabs[len(slabs)-1].Unbounded {
		return fmt.Errorf("terminal slab must be unbounded")
	}
	for i, s := range slabs {
		if s.Rate.LessThan(decimal.Zero) {
			return fmt.Errorf("slab %d has negative rate", i)
		}
		if i > 0 {
			if s.Rate.LessThan(slabs[i-1].Rate) {
				return fmt.Errorf("slab %d rate decreases", i)
			}
			if !s.Unbounded && s.UpperBound.LessThanOrEqual(slabs[i-1].UpperBound) {
				return fmt.Errorf("slab %d upper bound does not increase", i)
			}
		}
	}
	return nil
}

// DefaultTaxRules returns the compiled-in tables for AY 2026-27
// (FY 2025-26). A rules YAML file can override any of them.
func DefaultTaxRules() *TaxRules {
	return &TaxRules{
		AssessmentYear: "2026-27",
		FinancialYear:  "2025-26",

		NewRegimeSlabs: []Slab{
			{UpperBound: decimal.NewFromInt(400000), Rate: decimal.Zero},
			{UpperBound: decimal.NewFromInt(800000), Rate: decimal.NewFromFloat(0.05)},
			{UpperBound: decimal.NewFromInt(1200000), Rate: decimal.NewFromFloat(0.10)},
			{UpperBound: decimal.NewFromInt(1600000), Rate: decimal.NewFromFloat(0.15)},
			{UpperBound: decimal.NewFromInt(2000000), Rate: decimal.NewFromFloat(0.20)},
			{UpperBound: decimal.NewFromInt(2400000), Rate: decimal.NewFromFloat(0.25)},
			{Rate: decimal.NewFromFloat(0.30), Unbounded: true},
		},
		OldRegimeSlabsBelow60: []Slab{
			{UpperBound: decimal.NewFromInt(250000), Rate: decimal.Zero},
			{UpperBound: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
			{UpperBound: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
			{Rate: decimal.NewFromFloat(0.30), Unbounded: true},
		},
		OldRegimeSlabsSenior: []Slab{
			{UpperBound: decimal.NewFromInt(300000), Rate: decimal.Zero},
			{UpperBound: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
			{UpperBound: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
			{Rate: decimal.NewFromFloat(0.30), Unbounded: true},
		},
		OldRegimeSlabsSuperSen: []Slab{
			{UpperBound: decimal.NewFromInt(500000), Rate: decimal.Zero},
			{UpperBound: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
			{Rate: decimal.NewFromFloat(0.30), Unbounded: true},
		},

		StandardDeductionOld: decimal.NewFromInt(50000),
		StandardDeductionNew: decimal.NewFromInt(75000),
		ProfessionalTaxCap:   decimal.NewFromInt(2500),
		EntertainmentCap:     decimal.NewFromInt(5000),

		GratuityCapOld:              decimal.NewFromInt(2000000),
		GratuityCapNew:              decimal.NewFromInt(500000),
		LeaveEncashmentCap:          decimal.NewFromInt(2500000),
		ChildEducationPerMonth:      decimal.NewFromInt(100),
		HostelPerChildPerMonth:      decimal.NewFromInt(300),
		MaxChildrenForExemption:     2,
		TransportDisabledPerMonth:   decimal.NewFromInt(3200),
		MealPerMeal:                 decimal.NewFromInt(50),
		EmployerContributionCombCap: decimal.NewFromInt(750000),

		Limit80C:           decimal.NewFromInt(150000),
		Limit80CCD1B:       decimal.NewFromInt(50000),
		Rate80CCD2:         decimal.NewFromFloat(0.14),
		Limit80DSelf:       decimal.NewFromInt(25000),
		Limit80DSelfSenior: decimal.NewFromInt(50000),
		Limit80DParents:    decimal.NewFromInt(25000),
		Limit80DParentsSen: decimal.NewFromInt(50000),
		Limit80DPreventive: decimal.NewFromInt(5000),
		Limit80DD:          decimal.NewFromInt(75000),
		Limit80DDSevere:    decimal.NewFromInt(125000),
		Limit80DDB:         decimal.NewFromInt(40000),
		Limit80DDBSenior:   decimal.NewFromInt(100000),
		Limit80EE:          decimal.NewFromInt(50000),
		Limit80EEA:         decimal.NewFromInt(150000),
		Limit80EEB:         decimal.NewFromInt(150000),
		Limit80GGPerMonth:  decimal.NewFromInt(5000),
		Limit80TTA:         decimal.NewFromInt(10000),
		Limit80TTB:         decimal.NewFromInt(50000),
		Limit80U:           decimal.NewFromInt(75000),
		Limit80USevere:     decimal.NewFromInt(125000),

		SelfOccupiedInterestCap: decimal.NewFromInt(200000),
		HousePropertyLossCap:    decimal.NewFromInt(200000),
		LetOutStandardDedRate:   decimal.NewFromFloat(0.30),
		PreConstructionYears:    5,

		RebateOld: RebateRule{IncomeLimit: decimal.NewFromInt(500000), MaxRebate: decimal.NewFromInt(12500)},
		RebateNew: RebateRule{IncomeLimit: decimal.NewFromInt(1200000), MaxRebate: decimal.NewFromInt(60000)},

		SurchargeOld: []SurchargeTier{
			{Threshold: decimal.NewFromInt(5000000), Rate: decimal.NewFromFloat(0.10)},
			{Threshold: decimal.NewFromInt(10000000), Rate: decimal.NewFromFloat(0.15)},
			{Threshold: decimal.NewFromInt(20000000), Rate: decimal.NewFromFloat(0.25)},
			{Threshold: decimal.NewFromInt(50000000), Rate: decimal.NewFromFloat(0.37)},
		},
		SurchargeNew: []SurchargeTier{
			{Threshold: decimal.NewFromInt(5000000), Rate: decimal.NewFromFloat(0.10)},
			{Threshold: decimal.NewFromInt(10000000), Rate: decimal.NewFromFloat(0.15)},
			{Threshold: decimal.NewFromInt(20000000), Rate: decimal.NewFromFloat(0.25)},
		},

		CessRate: decimal.NewFromFloat(0.04),
	}
}
