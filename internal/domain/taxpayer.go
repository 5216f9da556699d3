package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AgeBracket classifies the taxpayer for slab and deduction purposes.
type AgeBracket string

const (
	AgeBelow60     AgeBracket = "below_60"     // under 60
	AgeSenior      AgeBracket = "senior"       // 60 to 80
	AgeSuperSenior AgeBracket = "super_senior" // above 80
)

// Valid reports whether the bracket is one of the recognized values.
func (a AgeBracket) Valid() bool {
	switch a {
	case AgeBelow60, AgeSenior, AgeSuperSenior:
		return true
	}
	return false
}

// IsSenior reports whether the taxpayer qualifies for senior-citizen limits
// (both senior and super-senior brackets do).
func (a AgeBracket) IsSenior() bool {
	return a == AgeSenior || a == AgeSuperSenior
}

// CityType determines the HRA exemption percentage (50% metro, 40% otherwise).
type CityType string

const (
	CityMetro    CityType = "metro"
	CityNonMetro CityType = "non_metro"
)

// Valid reports whether the city type is recognized.
func (c CityType) Valid() bool {
	return c == CityMetro || c == CityNonMetro
}

// Regime selects which statutory rule set a computation runs under.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// TaxpayerProfile holds every fact about one taxpayer for one financial
// year. All amounts are annual INR. A zero value means "not applicable";
// the profile is treated as immutable once validated.
//
// Field names mirror the return-filing vocabulary; yaml tags serve file
// input and env tags serve environment input.
type TaxpayerProfile struct {
	// Personal attributes
	AgeCategory AgeBracket `yaml:"age_category" env:"AGE_CATEGORY" envDefault:"below_60" json:"ageCategory"`
	CityType    CityType   `yaml:"city_type" env:"CITY_TYPE" envDefault:"non_metro" json:"cityType"`

	// Salary components
	BasicSalary                decimal.Decimal `yaml:"basic_salary" env:"BASIC_SALARY" json:"basicSalary"`
	DearnessAllowance          decimal.Decimal `yaml:"dearness_allowance" env:"DEARNESS_ALLOWANCE" json:"dearnessAllowance"`
	HRAReceived                decimal.Decimal `yaml:"hra_received" env:"HRA_RECEIVED" json:"hraReceived"`
	RentPaidAnnual             decimal.Decimal `yaml:"rent_paid_annual" env:"RENT_PAID_ANNUAL" json:"rentPaidAnnual"`
	LTAReceived                decimal.Decimal `yaml:"lta_received" env:"LTA_RECEIVED" json:"ltaReceived"`
	LTAClaimed                 decimal.Decimal `yaml:"lta_claimed" env:"LTA_CLAIMED" json:"ltaClaimed"`
	ConveyanceAllowance        decimal.Decimal `yaml:"conveyance_allowance" env:"CONVEYANCE_ALLOWANCE" json:"conveyanceAllowance"`
	ConveyanceActualExpenses   decimal.Decimal `yaml:"conveyance_actual_expenses" env:"CONVEYANCE_ACTUAL_EXPENSES" json:"conveyanceActualExpenses"`
	SpecialAllowance           decimal.Decimal `yaml:"special_allowance" env:"SPECIAL_ALLOWANCE" json:"specialAllowance"`
	MedicalAllowance           decimal.Decimal `yaml:"medical_allowance" env:"MEDICAL_ALLOWANCE" json:"medicalAllowance"`
	TransportAllowance         decimal.Decimal `yaml:"transport_allowance" env:"TRANSPORT_ALLOWANCE" json:"transportAllowance"`
	IsDisabled                 bool            `yaml:"is_disabled" env:"IS_DISABLED" json:"isDisabled"`
	ChildrenEducationAllowance decimal.Decimal `yaml:"children_education_allowance" env:"CHILDREN_EDUCATION_ALLOWANCE" json:"childrenEducationAllowance"`
	HostelAllowance            decimal.Decimal `yaml:"hostel_allowance" env:"HOSTEL_ALLOWANCE" json:"hostelAllowance"`
	NumberOfChildren           int             `yaml:"number_of_children" env:"NUMBER_OF_CHILDREN" json:"numberOfChildren"`
	HelperAllowance            decimal.Decimal `yaml:"helper_allowance" env:"HELPER_ALLOWANCE" json:"helperAllowance"`
	HelperActualExpenses       decimal.Decimal `yaml:"helper_actual_expenses" env:"HELPER_ACTUAL_EXPENSES" json:"helperActualExpenses"`
	UniformAllowance           decimal.Decimal `yaml:"uniform_allowance" env:"UNIFORM_ALLOWANCE" json:"uniformAllowance"`
	UniformActualExpenses      decimal.Decimal `yaml:"uniform_actual_expenses" env:"UNIFORM_ACTUAL_EXPENSES" json:"uniformActualExpenses"`
	MealAllowance              decimal.Decimal `yaml:"meal_allowance" env:"MEAL_ALLOWANCE" json:"mealAllowance"`
	NumberOfWorkingDays        int             `yaml:"number_of_working_days" env:"NUMBER_OF_WORKING_DAYS" envDefault:"220" json:"numberOfWorkingDays"`
	Bonus                      decimal.Decimal `yaml:"bonus" env:"BONUS" json:"bonus"`
	Commission                 decimal.Decimal `yaml:"commission" env:"COMMISSION" json:"commission"`
	OvertimePay                decimal.Decimal `yaml:"overtime_pay" env:"OVERTIME_PAY" json:"overtimePay"`
	EntertainmentAllowance     decimal.Decimal `yaml:"entertainment_allowance" env:"ENTERTAINMENT_ALLOWANCE" json:"entertainmentAllowance"`

	// Retirement benefits
	GratuityReceived        decimal.Decimal `yaml:"gratuity_received" env:"GRATUITY_RECEIVED" json:"gratuityReceived"`
	LeaveEncashmentReceived decimal.Decimal `yaml:"leave_encashment_received" env:"LEAVE_ENCASHMENT_RECEIVED" json:"leaveEncashmentReceived"`
	IsGovernmentEmployee    bool            `yaml:"is_government_employee" env:"IS_GOVERNMENT_EMPLOYEE" json:"isGovernmentEmployee"`

	// Employer contributions (combined cap applies; excess is taxable)
	EmployerEPFContribution            decimal.Decimal `yaml:"employer_epf_contribution" env:"EMPLOYER_EPF_CONTRIBUTION" json:"employerEPFContribution"`
	EmployerNPSContribution            decimal.Decimal `yaml:"employer_nps_contribution" env:"EMPLOYER_NPS_CONTRIBUTION" json:"employerNPSContribution"`
	EmployerSuperannuationContribution decimal.Decimal `yaml:"employer_superannuation_contribution" env:"EMPLOYER_SUPERANNUATION_CONTRIBUTION" json:"employerSuperannuationContribution"`

	// Section 16
	ProfessionalTaxPaid decimal.Decimal `yaml:"professional_tax_paid" env:"PROFESSIONAL_TAX_PAID" json:"professionalTaxPaid"`

	// Section 10 catch-all
	OtherSection10Exemptions decimal.Decimal `yaml:"other_section_10_exemptions" env:"OTHER_SECTION_10_EXEMPTIONS" json:"otherSection10Exemptions"`

	// Chapter VI-A: 80C pool
	EPFContributionEmployee decimal.Decimal `yaml:"epf_contribution_employee" env:"EPF_CONTRIBUTION_EMPLOYEE" json:"epfContributionEmployee"`
	PPFContribution         decimal.Decimal `yaml:"ppf_contribution" env:"PPF_CONTRIBUTION" json:"ppfContribution"`
	LifeInsurancePremium    decimal.Decimal `yaml:"life_insurance_premium" env:"LIFE_INSURANCE_PREMIUM" json:"lifeInsurancePremium"`
	ELSSInvestment          decimal.Decimal `yaml:"elss_investment" env:"ELSS_INVESTMENT" json:"elssInvestment"`
	NSCInvestment           decimal.Decimal `yaml:"nsc_investment" env:"NSC_INVESTMENT" json:"nscInvestment"`
	SukanyaSamriddhi        decimal.Decimal `yaml:"sukanya_samriddhi" env:"SUKANYA_SAMRIDDHI" json:"sukanyaSamriddhi"`
	TaxSaverFD              decimal.Decimal `yaml:"tax_saver_fd" env:"TAX_SAVER_FD" json:"taxSaverFD"`
	TuitionFees             decimal.Decimal `yaml:"tuition_fees" env:"TUITION_FEES" json:"tuitionFees"`
	HomeLoanPrincipal       decimal.Decimal `yaml:"home_loan_principal" env:"HOME_LOAN_PRINCIPAL" json:"homeLoanPrincipal"`
	SCSSInvestment          decimal.Decimal `yaml:"scss_investment" env:"SCSS_INVESTMENT" json:"scssInvestment"`
	Other80C                decimal.Decimal `yaml:"other_80c" env:"OTHER_80C" json:"other80C"`
	PensionFundContribution decimal.Decimal `yaml:"pension_fund_contribution" env:"PENSION_FUND_CONTRIBUTION" json:"pensionFundContribution"`

	// NPS
	EmployeeNPSContribution   decimal.Decimal `yaml:"employee_nps_contribution" env:"EMPLOYEE_NPS_CONTRIBUTION" json:"employeeNPSContribution"`
	AdditionalNPSContribution decimal.Decimal `yaml:"additional_nps_contribution" env:"ADDITIONAL_NPS_CONTRIBUTION" json:"additionalNPSContribution"`

	// 80D health insurance
	HealthInsuranceSelf      decimal.Decimal `yaml:"health_insurance_self" env:"HEALTH_INSURANCE_SELF" json:"healthInsuranceSelf"`
	HealthInsuranceParents   decimal.Decimal `yaml:"health_insurance_parents" env:"HEALTH_INSURANCE_PARENTS" json:"healthInsuranceParents"`
	PreventiveHealthCheckup  decimal.Decimal `yaml:"preventive_health_checkup" env:"PREVENTIVE_HEALTH_CHECKUP" json:"preventiveHealthCheckup"`
	ParentsAreSeniorCitizen  bool            `yaml:"parents_are_senior_citizen" env:"PARENTS_ARE_SENIOR_CITIZEN" json:"parentsAreSeniorCitizen"`

	// 80DD / 80DDB
	DisabledDependentExpenses decimal.Decimal `yaml:"disabled_dependent_expenses" env:"DISABLED_DEPENDENT_EXPENSES" json:"disabledDependentExpenses"`
	IsSevereDisability        bool            `yaml:"is_severe_disability" env:"IS_SEVERE_DISABILITY" json:"isSevereDisability"`
	MedicalTreatmentExpenses  decimal.Decimal `yaml:"medical_treatment_expenses" env:"MEDICAL_TREATMENT_EXPENSES" json:"medicalTreatmentExpenses"`

	// Loan interest deductions
	EducationLoanInterest decimal.Decimal `yaml:"education_loan_interest" env:"EDUCATION_LOAN_INTEREST" json:"educationLoanInterest"`
	HomeLoanInterest80EE  decimal.Decimal `yaml:"home_loan_interest_80ee" env:"HOME_LOAN_INTEREST_80EE" json:"homeLoanInterest80EE"`
	HomeLoanInterest80EEA decimal.Decimal `yaml:"home_loan_interest_80eea" env:"HOME_LOAN_INTEREST_80EEA" json:"homeLoanInterest80EEA"`
	EVLoanInterest        decimal.Decimal `yaml:"ev_loan_interest" env:"EV_LOAN_INTEREST" json:"evLoanInterest"`

	// Donations and rent
	Donations100Percent decimal.Decimal `yaml:"donations_100_percent" env:"DONATIONS_100_PERCENT" json:"donations100Percent"`
	Donations50Percent  decimal.Decimal `yaml:"donations_50_percent" env:"DONATIONS_50_PERCENT" json:"donations50Percent"`
	RentPaidNoHRA       decimal.Decimal `yaml:"rent_paid_no_hra" env:"RENT_PAID_NO_HRA" json:"rentPaidNoHRA"`

	// Interest income deductions
	SavingsAccountInterest      decimal.Decimal `yaml:"savings_account_interest" env:"SAVINGS_ACCOUNT_INTEREST" json:"savingsAccountInterest"`
	SeniorCitizenInterestIncome decimal.Decimal `yaml:"senior_citizen_interest_income" env:"SENIOR_CITIZEN_INTEREST_INCOME" json:"seniorCitizenInterestIncome"`

	// 80U self disability
	SelfDisabilityClaim  bool `yaml:"self_disability_claim" env:"SELF_DISABILITY_CLAIM" json:"selfDisabilityClaim"`
	SelfSevereDisability bool `yaml:"self_severe_disability" env:"SELF_SEVERE_DISABILITY" json:"selfSevereDisability"`

	// House property
	HomeLoanInterestSelfOccupied decimal.Decimal `yaml:"home_loan_interest_self_occupied" env:"HOME_LOAN_INTEREST_SELF_OCCUPIED" json:"homeLoanInterestSelfOccupied"`
	HomeLoanInterestLetOut       decimal.Decimal `yaml:"home_loan_interest_let_out" env:"HOME_LOAN_INTEREST_LET_OUT" json:"homeLoanInterestLetOut"`
	RentalIncomeAnnual           decimal.Decimal `yaml:"rental_income_annual" env:"RENTAL_INCOME_ANNUAL" json:"rentalIncomeAnnual"`
	PreConstructionInterest      decimal.Decimal `yaml:"pre_construction_interest" env:"PRE_CONSTRUCTION_INTEREST" json:"preConstructionInterest"`
	ConstructionCompleted        bool            `yaml:"construction_completed" env:"CONSTRUCTION_COMPLETED" json:"constructionCompleted"`

	// Other income
	InterestIncomeOther decimal.Decimal `yaml:"interest_income_other" env:"INTEREST_INCOME_OTHER" json:"interestIncomeOther"`
	OtherIncome         decimal.Decimal `yaml:"other_income" env:"OTHER_INCOME" json:"otherIncome"`

	// Taxes already paid (display only; not part of the liability pipeline)
	TDSDeducted    decimal.Decimal `yaml:"tds_deducted" env:"TDS_DEDUCTED" json:"tdsDeducted"`
	AdvanceTaxPaid decimal.Decimal `yaml:"advance_tax_paid" env:"ADVANCE_TAX_PAID" json:"advanceTaxPaid"`
}

// BasicPlusDA is the base used for HRA, entertainment allowance and the
// 80CCD(2) employer-NPS ceiling.
func (p *TaxpayerProfile) BasicPlusDA() decimal.Decimal {
	return p.BasicSalary.Add(p.DearnessAllowance)
}

// TotalTaxesPaid is TDS plus advance tax, used for the balance-due display.
func (p *TaxpayerProfile) TotalTaxesPaid() decimal.Decimal {
	return p.TDSDeducted.Add(p.AdvanceTaxPaid)
}

// HasEarnings reports whether any salary component is non-zero. The CLI
// refuses to run a comparison for an all-zero profile.
func (p *TaxpayerProfile) HasEarnings() bool {
	return p.BasicSalary.GreaterThan(decimal.Zero)
}

// Validate rejects profiles that could only come from a configuration
// mistake: negative amounts for fields defined as non-negative, negative
// counts, or unrecognized enum values. Clamping is deliberately not done
// here, since it would hide the mistake.
func (p *TaxpayerProfile) Validate() error {
	if !p.AgeCategory.Valid() {
		return fmt.Errorf("age_category must be one of below_60, senior, super_senior; got %q", p.AgeCategory)
	}
	if !p.CityType.Valid() {
		return fmt.Errorf("city_type must be metro or non_metro; got %q", p.CityType)
	}
	if p.NumberOfChildren < 0 {
		return fmt.Errorf("number_of_children cannot be negative")
	}
	if p.NumberOfWorkingDays < 0 {
		return fmt.Errorf("number_of_working_days cannot be negative")
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"basic_salary", p.BasicSalary},
		{"dearness_allowance", p.DearnessAllowance},
		{"hra_received", p.HRAReceived},
		{"rent_paid_annual", p.RentPaidAnnual},
		{"lta_received", p.LTAReceived},
		{"lta_claimed", p.LTAClaimed},
		{"conveyance_allowance", p.ConveyanceAllowance},
		{"conveyance_actual_expenses", p.ConveyanceActualExpenses},
		{"special_allowance", p.SpecialAllowance},
		{"medical_allowance", p.MedicalAllowance},
		{"transport_allowance", p.TransportAllowance},
		{"children_education_allowance", p.ChildrenEducationAllowance},
		{"hostel_allowance", p.HostelAllowance},
		{"helper_allowance", p.HelperAllowance},
		{"helper_actual_expenses", p.HelperActualExpenses},
		{"uniform_allowance", p.UniformAllowance},
		{"uniform_actual_expenses", p.UniformActualExpenses},
		{"meal_allowance", p.MealAllowance},
		{"bonus", p.Bonus},
		{"commission", p.Commission},
		{"overtime_pay", p.OvertimePay},
		{"entertainment_allowance", p.EntertainmentAllowance},
		{"gratuity_received", p.GratuityReceived},
		{"leave_encashment_received", p.LeaveEncashmentReceived},
		{"employer_epf_contribution", p.EmployerEPFContribution},
		{"employer_nps_contribution", p.EmployerNPSContribution},
		{"employer_superannuation_contribution", p.EmployerSuperannuationContribution},
		{"professional_tax_paid", p.ProfessionalTaxPaid},
		{"other_section_10_exemptions", p.OtherSection10Exemptions},
		{"epf_contribution_employee", p.EPFContributionEmployee},
		{"ppf_contribution", p.PPFContribution},
		{"life_insurance_premium", p.LifeInsurancePremium},
		{"elss_investment", p.ELSSInvestment},
		{"nsc_investment", p.NSCInvestment},
		{"sukanya_samriddhi", p.SukanyaSamriddhi},
		{"tax_saver_fd", p.TaxSaverFD},
		{"tuition_fees", p.TuitionFees},
		{"home_loan_principal", p.HomeLoanPrincipal},
		{"scss_investment", p.SCSSInvestment},
		{"other_80c", p.Other80C},
		{"pension_fund_contribution", p.PensionFundContribution},
		{"employee_nps_contribution", p.EmployeeNPSContribution},
		{"additional_nps_contribution", p.AdditionalNPSContribution},
		{"health_insurance_self", p.HealthInsuranceSelf},
		{"health_insurance_parents", p.HealthInsuranceParents},
		{"preventive_health_checkup", p.PreventiveHealthCheckup},
		{"disabled_dependent_expenses", p.DisabledDependentExpenses},
		{"medical_treatment_expenses", p.MedicalTreatmentExpenses},
		{"education_loan_interest", p.EducationLoanInterest},
		{"home_loan_interest_80ee", p.HomeLoanInterest80EE},
		{"home_loan_interest_80eea", p.HomeLoanInterest80EEA},
		{"ev_loan_interest", p.EVLoanInterest},
		{"donations_100_percent", p.Donations100Percent},
		{"donations_50_percent", p.Donations50Percent},
		{"rent_paid_no_hra", p.RentPaidNoHRA},
		{"savings_account_interest", p.SavingsAccountInterest},
		{"senior_citizen_interest_income", p.SeniorCitizenInterestIncome},
		{"home_loan_interest_self_occupied", p.HomeLoanInterestSelfOccupied},
		{"home_loan_interest_let_out", p.HomeLoanInterestLetOut},
		{"rental_income_annual", p.RentalIncomeAnnual},
		{"pre_construction_interest", p.PreConstructionInterest},
		{"interest_income_other", p.InterestIncomeOther},
		{"other_income", p.OtherIncome},
		{"tds_deducted", p.TDSDeducted},
		{"advance_tax_paid", p.AdvanceTaxPaid},
	} {
		if f.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative", f.name)
		}
	}
	return nil
}
