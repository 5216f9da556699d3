package calculation

import (
	"github.com/rsharma/taxwise/internal/domain"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// OldRegimeChapterVIA computes the full Chapter VI-A deduction set of the
// old regime. Section order follows the return form.
func OldRegimeChapterVIA(p *domain.TaxpayerProfile, rules *domain.TaxRules) []domain.LineItem {
	var items []domain.LineItem

	// 80C pools nine investment/contribution fields, the 80CCC pension
	// fund, and the 80CCD(1) employee NPS slice under one combined cap.
	total80C := p.EPFContributionEmployee.
		Add(p.PPFContribution).
		Add(p.LifeInsurancePremium).
		Add(p.ELSSInvestment).
		Add(p.NSCInvestment).
		Add(p.SukanyaSamriddhi).
		Add(p.TaxSaverFD).
		Add(p.TuitionFees).
		Add(p.HomeLoanPrincipal).
		Add(p.SCSSInvestment).
		Add(p.Other80C).
		Add(p.PensionFundContribution).
		Add(decimal.Min(p.EmployeeNPSContribution, rules.Limit80C))
	items = appendIfPositive(items, domain.Item80C, decimal.Min(total80C, rules.Limit80C))

	// 80CCD(1B): additional NPS over and above 80C.
	items = appendIfPositive(items, domain.Item80CCD1B, decimal.Min(p.AdditionalNPSContribution, rules.Limit80CCD1B))

	items = appendIfPositive(items, domain.Item80CCD2, employerNPSDeduction(p, rules))

	// 80D: self/family and parents, each tiered by senior-citizen status.
	selfLimit := rules.Limit80DSelf
	if p.AgeCategory.IsSenior() {
		selfLimit = rules.Limit80DSelfSenior
	}
	deduction80DSelf := decimal.Min(p.HealthInsuranceSelf, selfLimit)

	parentsLimit := rules.Limit80DParents
	if p.ParentsAreSeniorCitizen {
		parentsLimit = rules.Limit80DParentsSen
	}
	deduction80DParents := decimal.Min(p.HealthInsuranceParents, parentsLimit)

	// Preventive health checkup is capped separately, but the statute
	// folds it into the self/parent limits above; it is computed here and
	// intentionally not added to the total.
	_ = decimal.Min(p.PreventiveHealthCheckup, rules.Limit80DPreventive)

	items = appendIfPositive(items, domain.Item80D, deduction80DSelf.Add(deduction80DParents))

	// 80DD: flat amount by severity once any expense is claimed.
	if p.DisabledDependentExpenses.GreaterThan(decimal.Zero) {
		amount := rules.Limit80DD
		if p.IsSevereDisability {
			amount = rules.Limit80DDSevere
		}
		items = append(items, domain.LineItem{Code: domain.Item80DD, Amount: amount})
	}

	// 80DDB: capped, with a higher senior-citizen tier.
	if p.MedicalTreatmentExpenses.GreaterThan(decimal.Zero) {
		limit := rules.Limit80DDB
		if p.AgeCategory.IsSenior() {
			limit = rules.Limit80DDBSenior
		}
		items = append(items, domain.LineItem{Code: domain.Item80DDB, Amount: decimal.Min(p.MedicalTreatmentExpenses, limit)})
	}

	// 80E: education loan interest, uncapped.
	items = appendIfPositive(items, domain.Item80E, p.EducationLoanInterest)

	items = appendIfPositive(items, domain.Item80EE, decimal.Min(p.HomeLoanInterest80EE, rules.Limit80EE))
	items = appendIfPositive(items, domain.Item80EEA, decimal.Min(p.HomeLoanInterest80EEA, rules.Limit80EEA))
	items = appendIfPositive(items, domain.Item80EEB, decimal.Min(p.EVLoanInterest, rules.Limit80EEB))

	// 80G: 100% donations in full, 50% donations at half credit.
	items = appendIfPositive(items, domain.Item80GDonations100, p.Donations100Percent)
	items = appendIfPositive(items, domain.Item80GDonations50, p.Donations50Percent.Mul(half))

	// 80GG: rent relief only when no HRA is received at all.
	if p.RentPaidNoHRA.GreaterThan(decimal.Zero) && p.HRAReceived.IsZero() {
		yearlyCap := rules.Limit80GGPerMonth.Mul(twelve)
		items = append(items, domain.LineItem{Code: domain.Item80GGRent, Amount: decimal.Min(p.RentPaidNoHRA, yearlyCap)})
	}

	// 80TTA for non-seniors, 80TTB for seniors: an either/or pair gated
	// on the age bracket.
	if !p.AgeCategory.IsSenior() {
		items = appendIfPositive(items, domain.Item80TTA, decimal.Min(p.SavingsAccountInterest, rules.Limit80TTA))
	} else {
		items = appendIfPositive(items, domain.Item80TTB, decimal.Min(p.SeniorCitizenInterestIncome, rules.Limit80TTB))
	}

	// 80U: flat amount by severity, claim-flag driven.
	if p.SelfDisabilityClaim {
		amount := rules.Limit80U
		if p.SelfSevereDisability {
			amount = rules.Limit80USevere
		}
		items = append(items, domain.LineItem{Code: domain.Item80U, Amount: amount})
	}

	return items
}

// NewRegimeChapterVIA allows exactly one deduction: the 80CCD(2) employer
// NPS contribution, computed with the same formula as the old regime.
func NewRegimeChapterVIA(p *domain.TaxpayerProfile, rules *domain.TaxRules) []domain.LineItem {
	var items []domain.LineItem
	items = appendIfPositive(items, domain.Item80CCD2, employerNPSDeduction(p, rules))
	return items
}

// employerNPSDeduction caps the employer NPS contribution at 14% of
// basic+DA. Shared by both regimes.
func employerNPSDeduction(p *domain.TaxpayerProfile, rules *domain.TaxRules) decimal.Decimal {
	ceiling := p.BasicPlusDA().Mul(rules.Rate80CCD2)
	return decimal.Min(p.EmployerNPSContribution, ceiling)
}
