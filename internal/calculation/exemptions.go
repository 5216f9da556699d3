package calculation

import (
	"github.com/rsharma/taxwise/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	tenPercent   = decimal.NewFromFloat(0.10)
	fortyPercent = decimal.NewFromFloat(0.40)
	fiftyPercent = decimal.NewFromFloat(0.50)
	twelve       = decimal.NewFromInt(12)
	two          = decimal.NewFromInt(2)
)

// appendIfPositive keeps zero-amount lines out of breakdowns, matching the
// reporting convention of showing only claimed items.
func appendIfPositive(items []domain.LineItem, code domain.ItemCode, amount decimal.Decimal) []domain.LineItem {
	if amount.GreaterThan(decimal.Zero) {
		items = append(items, domain.LineItem{Code: code, Amount: amount})
	}
	return items
}

// HRAExemption computes the Section 10(13A) exemption as the least of:
// actual HRA received, rent paid minus 10% of basic+DA, and 50% (metro)
// or 40% (non-metro) of basic+DA, floored at zero. No HRA or no rent paid
// means no exemption.
func HRAExemption(p *domain.TaxpayerProfile) decimal.Decimal {
	if p.HRAReceived.IsZero() || p.RentPaidAnnual.IsZero() {
		return decimal.Zero
	}

	base := p.BasicPlusDA()
	rentMinusTenth := p.RentPaidAnnual.Sub(base.Mul(tenPercent))

	pct := fortyPercent
	if p.CityType == domain.CityMetro {
		pct = fiftyPercent
	}
	salaryShare := base.Mul(pct)

	exempt := decimal.Min(p.HRAReceived, rentMinusTenth, salaryShare)
	if exempt.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return exempt
}

// OldRegimeExemptions computes the full Section 10 exemption set available
// under the old regime.
func OldRegimeExemptions(p *domain.TaxpayerProfile, rules *domain.TaxRules) []domain.LineItem {
	var items []domain.LineItem

	items = appendIfPositive(items, domain.ItemHRAExemption, HRAExemption(p))
	items = appendIfPositive(items, domain.ItemLTAExemption, decimal.Min(p.LTAReceived, p.LTAClaimed))

	// Children allowances are capped per child per month, for at most two
	// children.
	children := p.NumberOfChildren
	if children > rules.MaxChildrenForExemption {
		children = rules.MaxChildrenForExemption
	}
	childCount := decimal.NewFromInt(int64(children))
	educationCap := childCount.Mul(rules.ChildEducationPerMonth).Mul(twelve)
	items = appendIfPositive(items, domain.ItemChildrenEducation, decimal.Min(p.ChildrenEducationAllowance, educationCap))
	hostelCap := childCount.Mul(rules.HostelPerChildPerMonth).Mul(twelve)
	items = appendIfPositive(items, domain.ItemHostelAllowance, decimal.Min(p.HostelAllowance, hostelCap))

	items = appendIfPositive(items, domain.ItemHelperAllowance, decimal.Min(p.HelperAllowance, p.HelperActualExpenses))
	items = appendIfPositive(items, domain.ItemUniformAllowance, decimal.Min(p.UniformAllowance, p.UniformActualExpenses))
	items = appendIfPositive(items, domain.ItemConveyance, decimal.Min(p.ConveyanceAllowance, p.ConveyanceActualExpenses))

	if p.IsDisabled {
		transportCap := rules.TransportDisabledPerMonth.Mul(twelve)
		items = appendIfPositive(items, domain.ItemTransportDisabled, decimal.Min(p.TransportAllowance, transportCap))
	}

	mealCap := rules.MealPerMeal.Mul(two).Mul(decimal.NewFromInt(int64(p.NumberOfWorkingDays)))
	items = appendIfPositive(items, domain.ItemMealVouchers, decimal.Min(p.MealAllowance, mealCap))

	items = appendIfPositive(items, domain.ItemGratuity, decimal.Min(p.GratuityReceived, rules.GratuityCapOld))
	items = appendIfPositive(items, domain.ItemLeaveEncashment, leaveEncashmentExemption(p, rules))
	items = appendIfPositive(items, domain.ItemOtherSection10, p.OtherSection10Exemptions)

	return items
}

// NewRegimeExemptions computes the narrow Section 10 subset the new
// regime retains: disabled transport, official conveyance, gratuity at
// its lower cap, and leave encashment. Everything else is excluded by the
// statute's broader-slab trade-off.
func NewRegimeExemptions(p *domain.TaxpayerProfile, rules *domain.TaxRules) []domain.LineItem {
	var items []domain.LineItem

	if p.IsDisabled {
		transportCap := rules.TransportDisabledPerMonth.Mul(twelve)
		items = appendIfPositive(items, domain.ItemTransportDisabled, decimal.Min(p.TransportAllowance, transportCap))
	}
	items = appendIfPositive(items, domain.ItemConveyance, decimal.Min(p.ConveyanceAllowance, p.ConveyanceActualExpenses))
	items = appendIfPositive(items, domain.ItemGratuity, decimal.Min(p.GratuityReceived, rules.GratuityCapNew))
	items = appendIfPositive(items, domain.ItemLeaveEncashment, leaveEncashmentExemption(p, rules))

	return items
}

// leaveEncashmentExemption is uncapped for government employees.
func leaveEncashmentExemption(p *domain.TaxpayerProfile, rules *domain.TaxRules) decimal.Decimal {
	if p.IsGovernmentEmployee {
		return p.LeaveEncashmentReceived
	}
	return decimal.Min(p.LeaveEncashmentReceived, rules.LeaveEncashmentCap)
}
