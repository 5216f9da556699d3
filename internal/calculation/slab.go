package calculation

import (
	"github.com/rsharma/taxwise/internal/domain"
	"github.com/shopspring/decimal"
)

// SlabTax computes progressive tax over an ordered slab table: each slab
// taxes the portion of income above the previous bound, capped at its own
// bound, at its marginal rate. Non-positive income yields zero tax rather
// than an error; callers pre-validate inputs and a negative value simply
// short-circuits the same way zero does.
func SlabTax(taxableIncome decimal.Decimal, slabs []domain.Slab) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	prev := decimal.Zero
	for _, slab := range slabs {
		if taxableIncome.LessThanOrEqual(prev) {
			break
		}
		top := taxableIncome
		if !slab.Unbounded {
			top = decimal.Min(taxableIncome, slab.UpperBound)
		}
		tax = tax.Add(top.Sub(prev).Mul(slab.Rate))
		if slab.Unbounded {
			break
		}
		prev = slab.UpperBound
	}
	return tax
}

// Rebate87A returns the Section 87A rebate: the smaller of the computed
// tax and the regime's maximum rebate when taxable income is at or below
// the regime's limit, zero otherwise. The limit is an inclusive boundary,
// so one rupee of extra income forfeits the entire rebate. That cliff is
// statutory, not a rounding artifact.
func Rebate87A(taxableIncome, tax decimal.Decimal, rule domain.RebateRule) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(rule.IncomeLimit) {
		return decimal.Min(tax, rule.MaxRebate)
	}
	return decimal.Zero
}

// Surcharge levies a percentage on tax-after-rebate once taxable income
// strictly exceeds a tier threshold; the highest exceeded tier wins, and
// income exactly at a threshold stays in the tier below.
//
// Marginal relief — capping the extra tax-plus-surcharge at the extra
// income past the threshold — is not implemented. The statutory formula
// is nontrivial and the figures here overstate liability just past each
// threshold.
func Surcharge(taxableIncome, taxAfterRebate decimal.Decimal, tiers []domain.SurchargeTier) decimal.Decimal {
	rate := decimal.Zero
	for _, tier := range tiers {
		if !taxableIncome.GreaterThan(tier.Threshold) {
			break
		}
		rate = tier.Rate
	}
	return taxAfterRebate.Mul(rate)
}
