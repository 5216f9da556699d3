package calculation

import (
	"github.com/rsharma/taxwise/internal/domain"
	"github.com/shopspring/decimal"
)

// HousePropertyIncome returns the signed net income or loss from house
// property plus its detail lines. Self-occupied loan interest (capped) and
// the amortized pre-construction interest count only when
// selfOccupiedDeductible is set, which the old-regime policy enables and
// the new-regime policy does not. Let-out income — gross rent minus the
// flat 30% standard deduction minus uncapped interest — applies under both
// regimes. The combined loss is floored at the statutory ceiling; anything
// beyond it is unusable this year (carry-forward is out of scope).
func HousePropertyIncome(p *domain.TaxpayerProfile, rules *domain.TaxRules, selfOccupiedDeductible bool) (decimal.Decimal, []domain.LineItem) {
	var details []domain.LineItem

	selfOccupiedLoss := decimal.Zero
	if selfOccupiedDeductible && p.HomeLoanInterestSelfOccupied.GreaterThan(decimal.Zero) {
		selfOccupiedLoss = decimal.Min(p.HomeLoanInterestSelfOccupied, rules.SelfOccupiedInterestCap)
		details = append(details, domain.LineItem{Code: domain.ItemSelfOccupiedInterest, Amount: selfOccupiedLoss.Neg()})
	}

	letOutIncome := decimal.Zero
	if p.RentalIncomeAnnual.GreaterThan(decimal.Zero) {
		grossRent := p.RentalIncomeAnnual
		standardDeduction := grossRent.Mul(rules.LetOutStandardDedRate)
		interest := p.HomeLoanInterestLetOut

		letOutIncome = grossRent.Sub(standardDeduction).Sub(interest)

		details = append(details, domain.LineItem{Code: domain.ItemRentalIncome, Amount: grossRent})
		details = append(details, domain.LineItem{Code: domain.ItemRentalStandardDeduction, Amount: standardDeduction.Neg()})
		if interest.GreaterThan(decimal.Zero) {
			details = append(details, domain.LineItem{Code: domain.ItemLetOutInterest, Amount: interest.Neg()})
		}
	}

	// Pre-construction interest becomes deductible once construction is
	// complete, spread evenly over five years.
	if selfOccupiedDeductible && p.ConstructionCompleted && p.PreConstructionInterest.GreaterThan(decimal.Zero) {
		yearly := p.PreConstructionInterest.Div(decimal.NewFromInt(int64(rules.PreConstructionYears)))
		details = append(details, domain.LineItem{Code: domain.ItemPreConstructionInterest, Amount: yearly.Neg()})
		selfOccupiedLoss = selfOccupiedLoss.Add(yearly)
	}

	total := letOutIncome.Sub(selfOccupiedLoss)

	lossFloor := rules.HousePropertyLossCap.Neg()
	if total.LessThan(lossFloor) {
		total = lossFloor
	}

	return total, details
}
