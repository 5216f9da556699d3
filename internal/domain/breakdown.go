package domain

import "github.com/shopspring/decimal"

// ItemCode identifies one named exemption or deduction line. The set is
// closed: calculators may only emit codes declared here, which keeps typos
// out of breakdowns and lets formatters enumerate labels exhaustively.
type ItemCode string

const (
	// Section 10 exemptions
	ItemHRAExemption      ItemCode = "hra_exemption"
	ItemLTAExemption      ItemCode = "lta_exemption"
	ItemChildrenEducation ItemCode = "children_education"
	ItemHostelAllowance   ItemCode = "hostel_allowance"
	ItemHelperAllowance   ItemCode = "helper_allowance"
	ItemUniformAllowance  ItemCode = "uniform_allowance"
	ItemConveyance        ItemCode = "conveyance"
	ItemTransportDisabled ItemCode = "transport_disabled"
	ItemMealVouchers      ItemCode = "meal_vouchers"
	ItemGratuity          ItemCode = "gratuity"
	ItemLeaveEncashment   ItemCode = "leave_encashment"
	ItemOtherSection10    ItemCode = "other_section_10"

	// Section 16 deductions
	ItemStandardDeduction      ItemCode = "standard_deduction"
	ItemProfessionalTax        ItemCode = "professional_tax"
	ItemEntertainmentAllowance ItemCode = "entertainment_allowance"

	// Chapter VI-A deductions
	Item80C              ItemCode = "80c"
	Item80CCD1B          ItemCode = "80ccd_1b"
	Item80CCD2           ItemCode = "80ccd_2"
	Item80D              ItemCode = "80d"
	Item80DD             ItemCode = "80dd"
	Item80DDB            ItemCode = "80ddb"
	Item80E              ItemCode = "80e"
	Item80EE             ItemCode = "80ee"
	Item80EEA            ItemCode = "80eea"
	Item80EEB            ItemCode = "80eeb"
	Item80GDonations100  ItemCode = "80g_donations_100"
	Item80GDonations50   ItemCode = "80g_donations_50"
	Item80GGRent         ItemCode = "80gg_rent"
	Item80TTA            ItemCode = "80tta"
	Item80TTB            ItemCode = "80ttb"
	Item80U              ItemCode = "80u"

	// House property detail lines
	ItemSelfOccupiedInterest    ItemCode = "self_occupied_interest"
	ItemRentalIncome            ItemCode = "rental_income"
	ItemRentalStandardDeduction ItemCode = "rental_standard_deduction"
	ItemLetOutInterest          ItemCode = "let_out_interest"
	ItemPreConstructionInterest ItemCode = "pre_construction_interest"
)

// itemLabels maps codes to the statutory display names used in reports.
var itemLabels = map[ItemCode]string{
	ItemHRAExemption:      "HRA Exemption [10(13A)]",
	ItemLTAExemption:      "LTA Exemption [10(5)]",
	ItemChildrenEducation: "Children Education [10(14)(ii)]",
	ItemHostelAllowance:   "Hostel Allowance [10(14)(ii)]",
	ItemHelperAllowance:   "Helper/Driver [10(14)(i)]",
	ItemUniformAllowance:  "Uniform Allowance [10(14)(i)]",
	ItemConveyance:        "Conveyance [10(14)]",
	ItemTransportDisabled: "Transport (Disabled) [10(14)]",
	ItemMealVouchers:      "Meal Voucher Exemption",
	ItemGratuity:          "Gratuity [10(10)]",
	ItemLeaveEncashment:   "Leave Encashment [10(10AA)]",
	ItemOtherSection10:    "Other Section 10 Exemptions",

	ItemStandardDeduction:      "Standard Deduction [16(ia)]",
	ItemProfessionalTax:        "Professional Tax [16(iii)]",
	ItemEntertainmentAllowance: "Entertainment Allowance [16(ii)]",

	Item80C:             "Section 80C",
	Item80CCD1B:         "Section 80CCD(1B) - Add. NPS",
	Item80CCD2:          "Section 80CCD(2) - Employer NPS",
	Item80D:             "Section 80D - Health Insurance",
	Item80DD:            "Section 80DD - Disabled Dependent",
	Item80DDB:           "Section 80DDB - Medical Treatment",
	Item80E:             "Section 80E - Education Loan",
	Item80EE:            "Section 80EE - Home Loan",
	Item80EEA:           "Section 80EEA - Add. Home Loan",
	Item80EEB:           "Section 80EEB - EV Loan",
	Item80GDonations100: "Section 80G - Donations (100%)",
	Item80GDonations50:  "Section 80G - Donations (50%)",
	Item80GGRent:        "Section 80GG - Rent",
	Item80TTA:           "Section 80TTA - Savings Interest",
	Item80TTB:           "Section 80TTB - Interest Income",
	Item80U:             "Section 80U - Self Disability",

	ItemSelfOccupiedInterest:    "Self-Occupied Interest [24(b)]",
	ItemRentalIncome:            "Rental Income",
	ItemRentalStandardDeduction: "Standard Deduction (30%)",
	ItemLetOutInterest:          "Let-Out Interest [24(b)]",
	ItemPreConstructionInterest: "Pre-construction Interest",
}

// Label returns the statutory display name for the code.
func (c ItemCode) Label() string {
	if l, ok := itemLabels[c]; ok {
		return l
	}
	return string(c)
}

// LineItem is one named amount within a breakdown category. Slices of
// LineItem preserve statutory display order, unlike a map.
type LineItem struct {
	Code   ItemCode        `json:"code" yaml:"code"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// SumLineItems totals the amounts of a category.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// FindLineItem returns the amount for a code and whether it is present.
func FindLineItem(items []LineItem, code ItemCode) (decimal.Decimal, bool) {
	for _, it := range items {
		if it.Code == code {
			return it.Amount, true
		}
	}
	return decimal.Zero, false
}

// Breakdown is the fully itemized result of one regime computation. It is
// constructed by the engine, populated step by step, and never mutated
// afterward. Every intermediate figure is retained for reporting.
type Breakdown struct {
	Regime Regime `json:"regime"`

	GrossSalary decimal.Decimal `json:"grossSalary"`

	Exemptions      []LineItem      `json:"exemptions"`
	TotalExemptions decimal.Decimal `json:"totalExemptions"`

	IncomeFromSalary decimal.Decimal `json:"incomeFromSalary"`

	Section16Deductions []LineItem      `json:"section16Deductions"`
	TotalSection16      decimal.Decimal `json:"totalSection16"`

	NetSalaryIncome decimal.Decimal `json:"netSalaryIncome"`

	// Signed: positive is income, negative is a (bounded) loss.
	IncomeFromHouseProperty decimal.Decimal `json:"incomeFromHouseProperty"`
	HousePropertyDetails    []LineItem      `json:"housePropertyDetails"`

	OtherIncome      decimal.Decimal `json:"otherIncome"`
	GrossTotalIncome decimal.Decimal `json:"grossTotalIncome"`

	ChapterVIADeductions []LineItem      `json:"chapterVIADeductions"`
	TotalChapterVIA      decimal.Decimal `json:"totalChapterVIA"`

	TaxableIncome decimal.Decimal `json:"taxableIncome"`

	TaxOnIncome    decimal.Decimal `json:"taxOnIncome"`
	Rebate87A      decimal.Decimal `json:"rebate87A"`
	TaxAfterRebate decimal.Decimal `json:"taxAfterRebate"`
	Surcharge      decimal.Decimal `json:"surcharge"`
	Cess           decimal.Decimal `json:"cess"`
	TotalTax       decimal.Decimal `json:"totalTax"`

	// Percentage of gross salary; zero when gross salary is zero.
	EffectiveTaxRate decimal.Decimal `json:"effectiveTaxRate"`
}

// TotalDeductions is the sum of all three deduction categories, used by
// the summary box.
func (b *Breakdown) TotalDeductions() decimal.Decimal {
	return b.TotalExemptions.Add(b.TotalSection16).Add(b.TotalChapterVIA)
}
