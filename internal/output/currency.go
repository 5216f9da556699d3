package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

var lakh = decimal.NewFromInt(100000)

// FormatINR renders an amount in Indian rupee style with Indian digit
// grouping: the last three digits group together, then pairs
// (₹12,34,56,789). Amounts are rounded to whole rupees for display.
func FormatINR(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	digits := amount.Abs().Round(0).String()

	grouped := groupIndian(digits)
	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

// FormatINRASCII is FormatINR with an ASCII "Rs" prefix for destinations
// that only support Latin-1, such as the core PDF fonts.
func FormatINRASCII(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	grouped := groupIndian(amount.Abs().Round(0).String())
	if neg {
		return "-Rs " + grouped
	}
	return "Rs " + grouped
}

// FormatLakhs renders an amount in lakhs with two decimals (₹12.00L).
func FormatLakhs(amount decimal.Decimal) string {
	return "₹" + amount.Div(lakh).StringFixed(2) + "L"
}

// FormatPercent renders a rate with two decimals and a percent sign.
func FormatPercent(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}

// groupIndian inserts commas per the Indian numbering system.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
