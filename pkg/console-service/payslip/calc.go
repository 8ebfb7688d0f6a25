package payslip

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a display amount to a number. Thousands separators
// are stripped; empty or malformed strings parse to 0, never error.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// TotalEarnings sums the earnings group.
func TotalEarnings(r Record) float64 {
	return ParseAmount(r.Earnings.Basic) +
		ParseAmount(r.Earnings.HRA) +
		ParseAmount(r.Earnings.DA) +
		ParseAmount(r.Earnings.TA)
}

// WelfareSubtotal and TaxSubtotal stay separate because the slip reports
// them in distinct sections.
func WelfareSubtotal(r Record) float64 {
	return ParseAmount(r.Deductions.LWF)
}

func TaxSubtotal(r Record) float64 {
	return ParseAmount(r.Deductions.ProfessionalTax)
}

// NetPay may go negative when deductions exceed earnings; it is reported
// as-is, not clamped.
func NetPay(r Record) float64 {
	return TotalEarnings(r) - WelfareSubtotal(r) - TaxSubtotal(r)
}

// Summarize computes every figure the slip shows.
func Summarize(r Record) Summary {
	net := NetPay(r)
	return Summary{
		TotalEarnings:   TotalEarnings(r),
		WelfareSubtotal: WelfareSubtotal(r),
		TaxSubtotal:     TaxSubtotal(r),
		NetPay:          net,
		NetPayWords:     AmountInWords(net),
	}
}

// FormatCurrency renders with two decimals and Indian-locale grouping,
// e.g. 1234567 -> 12,34,567.00.
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	whole := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart := whole[:len(whole)-3]
	frac := whole[len(whole)-2:]

	grouped := groupIndian(intPart)
	if neg {
		return "-" + grouped + "." + frac
	}
	return grouped + "." + frac
}

// groupIndian - last three digits, then pairs: 1234567 -> 12,34,567
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
