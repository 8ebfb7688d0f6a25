package payslip

import (
	"math"
	"strings"
)

var units = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
var teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// maxWordsAmount caps the renderable figure; converting a float beyond
// int64 range would otherwise wrap negative.
const maxWordsAmount = int64(1) << 62

// AmountInWords converts an amount into English words using the Indian
// numbering system (Crore, Lakh, Thousand, Hundred). Fractions are floored;
// paise are never rendered. Negative or non-finite amounts map to "Zero",
// amounts beyond the renderable range saturate at the cap.
// Output is space-normalized so an empty remainder leaves no trailing blank.
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 1 {
		return "Zero"
	}
	f := math.Floor(amount)
	if f >= float64(maxWordsAmount) {
		f = float64(maxWordsAmount)
	}
	return normalizeSpaces(intToWords(int64(f)))
}

func intToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n >= 10000000 {
		return withRemainder(intToWords(n/10000000)+" Crore", n%10000000)
	}
	if n >= 100000 {
		return withRemainder(intToWords(n/100000)+" Lakh", n%100000)
	}
	if n >= 1000 {
		return withRemainder(intToWords(n/1000)+" Thousand", n%1000)
	}
	if n >= 100 {
		s := units[n/100] + " Hundred"
		if rem := n % 100; rem > 0 {
			// "and" prefixes only a trailing sub-hundred remainder
			s += " and " + intToWords(rem)
		}
		return s
	}
	if n < 10 {
		return units[n]
	}
	if n < 20 {
		return teens[n-10]
	}
	s := tens[n/10]
	if unit := n % 10; unit > 0 {
		s += " " + units[unit]
	}
	return s
}

func withRemainder(prefix string, rem int64) string {
	if rem == 0 {
		return prefix
	}
	return prefix + " " + intToWords(rem)
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
