package payslip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero"},
		{-100, "Zero"},
		{0.99, "Zero"},
		{1, "One"},
		{19, "Nineteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{123, "One Hundred and Twenty Three"},
		{1000, "One Thousand"},
		{1500, "One Thousand Five Hundred"},
		{30775, "Thirty Thousand Seven Hundred and Seventy Five"},
		{100000, "One Lakh"},
		{150000, "One Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AmountInWords(tc.amount), "amount %v", tc.amount)
	}
}

func TestAmountInWordsFloorsFractions(t *testing.T) {
	assert.Equal(t, "Ninety Nine", AmountInWords(99.99))
}

func TestAmountInWordsHugeAmountsSaturate(t *testing.T) {
	// beyond int64 range; must render, never panic
	assert.NotEmpty(t, AmountInWords(1e19))
	assert.Equal(t, AmountInWords(float64(maxWordsAmount)), AmountInWords(1e19))
	assert.Equal(t, AmountInWords(1e300), AmountInWords(1e19))
}

func TestAmountInWordsNonFinite(t *testing.T) {
	assert.Equal(t, "Zero", AmountInWords(math.NaN()))
	assert.Equal(t, "Zero", AmountInWords(math.Inf(1)))
}

func TestAmountInWordsNoDoubleSpaces(t *testing.T) {
	for _, amount := range []float64{100000, 1000000, 10000005, 200300} {
		got := AmountInWords(amount)
		assert.NotContains(t, got, "  ", "amount %v", amount)
		assert.Equal(t, got, normalizeSpaces(got))
	}
}
