package payslip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmountToleratesSeparatorsAndGarbage(t *testing.T) {
	assert.Equal(t, 1000.0, ParseAmount("1,000"))
	assert.Equal(t, 1234567.89, ParseAmount("12,34,567.89"))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("NaN"))
	assert.Equal(t, 500.0, ParseAmount(" 500 "))
}

func TestTotalEarningsMixedFields(t *testing.T) {
	r := Record{Earnings: Earnings{Basic: "1,000", HRA: "", DA: "500", TA: "abc"}}
	assert.Equal(t, 1500.0, TotalEarnings(r))
}

func TestNetPayNotClamped(t *testing.T) {
	r := Record{
		Earnings:   Earnings{Basic: "100"},
		Deductions: Deductions{LWF: "100", ProfessionalTax: "50"},
	}
	assert.Equal(t, -50.0, NetPay(r))

	s := Summarize(r)
	assert.Equal(t, -50.0, s.NetPay)
	assert.Equal(t, "Zero", s.NetPayWords)
}

func TestSummarizeKeepsSubtotalsSeparate(t *testing.T) {
	r := Record{
		Earnings:   Earnings{Basic: "20,000", HRA: "8,000", DA: "2,000", TA: "1,000"},
		Deductions: Deductions{LWF: "25", ProfessionalTax: "200"},
	}
	s := Summarize(r)
	assert.Equal(t, 31000.0, s.TotalEarnings)
	assert.Equal(t, 25.0, s.WelfareSubtotal)
	assert.Equal(t, 200.0, s.TaxSubtotal)
	assert.Equal(t, 30775.0, s.NetPay)
	assert.Equal(t, "Thirty Thousand Seven Hundred and Seventy Five", s.NetPayWords)
}

func TestSummarizeHugeEarningsNeverPanics(t *testing.T) {
	r := Record{Earnings: Earnings{Basic: "99999999999999999999"}}
	s := Summarize(r)
	assert.Positive(t, s.NetPay)
	assert.NotEmpty(t, s.NetPayWords)
	assert.NotEqual(t, "Zero", s.NetPayWords)
}

func TestFormatCurrencyIndianGrouping(t *testing.T) {
	assert.Equal(t, "12,34,567.00", FormatCurrency(1234567))
	assert.Equal(t, "1,00,000.00", FormatCurrency(100000))
	assert.Equal(t, "1,500.00", FormatCurrency(1500))
	assert.Equal(t, "999.00", FormatCurrency(999))
	assert.Equal(t, "0.00", FormatCurrency(0))
	assert.Equal(t, "-50.00", FormatCurrency(-50))
	assert.Equal(t, "30,775.50", FormatCurrency(30775.5))
}
