package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name       string
		amountStr  string
		expectedOk bool
		expected   string
	}{
		{"Plain decimal", "1234.56", true, "1234.56"},
		{"Integer", "450", true, "450"},
		{"Rupee symbol", "₹1,234.56", true, "1234.56"},
		{"Currency code prefix", "INR 1234.56", true, "1234.56"},
		{"Rs prefix", "Rs 450.50", true, "450.5"},
		{"Dollar with space", "$ 99.99", true, "99.99"},
		{"Swiss thousands separator", "1'234.56", true, "1234.56"},
		{"Negative amount", "-100", true, "-100"},
		{"Empty string", "", false, ""},
		{"Whitespace only", "   ", false, ""},
		{"Not a number", "abc", false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.amountStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, amount.String())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  string
	}{
		{"Symbol and commas", "₹1,234.56", "1234.56"},
		{"Code and spaces", "USD 2 500.00", "2500.00"},
		{"Apostrophes", "1'000'000", "1000000"},
		{"Already plain", "42.00", "42.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.amountStr))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)

	assert.Equal(t, "1234.50", FormatAmount(amount, ""))
	assert.Equal(t, "INR 1234.50", FormatAmount(amount, "INR"))
}
