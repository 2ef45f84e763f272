// Package currencyutils provides amount parsing and formatting shared by the
// ingestor and the report writers.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£¥₣₹₺₽₩฿₫₴₸₪\s]|(?i)\b(INR|USD|EUR|GBP|CHF|RS)\b`)

// ParseAmount parses a string representation of an amount into a decimal
// value. Currency symbols, currency codes and thousands separators are
// stripped first, so "₹1,234.56", "Rs 1234.56" and "1234.56" all parse to the
// same value.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts currency string formats to a plain decimal
// string. Handles patterns like "₹1,234.56", "$ 1234.56", "1'234.56".
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")

	// Commas and apostrophes are thousands separators in every input this
	// engine sees; the decimal separator is always a dot.
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return strings.TrimSpace(amountStr)
}

// FormatAmount formats a decimal amount with two decimal places and an
// optional currency tag, e.g. "INR 1234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}
	return currency + " " + formatted
}
