// Package currencyutils provides common currency and decimal operations used
// throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// symbolRe strips currency symbols, currency codes and whitespace before
// decimal parsing. The set covers the symbols bank exports actually use
// ($, €, £, ¥ at minimum) plus the wider set seen in Swiss statements.
var symbolRe = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]|CHF|USD|EUR|GBP`)

// ParseAmount parses a textual amount into a decimal value after stripping
// currency symbols and thousands separators. Formats like "$1,234.56",
// "€1.234,56", "CHF 1'234.56" and "1 234,56" are all accepted.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount string")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount converts the various currency string formats to one that
// decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolRe.ReplaceAllString(amountStr, "")

	// Apostrophes only ever appear as thousands separators (1'234.56).
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56): dot groups thousands.
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US format (1,234.56): comma groups thousands.
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts[len(parts)-1]) <= 2 && len(parts) == 2 {
			// Comma used as decimal separator (1234,56).
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousands separator (1,234 or 1,234,567).
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// FormatAmount formats a decimal to two decimal places for display.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// Round2 rounds a decimal to two decimal places. Summaries round at output
// time only; accumulation stays exact.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
