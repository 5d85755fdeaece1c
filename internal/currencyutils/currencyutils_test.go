package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Simple decimal", "123.45", decimal.NewFromFloat(123.45), false},
		{"Negative decimal", "-123.45", decimal.NewFromFloat(-123.45), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"With comma decimal separator", "123,45", decimal.NewFromFloat(123.45), false},
		{"With thousand separator (comma)", "1,234.56", decimal.NewFromFloat(1234.56), false},
		{"With thousand separator only", "1,234", decimal.NewFromInt(1234), false},
		{"Multiple thousand separators", "1,234,567.89", decimal.NewFromFloat(1234567.89), false},
		{"With thousand separator (apostrophe)", "1'234.56", decimal.NewFromFloat(1234.56), false},
		{"European format", "1.234,56", decimal.NewFromFloat(1234.56), false},
		{"With dollar symbol", "$2,500.00", decimal.NewFromInt(2500), false},
		{"With euro symbol", "€123.45", decimal.NewFromFloat(123.45), false},
		{"With pound symbol", "£123.45", decimal.NewFromFloat(123.45), false},
		{"With yen symbol", "¥1,234", decimal.NewFromInt(1234), false},
		{"With currency code", "CHF 123.45", decimal.NewFromFloat(123.45), false},
		{"Negative with symbol", "-$45.00", decimal.NewFromInt(-45), false},
		{"With spaces", "  123.45  ", decimal.NewFromFloat(123.45), false},
		{"Empty string", "", decimal.Zero, true},
		{"Whitespace only", "   ", decimal.Zero, true},
		{"Non-numeric", "abc", decimal.Zero, true},
		{"Malformed decimal", "123.45.67", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple decimal", "123.45", "123.45"},
		{"US thousands", "1,234.56", "1234.56"},
		{"US thousands without decimals", "1,234", "1234"},
		{"European format", "1.234,56", "1234.56"},
		{"European multiple separators", "1.234.567,89", "1234567.89"},
		{"Apostrophe thousands", "1'234.56", "1234.56"},
		{"Dollar and thousands", "$2,500.00", "2500.00"},
		{"Euro and European format", "€1.234,56", "1234.56"},
		{"Currency code with space", "CHF 123.45", "123.45"},
		{"Comma decimal", "1234,56", "1234.56"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.50", FormatAmount(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "-45.00", FormatAmount(decimal.NewFromInt(-45)))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "2359.40", Round2(decimal.RequireFromString("2359.399")).StringFixed(2))
	assert.Equal(t, "0.00", Round2(decimal.Zero).StringFixed(2))
}
