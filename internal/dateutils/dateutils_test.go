package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{"ISO format", "2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"ISO with time", "2024-01-05 13:30:00", time.Date(2024, 1, 5, 13, 30, 0, 0, time.UTC), false},
		{"US slash format", "01/05/2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"US slash without zero padding", "1/5/2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"European dotted format", "05.01.2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"Month name", "Jan 5, 2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"Day month-name year", "5 January 2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"Surrounding whitespace", "  2024-01-05  ", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"Garbage", "bad-date", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
		{"Digits only", "20240105x", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseDate(tc.input)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "expected %s, got %s", tc.expected, result)
			}
		})
	}
}

// Slash dates are locale-ambiguous; this application pins them to
// month/day/year.
func TestParseDateAmbiguousSlashIsMonthFirst(t *testing.T) {
	result, err := ParseDate("01/05/2024")
	require.NoError(t, err)
	assert.Equal(t, time.January, result.Month())
	assert.Equal(t, 5, result.Day())
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2024-01-05", ToISODate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", ToISODate(time.Time{}))
}

func TestMinMax(t *testing.T) {
	d1 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

	min, max := MinMax([]time.Time{d2, d3, d1})
	assert.Equal(t, d1, min)
	assert.Equal(t, d3, max)

	min, max = MinMax([]time.Time{{}, d2, {}})
	assert.Equal(t, d2, min)
	assert.Equal(t, d2, max)

	min, max = MinMax(nil)
	assert.True(t, min.IsZero())
	assert.True(t, max.IsZero())
}
