package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricePerNight(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		totalAmount float64
		nights      int
		expected    float64
	}{
		{
			name:        "Even division",
			totalAmount: 15000,
			nights:      3,
			expected:    5000,
		},
		{
			name:        "Rounded to 2 decimals",
			totalAmount: 10000,
			nights:      3,
			expected:    3333.33,
		},
		{
			name:        "Single night",
			totalAmount: 2500.50,
			nights:      1,
			expected:    2500.50,
		},
		{
			name:        "Zero nights falls back to total",
			totalAmount: 2000,
			nights:      0,
			expected:    2000,
		},
		{
			name:        "Zero total",
			totalAmount: 0,
			nights:      5,
			expected:    0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, PricePerNight(tc.totalAmount, tc.nights))
		})
	}
}
