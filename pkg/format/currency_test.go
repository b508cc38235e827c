package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "Grouped thousands",
			amount:   1234.5,
			expected: "$1,234.50",
		},
		{
			name:     "Negative amount",
			amount:   -1234.56,
			expected: "-$1,234.56",
		},
		{
			name:     "Zero",
			amount:   0,
			expected: "$0.00",
		},
		{
			name:     "Large amount",
			amount:   500000,
			expected: "$500,000.00",
		},
		{
			name:     "Small amount without grouping",
			amount:   42.1,
			expected: "$42.10",
		},
		{
			name:     "Half cent rounds up",
			amount:   2.005,
			expected: "$2.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "Positive",
			amount:   9876543.21,
			expected: "9,876,543.21",
		},
		{
			name:     "Negative",
			amount:   -12.5,
			expected: "-12.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericCurrency(tt.amount); got != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{
			name:     "Typical rate",
			value:    3.85,
			expected: "3.85%",
		},
		{
			name:     "Zero",
			value:    0,
			expected: "0.00%",
		},
		{
			name:     "Rounded to two decimals",
			value:    12.345,
			expected: "12.35%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.value); got != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.value, got, tt.expected)
			}
		})
	}
}
