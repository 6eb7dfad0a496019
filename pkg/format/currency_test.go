package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 25.5, "$25.50"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Six figures", 108417.83, "$108,417.83"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
		{"Rounds to cents", 99.999, "$100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Currency(tt.amount); result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
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
		{"Whole percent", 23.0, "23.00%"},
		{"Fractional percent", 10.125, "10.12%"},
		{"Negative percent", -5.0, "-5.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Percent(tt.value); result != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.value, result, tt.expected)
			}
		})
	}
}
