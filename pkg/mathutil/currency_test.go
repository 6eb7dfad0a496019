package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round down", 1.234, 1.23},
		{"Round up", 1.236, 1.24},
		{"Already rounded", 100.50, 100.50},
		{"Negative value", -1.236, -1.24},
		{"Zero", 0.0, 0.0},
		{"Machine error cleanup", 0.1 + 0.2, 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) = false, expected true (within a cent)")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
}

func TestIsNegative(t *testing.T) {
	if !IsNegative(-0.02) {
		t.Error("IsNegative(-0.02) = false, expected true")
	}
	if IsNegative(-0.005) {
		t.Error("IsNegative(-0.005) = true, expected false (within a cent)")
	}
	if IsNegative(5.0) {
		t.Error("IsNegative(5.0) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.00, 100.009, 0.01) {
		t.Error("WithinTolerance(100.00, 100.009, 0.01) = false, expected true")
	}
	if WithinTolerance(100.00, 100.02, 0.01) {
		t.Error("WithinTolerance(100.00, 100.02, 0.01) = true, expected false")
	}
}

func TestMin(t *testing.T) {
	if result := Min(3.5, 2.5); result != 2.5 {
		t.Errorf("Min(3.5, 2.5) = %v, expected 2.5", result)
	}
	if result := Min(-1.0, 1.0); result != -1.0 {
		t.Errorf("Min(-1.0, 1.0) = %v, expected -1.0", result)
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Quarter", 25, 100, 25.0},
		{"Over 100 percent", 150, 100, 150.0},
		{"Zero total", 25, 0, 0.0},
		{"Negative value", -5000, 100000, -5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Ten percent entry fee", 110000, 10, 11000},
		{"Owner favored entry fee", 100000, 23, 23000},
		{"Zero percent", 100000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}
