package validation

import (
	"errors"
	"testing"
)

func TestNonNegative(t *testing.T) {
	if err := NonNegative("listedPrice", 87000); err != nil {
		t.Errorf("NonNegative() = %v, expected nil", err)
	}
	if err := NonNegative("listedPrice", 0); err != nil {
		t.Errorf("NonNegative() with zero = %v, expected nil", err)
	}

	err := NonNegative("monthlyRent", -100)
	if err == nil {
		t.Fatal("NonNegative() with negative value expected error, got nil")
	}

	var invalidErr *InvalidInputError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("NonNegative() error = %v, expected *InvalidInputError", err)
	}
	if invalidErr.Field != "monthlyRent" {
		t.Errorf("InvalidInputError.Field = %s, expected monthlyRent", invalidErr.Field)
	}
	if invalidErr.Value != -100 {
		t.Errorf("InvalidInputError.Value = %v, expected -100", invalidErr.Value)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		expectError bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectError && err == nil {
				t.Errorf("ValidateOutputFormat(%q) = nil, expected error", tt.format)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateOutputFormat(%q) = %v, expected nil", tt.format, err)
			}
		})
	}
}
