// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/daisuke-ai/miana-calc/pkg/constants"
)

// InvalidInputError indicates that a numeric input field failed validation
// before any calculation was attempted.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%.2f: %s", e.Field, e.Value, e.Reason)
}

// NonNegative returns an InvalidInputError when value is negative.
func NonNegative(field string, value float64) error {
	if value < 0 {
		return &InvalidInputError{
			Field:  field,
			Value:  value,
			Reason: "must not be negative",
		}
	}
	return nil
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
