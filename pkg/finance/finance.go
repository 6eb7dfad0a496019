// Package finance provides the loan and return arithmetic used by the offer
// calculator.
package finance

import (
	"fmt"
	"math"

	"github.com/daisuke-ai/miana-calc/pkg/constants"
)

// CalculationError indicates that arithmetic produced an undefined result,
// such as an amortization over a negative interest rate.
type CalculationError struct {
	Step   string
	Reason string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed at %s: %s", e.Step, e.Reason)
}

// MonthlyPayment calculates the monthly payment for a loan using the standard
// fixed-rate amortization formula. A zero interest rate amortizes
// straight-line (principal divided by term).
func MonthlyPayment(principal, annualInterestRate float64, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, &CalculationError{
			Step:   "amortization",
			Reason: fmt.Sprintf("loan term must be positive, got %d months", termMonths),
		}
	}
	if annualInterestRate < 0 {
		return 0, &CalculationError{
			Step:   "amortization",
			Reason: fmt.Sprintf("interest rate must not be negative, got %.4f", annualInterestRate),
		}
	}

	if annualInterestRate == 0 {
		return principal / float64(termMonths), nil
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	if discountFactor == 0 {
		return 0, &CalculationError{
			Step:   "amortization",
			Reason: "discount factor is zero",
		}
	}
	return principal * periodicInterestRate / discountFactor, nil
}

// RemainingPrincipal calculates the loan balance after a number of monthly
// payments have been made, floored at zero.
func RemainingPrincipal(principal, annualInterestRate, monthlyPayment float64, afterMonths int) (float64, error) {
	if afterMonths < 0 {
		return 0, &CalculationError{
			Step:   "balloon",
			Reason: fmt.Sprintf("months elapsed must not be negative, got %d", afterMonths),
		}
	}
	if annualInterestRate < 0 {
		return 0, &CalculationError{
			Step:   "balloon",
			Reason: fmt.Sprintf("interest rate must not be negative, got %.4f", annualInterestRate),
		}
	}

	if annualInterestRate == 0 {
		return math.Max(principal-monthlyPayment*float64(afterMonths), 0), nil
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(afterMonths))
	balance := principal*power - monthlyPayment*(power-1.00)/periodicInterestRate
	return math.Max(balance, 0), nil
}

// CashOnCash returns the annualized cash-on-cash return as a percentage of
// the entry fee. A non-positive entry fee yields zero.
func CashOnCash(monthlyCashFlow, entryFee float64) float64 {
	if entryFee <= 0 {
		return 0
	}
	return monthlyCashFlow * constants.MonthsPerYear / entryFee * constants.PercentageMultiplier
}

// AppreciatedValue compounds a base price at an annual appreciation rate
// (expressed as a fraction, e.g. 0.045) over a number of years.
func AppreciatedValue(basePrice, annualRate float64, years int) float64 {
	return basePrice * math.Pow(1+annualRate, float64(years))
}

// AmortizationYears returns how many years of a given monthly payment it
// takes to retire a loan, ignoring interest. Non-positive payments yield
// +Inf.
func AmortizationYears(loanAmount, monthlyPayment float64) float64 {
	if monthlyPayment <= 0 {
		return math.Inf(1)
	}
	return loanAmount / (monthlyPayment * constants.MonthsPerYear)
}
