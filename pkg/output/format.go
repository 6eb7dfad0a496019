// Package output provides utilities for formatting and displaying offer
// results.
package output

import (
	"fmt"
	"strings"

	"github.com/daisuke-ai/miana-calc/internal/offers"
	"github.com/daisuke-ai/miana-calc/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []offers.OfferResult) {
	p := message.NewPrinter(language.English)
	for n, result := range results {
		fmt.Printf("--- %s ---\n", result.OfferType)
		if result.Buyable {
			fmt.Printf("Status: Buyable\n")
		} else {
			fmt.Printf("Status: Unbuyable\n")
			for _, reason := range result.Reasons {
				fmt.Printf("Reason: %s\n", reason)
			}
		}
		_, _ = p.Printf("Offer Price:         %s\n", format.Currency(result.OfferPrice))
		_, _ = p.Printf("Rehab Cost:          %s\n", format.Currency(result.RehabCost))
		_, _ = p.Printf("Entry Fee:           %s (%s)\n", format.Currency(result.EntryFeeAmount), format.Percent(result.EntryFeePercent))
		_, _ = p.Printf("Loan Amount:         %s\n", format.Currency(result.LoanAmount))
		_, _ = p.Printf("Monthly Payment:     %s\n", format.Currency(result.MonthlyPayment))
		_, _ = p.Printf("Monthly Cash Flow:   %s\n", format.Currency(result.MonthlyCashFlow))
		_, _ = p.Printf("Cash on Cash:        %s\n", format.Percent(result.CashOnCashPercent))
		_, _ = p.Printf("Down Payment:        %s (%s)\n", format.Currency(result.DownPayment), format.Percent(result.DownPaymentPercent))
		_, _ = p.Printf("Amortization:        %.2f years\n", result.AmortizationYears)
		_, _ = p.Printf("Balloon Term:        %d years\n", result.BalloonPeriodYears)
		_, _ = p.Printf("Principal Paid:      %s\n", format.Currency(result.PrincipalPaid))
		_, _ = p.Printf("Balloon Payment:     %s\n", format.Currency(result.BalloonPayment))
		_, _ = p.Printf("Appreciation Profit: %s\n", format.Currency(result.AppreciationProfit))
		if n != len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []offers.OfferResult) {
	fmt.Print(CsvString(results))
}

// CsvString renders the results in comma-separated value format.
func CsvString(results []offers.OfferResult) string {
	var builder strings.Builder
	builder.WriteString(`"offer type","buyable","reasons","offer price","rehab cost","entry fee percent","entry fee","loan amount","monthly payment","monthly cash flow","cash on cash percent","down payment","amortization years","balloon years","balloon payment"`)
	builder.WriteString("\n")
	for _, result := range results {
		builder.WriteString(fmt.Sprintf(`"%s","%t","%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%d","%.2f"`,
			result.OfferType,
			result.Buyable,
			strings.Join(result.Reasons, "; "),
			result.OfferPrice,
			result.RehabCost,
			result.EntryFeePercent,
			result.EntryFeeAmount,
			result.LoanAmount,
			result.MonthlyPayment,
			result.MonthlyCashFlow,
			result.CashOnCashPercent,
			result.DownPayment,
			result.AmortizationYears,
			result.BalloonPeriodYears,
			result.BalloonPayment,
		))
		builder.WriteString("\n")
	}
	return builder.String()
}
