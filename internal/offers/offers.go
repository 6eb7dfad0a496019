// Package offers computes the three seller-finance offer scenarios and their
// buyability verdicts from a property configuration.
package offers

import (
	"fmt"

	"github.com/daisuke-ai/miana-calc/internal/config"
	"github.com/daisuke-ai/miana-calc/pkg/constants"
	"github.com/daisuke-ai/miana-calc/pkg/finance"
	"github.com/daisuke-ai/miana-calc/pkg/format"
	"github.com/daisuke-ai/miana-calc/pkg/mathutil"
	"go.uber.org/zap"
)

// Buyability reason strings for the threshold checks.
const (
	ReasonCashFlowBelowMinimum = "Cash flow below minimum threshold"
	ReasonEntryFeeExceedsMax   = "Entry fee exceeds maximum"
	ReasonDownPaymentNegative  = "Down payment is negative"
)

// OfferResult holds the computed figures and buyability verdict for one
// scenario.
type OfferResult struct {
	OfferType          string   `json:"offerType"`
	Buyable            bool     `json:"buyable"`
	Reasons            []string `json:"reasons,omitempty"`
	OfferPrice         float64  `json:"offerPrice"`
	RehabCost          float64  `json:"rehabCost"`
	EntryFeePercent    float64  `json:"entryFeePercent"`
	EntryFeeAmount     float64  `json:"entryFeeAmount"`
	LoanAmount         float64  `json:"loanAmount"`
	MonthlyPayment     float64  `json:"monthlyPayment"`
	MonthlyCashFlow    float64  `json:"monthlyCashFlow"`
	CashOnCashPercent  float64  `json:"cashOnCashPercent"`
	DownPayment        float64  `json:"downPayment"`
	DownPaymentPercent float64  `json:"downPaymentPercent"`
	AmortizationYears  float64  `json:"amortizationYears"`
	BalloonPeriodYears int      `json:"balloonPeriodYears"`
	PrincipalPaid      float64  `json:"principalPaid"`
	BalloonPayment     float64  `json:"balloonPayment"`
	AppreciationProfit float64  `json:"appreciationProfit"`
}

// RehabCost totals the repair estimate against the configured per-sqft rates.
func RehabCost(repairs config.RehabEstimate, rates config.RehabRates) float64 {
	return repairs.LightSqft*rates.Light +
		repairs.MediumSqft*rates.Medium +
		repairs.HeavySqft*rates.Heavy
}

// ComputeOffers derives the three offer scenarios from one configuration
// snapshot. All scenarios share the same property, rehab estimate, and
// assumptions; only the per-scenario constants differ. Either all three
// results are returned or a single error for the whole call.
func ComputeOffers(logger *zap.Logger, conf config.Configuration) ([]OfferResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := conf.ValidateInputs(); err != nil {
		return nil, err
	}

	rehabCost := RehabCost(conf.Repairs, conf.Assumptions.RehabRates)
	listed := conf.Property.ListedPrice

	// Scenario offer prices. The owner-favored price bakes the appreciation
	// the seller would otherwise wait for into the offer, less the buyer's
	// profit margin; the buyer-favored price is the listed price; balanced
	// splits the difference.
	ownerParams := conf.Offers.OwnerFavored
	ownerAppreciated := finance.AppreciatedValue(listed, conf.Assumptions.AppreciationPerYear, ownerParams.BalloonPeriodYears)
	ownerProfit := listed * ownerParams.AppreciationProfitRate
	ownerPrice := ownerAppreciated - ownerProfit

	buyerParams := conf.Offers.BuyerFavored
	buyerPrice := listed

	balancedParams := conf.Offers.Balanced
	balancedPrice := (ownerPrice + buyerPrice) / 2

	scenarios := []struct {
		name   string
		price  float64
		params config.OfferParams
	}{
		{constants.OfferTypeOwnerFavored, ownerPrice, ownerParams},
		{constants.OfferTypeBalanced, balancedPrice, balancedParams},
		{constants.OfferTypeBuyerFavored, buyerPrice, buyerParams},
	}

	results := make([]OfferResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, err := computeScenario(scenario.name, scenario.price, rehabCost, scenario.params, conf)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.name, err)
		}
		logger.Debug("computed offer scenario",
			zap.String("op", "offers.ComputeOffers"),
			zap.String("scenario", result.OfferType),
			zap.Bool("buyable", result.Buyable),
			zap.Float64("offerPrice", result.OfferPrice),
			zap.Float64("monthlyCashFlow", result.MonthlyCashFlow),
		)
		results = append(results, result)
	}

	return results, nil
}

func computeScenario(name string, offerPrice, rehabCost float64, params config.OfferParams, conf config.Configuration) (OfferResult, error) {
	assumptions := conf.Assumptions
	property := conf.Property

	basis := offerPrice + rehabCost
	entryFee := mathutil.ApplyPercentage(basis, params.EntryFeePercent)
	loanAmount := basis - entryFee

	monthlyPayment, err := finance.MonthlyPayment(loanAmount, assumptions.AnnualInterestRate, assumptions.TermMonths())
	if err != nil {
		return OfferResult{}, err
	}

	rent := property.MonthlyRent
	reserves := rent * (assumptions.VacancyRate + assumptions.CapexRate + assumptions.ManagementRate)
	monthlyCashFlow := rent - monthlyPayment - property.MonthlyPropertyTax - property.MonthlyInsurance -
		property.MonthlyHOAFee - property.MonthlyOtherFees - reserves

	closingCost := offerPrice * assumptions.ClosingCostRate
	downPayment := entryFee - rehabCost - closingCost - assumptions.AssignmentFee

	balloonMonths := params.BalloonPeriodYears * constants.MonthsPerYear
	balloonPayment, err := finance.RemainingPrincipal(loanAmount, assumptions.AnnualInterestRate, monthlyPayment, balloonMonths)
	if err != nil {
		return OfferResult{}, err
	}

	appreciated := finance.AppreciatedValue(property.ListedPrice, assumptions.AppreciationPerYear, params.BalloonPeriodYears)
	appreciationProfit := appreciated - offerPrice
	if params.AppreciationProfitRate > 0 {
		appreciationProfit = property.ListedPrice * params.AppreciationProfitRate
	}

	reasons := buyabilityReasons(offerPrice, rehabCost, entryFee, basis, monthlyCashFlow, downPayment, conf)

	return OfferResult{
		OfferType:          name,
		Buyable:            len(reasons) == 0,
		Reasons:            reasons,
		OfferPrice:         offerPrice,
		RehabCost:          rehabCost,
		EntryFeePercent:    params.EntryFeePercent,
		EntryFeeAmount:     entryFee,
		LoanAmount:         loanAmount,
		MonthlyPayment:     monthlyPayment,
		MonthlyCashFlow:    monthlyCashFlow,
		CashOnCashPercent:  finance.CashOnCash(monthlyCashFlow, entryFee),
		DownPayment:        downPayment,
		DownPaymentPercent: mathutil.CalculatePercentage(downPayment, offerPrice),
		AmortizationYears:  mathutil.Min(finance.AmortizationYears(loanAmount, monthlyPayment), assumptions.AmortizationYears),
		BalloonPeriodYears: params.BalloonPeriodYears,
		PrincipalPaid:      loanAmount - balloonPayment,
		BalloonPayment:     balloonPayment,
		AppreciationProfit: appreciationProfit,
	}, nil
}

// buyabilityReasons applies the threshold checks in a fixed order so that
// identical inputs always produce an identical reason list.
func buyabilityReasons(offerPrice, rehabCost, entryFee, basis, monthlyCashFlow, downPayment float64, conf config.Configuration) []string {
	var reasons []string

	caps := conf.Assumptions.RehabCaps
	maxRehabARV := caps.ARVCapRate * conf.Property.ARV
	if rehabCost > maxRehabARV {
		reasons = append(reasons, fmt.Sprintf("Rehab cost (%s) exceeds %.0f%% of ARV (%s)",
			format.Currency(rehabCost), caps.ARVCapRate*constants.PercentageMultiplier, format.Currency(maxRehabARV)))
	}
	maxRehabBudget := caps.BudgetCapRate * offerPrice
	if rehabCost > maxRehabBudget {
		reasons = append(reasons, fmt.Sprintf("Rehab cost (%s) exceeds %.0f%% of offer price (%s)",
			format.Currency(rehabCost), caps.BudgetCapRate*constants.PercentageMultiplier, format.Currency(maxRehabBudget)))
	}

	if monthlyCashFlow < conf.Thresholds.MinMonthlyCashFlow {
		reasons = append(reasons, ReasonCashFlowBelowMinimum)
	}
	maxEntryFee := mathutil.ApplyPercentage(basis, conf.Thresholds.MaxEntryFeePercent)
	if entryFee > maxEntryFee && !mathutil.WithinTolerance(entryFee, maxEntryFee, constants.CurrencyTolerance) {
		reasons = append(reasons, ReasonEntryFeeExceedsMax)
	}
	if mathutil.IsNegative(downPayment) {
		reasons = append(reasons, ReasonDownPaymentNegative)
	}

	return reasons
}
