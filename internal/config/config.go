// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/daisuke-ai/miana-calc/pkg/constants"
	"github.com/daisuke-ai/miana-calc/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for miana-calc: the property under
// evaluation, its rehab estimate, and the assumption table driving the three
// offer scenarios. A Configuration is constructed once per calculation and
// never mutated afterwards.
type Configuration struct {
	Property    PropertyInput
	Repairs     RehabEstimate
	Assumptions Assumptions
	Offers      OfferScenarios
	Thresholds  Thresholds
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// PropertyInput describes the property being evaluated. All monetary fields
// are dollars; monthly fields are per month.
type PropertyInput struct {
	ListedPrice        float64
	MonthlyRent        float64
	MonthlyPropertyTax float64
	MonthlyInsurance   float64
	MonthlyHOAFee      float64
	MonthlyOtherFees   float64
	ARV                float64 // after-repair value
}

// RehabEstimate holds the square footage needing repair at each severity
// tier. Total rehab cost is tier sqft times the configured per-sqft rate.
type RehabEstimate struct {
	LightSqft  float64
	MediumSqft float64
	HeavySqft  float64
}

// RehabRates holds the per-square-foot repair cost for each severity tier.
type RehabRates struct {
	Light  float64
	Medium float64
	Heavy  float64
}

// RehabCaps bounds the rehab budget relative to ARV and offer price.
type RehabCaps struct {
	ARVCapRate    float64 // fraction of ARV
	BudgetCapRate float64 // fraction of offer price
}

// Assumptions is the table of conservative constants shared by all three
// scenarios. Rates named *Rate are fractions (0.02 = 2%); the interest rate
// is a percentage (6.0 = 6%).
type Assumptions struct {
	AnnualInterestRate  float64 // percent
	AmortizationYears   float64
	AppreciationPerYear float64 // fraction
	ClosingCostRate     float64 // fraction of offer price
	AssignmentFee       float64
	VacancyRate         float64 // fraction of rent
	CapexRate           float64 // fraction of rent
	ManagementRate      float64 // fraction of rent
	RehabRates          RehabRates
	RehabCaps           RehabCaps
}

// OfferParams holds the constants that differentiate one scenario from the
// others; the calculation steps are identical across scenarios.
type OfferParams struct {
	EntryFeePercent        float64
	BalloonPeriodYears     int
	AppreciationProfitRate float64 // fraction of listed price, owner-favored only
}

// OfferScenarios groups the per-scenario parameters.
type OfferScenarios struct {
	OwnerFavored OfferParams
	Balanced     OfferParams
	BuyerFavored OfferParams
}

// Thresholds holds the buyability cutoffs applied to every scenario.
type Thresholds struct {
	MinMonthlyCashFlow float64
	MaxEntryFeePercent float64 // of (offer price + rehab cost)
}

// DefaultConfiguration returns the conservative assumption table. Callers
// may replace any part wholesale before computing; the calculator never
// mutates it.
func DefaultConfiguration() Configuration {
	return Configuration{
		Assumptions: Assumptions{
			AnnualInterestRate:  0.0,
			AmortizationYears:   45.0,
			AppreciationPerYear: 0.045,
			ClosingCostRate:     0.02,
			AssignmentFee:       5000.0,
			VacancyRate:         0.0,
			CapexRate:           0.10,
			ManagementRate:      0.10,
			RehabRates: RehabRates{
				Light:  20.0,
				Medium: 35.0,
				Heavy:  60.0,
			},
			RehabCaps: RehabCaps{
				ARVCapRate:    0.15,
				BudgetCapRate: 0.35,
			},
		},
		Offers: OfferScenarios{
			OwnerFavored: OfferParams{
				EntryFeePercent:        23.0,
				BalloonPeriodYears:     5,
				AppreciationProfitRate: 0.15,
			},
			Balanced: OfferParams{
				EntryFeePercent:    19.0,
				BalloonPeriodYears: 6,
			},
			BuyerFavored: OfferParams{
				EntryFeePercent:    15.0,
				BalloonPeriodYears: 7,
			},
		},
		Thresholds: Thresholds{
			MinMonthlyCashFlow: 200.0,
			MaxEntryFeePercent: 23.0,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, layered over the default assumption table.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	configuration := DefaultConfiguration()
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// arbitrary reader, layered over the default assumption table.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	configuration := DefaultConfiguration()
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// TermMonths converts the configured amortization period to months.
func (a Assumptions) TermMonths() int {
	return int(a.AmortizationYears * constants.MonthsPerYear)
}

// Validate rejects negative property fields.
func (p PropertyInput) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"listedPrice", p.ListedPrice},
		{"monthlyRent", p.MonthlyRent},
		{"monthlyPropertyTax", p.MonthlyPropertyTax},
		{"monthlyInsurance", p.MonthlyInsurance},
		{"monthlyHOAFee", p.MonthlyHOAFee},
		{"monthlyOtherFees", p.MonthlyOtherFees},
		{"arv", p.ARV},
	}
	for _, field := range fields {
		if err := validation.NonNegative(field.name, field.value); err != nil {
			return err
		}
	}
	return nil
}

// Validate rejects negative square footage.
func (r RehabEstimate) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"lightSqft", r.LightSqft},
		{"mediumSqft", r.MediumSqft},
		{"heavySqft", r.HeavySqft},
	}
	for _, field := range fields {
		if err := validation.NonNegative(field.name, field.value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInputs performs field-level validation of the property and rehab
// records before any calculation is attempted.
func (c *Configuration) ValidateInputs() error {
	if err := c.Property.Validate(); err != nil {
		return err
	}
	return c.Repairs.Validate()
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for values that are legal but likely mistakes.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Property.MonthlyRent == 0 {
		warnings = append(warnings, "Property has no monthly rent - every scenario will show negative cash flow")
	}
	if c.Property.ARV == 0 && (c.Repairs.LightSqft > 0 || c.Repairs.MediumSqft > 0 || c.Repairs.HeavySqft > 0) {
		warnings = append(warnings, "Rehab is estimated but ARV is zero - rehab buyability caps will always fail")
	}
	if c.Assumptions.AnnualInterestRate > 15.0 {
		warnings = append(warnings, fmt.Sprintf("Interest rate %.2f%% is unusually high for seller financing", c.Assumptions.AnnualInterestRate))
	}
	if c.Assumptions.AmortizationYears <= 0 {
		warnings = append(warnings, "Amortization period is not positive - calculations will fail")
	}

	for _, scenario := range []struct {
		name   string
		params OfferParams
	}{
		{constants.OfferTypeOwnerFavored, c.Offers.OwnerFavored},
		{constants.OfferTypeBalanced, c.Offers.Balanced},
		{constants.OfferTypeBuyerFavored, c.Offers.BuyerFavored},
	} {
		if scenario.params.EntryFeePercent <= 0 || scenario.params.EntryFeePercent > 100 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' has entry fee percent %.2f outside (0, 100]",
				scenario.name, scenario.params.EntryFeePercent))
		}
		if scenario.params.EntryFeePercent > c.Thresholds.MaxEntryFeePercent {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' entry fee percent %.2f exceeds the maximum entry fee threshold %.2f - it can never be buyable",
				scenario.name, scenario.params.EntryFeePercent, c.Thresholds.MaxEntryFeePercent))
		}
		if float64(scenario.params.BalloonPeriodYears) > c.Assumptions.AmortizationYears {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' balloon period %d years exceeds the amortization period",
				scenario.name, scenario.params.BalloonPeriodYears))
		}
	}

	return warnings
}
