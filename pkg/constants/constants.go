// Package constants provides shared constants for the refi-advisor application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Mortgage insurance constants
const (
	// MortgageInsuranceLTVThreshold is the loan-to-value percentage above which
	// private mortgage insurance applies.
	MortgageInsuranceLTVThreshold = 80.0

	// MortgageInsuranceAnnualRate is the flat annual PMI rate applied to the
	// loan balance when LTV exceeds the threshold. Real PMI is tiered; this is
	// the single-rate approximation used throughout.
	MortgageInsuranceAnnualRate = 0.005
)

// Simulation bounds. MaxSimulationMonths is a safety ceiling that guarantees
// the month-by-month paydown loops terminate on pathological inputs; it is not
// a business threshold.
const (
	// MaxSimulationMonths caps any paydown simulation at 30 years.
	MaxSimulationMonths = 360
)

// Balance transfer post-promo heuristics. After a promotional period ends the
// card reverts to a standard APR; we approximate that as slightly below the
// cardholder's current APR, floored.
const (
	// PostPromoRateDiscount is subtracted from the current APR to estimate the
	// post-promo APR.
	PostPromoRateDiscount = 2.0

	// PostPromoFloorAPR is the minimum post-promo APR assumed.
	PostPromoFloorAPR = 15.0
)

// Car loan refinance decision thresholds (dollars of net savings, percentage
// points of rate reduction).
const (
	CarHighSavings    = 500.0
	CarHighRateDrop   = 1.0
	CarMediumSavings  = 200.0
	CarMediumRateDrop = 0.5
	CarMinRateDrop    = 0.5
)

// Personal loan refinance decision thresholds. Personal loans carry higher
// rates than secured loans, so a larger rate drop is required.
const (
	PersonalHighSavings    = 300.0
	PersonalHighRateDrop   = 2.0
	PersonalMediumSavings  = 150.0
	PersonalMediumRateDrop = 1.0
	PersonalMinRateDrop    = 1.0
)

// Mortgage refinance decision thresholds. Closing costs dominate mortgage
// refinances, so the savings bars and break-even windows are stricter.
const (
	MortgageHighSavings      = 5000.0
	MortgageHighRateDrop     = 0.75
	MortgageHighBreakEven    = 36
	MortgageMediumSavings    = 2000.0
	MortgageMediumRateDrop   = 0.5
	MortgageMediumBreakEven  = 48
	MortgageMaxBreakEven     = 60
	MortgageMinRateDrop      = 0.5
	MortgageTermExtensionPad = 12
)

// Balance transfer decision thresholds.
const (
	TransferHighSavings     = 100.0
	TransferMediumSavings   = 200.0
	TransferLowSavings      = 50.0
	TransferHighFeePercent  = 5.0
	TransferGoodPromoMonths = 12
)

// Server configuration defaults
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultRateLimitPerMinute is the default number of calculation requests
	// allowed per client per minute.
	DefaultRateLimitPerMinute = 30
)

// Site identity defaults. These back the JSON-RPC initialize response and the
// service descriptor; deployments override them in configuration.
const (
	DefaultSiteName    = "refi-advisor"
	DefaultSiteVersion = "1.0.0"
	DefaultSiteBaseURL = "https://shouldirefinancemy.com"
)
