// Package constants provides shared constants for the training-roi application.
package constants

// Default scenario parameters. These match the documented reference case and
// are what the web UI and CLI present when no value is supplied.
const (
	DefaultParticipants         = 8
	DefaultCostPerPerson        = 3000.0
	DefaultMonthlyLeads         = 150
	DefaultCurrentCloseRate     = 12.0
	DefaultTargetCloseRate      = 20.0
	DefaultDealValue            = 12000.0
	DefaultMarginRate           = 25.0
	DefaultTrainingDays         = 3
	DefaultDailyOpportunityRate = 400.0
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerMonth is the day count used when converting monthly margin
	// into a payback period
	DaysPerMonth = 30

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Recommendation thresholds
const (
	// StrongROIThreshold is the ROI percentage above which a scenario gets
	// a strong recommendation
	StrongROIThreshold = 100.0

	// ModerateROIThreshold is the ROI percentage above which a scenario is
	// still considered worthwhile
	ModerateROIThreshold = 50.0

	// StrongPaybackDays is the payback period below which the investment is
	// considered fast-amortizing
	StrongPaybackDays = 90
)

// Sensitivity sweep bounds around the target close rate
const (
	SensitivityRatesBelow = 5
	SensitivityRatesAbove = 10
	SensitivityRateStep   = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the structured export format
	OutputFormatJSON = "json"

	// OutputFormatSlides is the slide-deck text export format
	OutputFormatSlides = "slides"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultHistoryLimit is the default number of analyses retained in history
	DefaultHistoryLimit = 50
)
