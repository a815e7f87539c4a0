// Package constants provides shared constants for the mortgage-points application.
package constants

// DateTimeLayout is the YYYY-MM format used to label schedule months in
// config files and output.
const DateTimeLayout = "2006-01"

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

	// BalanceEpsilonDollars is the remaining-balance cutoff, in dollars, below
	// which an amortization schedule is considered fully paid. It absorbs
	// floating-point residue and guarantees termination.
	BalanceEpsilonDollars = 0.10
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum size for YAML request
	// bodies (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
