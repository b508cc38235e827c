// Package constants provides shared constants for the loan-prepay application.
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

	// PrincipalSumTolerance is the relative tolerance allowed between the
	// financed principal and the sum of principal components in a schedule
	PrincipalSumTolerance = 1e-6
)

// Term search constants
const (
	// MinTermMonths is the shortest term considered by the minimal-term search
	MinTermMonths = 1

	// MaxTermMonths caps the minimal-term search at roughly 83 years; a target
	// payment not satisfiable within this range is reported as an error
	MaxTermMonths = 1000
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

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size for
	// calculation requests (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)
