// Package constants provides shared constants for the lbo-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Input bounds enforced on requests. The JSON API accepts arbitrary bodies,
// so the term cap also bounds the schedule length (MaxTermYears x 12 rows).
const (
	// MaxPrincipal is the maximum accepted loan amount (1 billion)
	MaxPrincipal = 1_000_000_000.0

	// MaxAnnualRatePercent is the maximum accepted annual interest rate
	MaxAnnualRatePercent = 1000.0

	// MaxTermYears is the maximum accepted loan duration (50 years)
	MaxTermYears = 50

	// MaxValuationAmount is the maximum accepted cashflow/EBITDA or sale price
	MaxValuationAmount = 1_000_000_000.0
)

// Display mode constants
const (
	// DisplayModeTotals aggregates the schedule to yearly totals
	DisplayModeTotals = "totals"

	// DisplayModeMonthlyAverage aggregates the schedule to average monthly
	// amounts within each year
	DisplayModeMonthlyAverage = "monthly-average"
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

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size for the
	// JSON API (64 KB)
	DefaultMaxBodyBytes int64 = 64 * 1024
)

// Default deal parameters used when a config file supplies no overrides. These
// mirror the values the web form is seeded with.
const (
	// DefaultPrincipal is the default loan amount
	DefaultPrincipal = 700000.0

	// DefaultAnnualRatePercent is the default annual interest rate
	DefaultAnnualRatePercent = 3.5

	// DefaultTermYears is the default loan duration in years
	DefaultTermYears = 7

	// DefaultCashflow is the default annual cashflow / EBITDA
	DefaultCashflow = 300000.0

	// DefaultSalePrice is the default sale price used for the valuation multiple
	DefaultSalePrice = 1000000.0
)
