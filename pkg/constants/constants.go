// Package constants provides shared constants for the rail-compare application.
package constants

import "time"

// Simulated settlement durations. The demo compresses real-world settlement
// windows into seconds so both rails can be watched side by side.
const (
	// SEPAInstantDuration approximates sub-minute SCT Inst settlement (~2s demo)
	SEPAInstantDuration = 2 * time.Second

	// SEPAStandardDuration approximates a one-business-day SCT (~20s demo)
	SEPAStandardDuration = 20 * time.Second

	// SWIFTDuration approximates a two-day correspondent transfer (~40s demo)
	SWIFTDuration = 40 * time.Second

	// ProgressTickInterval is how often simulated progress is polled
	ProgressTickInterval = 100 * time.Millisecond
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DefaultStartingBalance is the display-only account balance at startup (EUR)
	DefaultStartingBalance = 2000.0
)

// SEPA fee schedule (EUR), indicative
const (
	// MicroFeeLimit is the amount ceiling for the first-daily-transfer micro fee
	MicroFeeLimit = 200.0

	// MicroFee applies to the first transfer of the day up to MicroFeeLimit
	MicroFee = 0.02

	// TierLimit is the amount boundary between the low and high fee tiers
	TierLimit = 20000.0

	// ElectronicFeeLow and ElectronicFeeHigh are the e-banking channel fees
	ElectronicFeeLow  = 1.99
	ElectronicFeeHigh = 25.0

	// CounterFeeLow and CounterFeeHigh are the in-branch channel fees
	CounterFeeLow  = 3.99
	CounterFeeHigh = 50.0
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

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)

// Scheme defaults
const (
	// DefaultHomeCountry is the payer's home market country code
	DefaultHomeCountry = "ME"

	// DefaultGoLiveDate is the home market's credit-transfer go-live date
	DefaultGoLiveDate = "2025-10-05"

	// GoLiveDateLayout is the format for the go-live date in config files
	GoLiveDateLayout = "2006-01-02"
)
