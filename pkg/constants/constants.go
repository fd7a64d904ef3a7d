// Package constants provides shared constants for the eurolens application.
package constants

import "time"

// DateTimeLayout is the format used for observation dates in the datasets and
// in all rendered output.
const DateTimeLayout = "2006-01"

// Indicator constants
const (
	// InflationTargetRate is the ECB medium-term inflation target in percent.
	InflationTargetRate = "2.0"

	// MaxSelectedCountries is the maximum size of a comparison selection.
	MaxSelectedCountries = 6

	// InflationChangeOffset is how many observations back the "6-month change"
	// on the inflation page looks.
	InflationChangeOffset = 6

	// RateChangeOffset is how many records back the interest rate trend looks.
	RateChangeOffset = 1

	// PreviewWindow is the number of observations shown in overview previews.
	PreviewWindow = 8

	// RecentRatesWindow is the number of rows in the recent rate changes table.
	RecentRatesWindow = 6

	// RecentInflationWindow is the number of rows in the recent inflation table.
	RecentInflationWindow = 8
)

// Time range windows, in observations.
const (
	WindowOneYear    = 12
	WindowThreeYears = 36
	WindowAll        = 0
)

// Output format constants
const (
	OutputFormatJSON = "json"
	OutputFormatCSV  = "csv"
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "eurolens.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "eurolens.yaml.example"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "EUROLENS"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultCacheTTL is how long a rendered page stays cached.
	DefaultCacheTTL = 10 * time.Minute

	DefaultRequestsPerSecond = 10.0
	DefaultRequestBurst      = 20
)
