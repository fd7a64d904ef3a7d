// Package state models the per-page UI state of the dashboard: small
// enumerated modes plus the comparison country selection. Transitions are pure
// functions of (state, event); nothing here mutates a state in place.
package state

import (
	"github.com/iwvelando/eurolens/pkg/constants"
)

// TimeRange selects how much interest rate history is charted.
type TimeRange string

const (
	RangeOneYear    TimeRange = "1y"
	RangeThreeYears TimeRange = "3y"
	RangeAll        TimeRange = "all"
)

// TimeRanges lists the ranges in control order.
func TimeRanges() []TimeRange {
	return []TimeRange{RangeOneYear, RangeThreeYears, RangeAll}
}

// ParseTimeRange returns the range for value, or false when it is not one of
// the enumerated ranges.
func ParseTimeRange(value string) (TimeRange, bool) {
	for _, r := range TimeRanges() {
		if string(r) == value {
			return r, true
		}
	}
	return "", false
}

// Window returns the number of records the range covers; 0 means all.
func (r TimeRange) Window() int {
	switch r {
	case RangeOneYear:
		return constants.WindowOneYear
	case RangeThreeYears:
		return constants.WindowThreeYears
	}
	return constants.WindowAll
}

// Label is the control caption.
func (r TimeRange) Label() string {
	switch r {
	case RangeOneYear:
		return "1 Year"
	case RangeThreeYears:
		return "3 Years"
	}
	return "All Time"
}

// InflationView selects the inflation page tab.
type InflationView string

const (
	ViewTimeSeries InflationView = "timeseries"
	ViewCountries  InflationView = "countries"
)

// InflationViews lists the views in control order.
func InflationViews() []InflationView {
	return []InflationView{ViewTimeSeries, ViewCountries}
}

// ParseInflationView returns the view for value, or false when unknown.
func ParseInflationView(value string) (InflationView, bool) {
	for _, v := range InflationViews() {
		if string(v) == value {
			return v, true
		}
	}
	return "", false
}

// Label is the tab caption.
func (v InflationView) Label() string {
	if v == ViewCountries {
		return "By Country"
	}
	return "Time Series"
}

// Metric selects the indicator compared across countries.
type Metric string

const (
	MetricGDP          Metric = "gdp"
	MetricInflation    Metric = "inflation"
	MetricUnemployment Metric = "unemployment"
)

// Metrics lists the metrics in control order.
func Metrics() []Metric {
	return []Metric{MetricGDP, MetricInflation, MetricUnemployment}
}

// ParseMetric returns the metric for value, or false when unknown.
func ParseMetric(value string) (Metric, bool) {
	for _, m := range Metrics() {
		if string(m) == value {
			return m, true
		}
	}
	return "", false
}

// Label is the button caption.
func (m Metric) Label() string {
	switch m {
	case MetricInflation:
		return "Inflation"
	case MetricUnemployment:
		return "Unemployment"
	}
	return "GDP Growth"
}
