package state

import (
	"net/url"
	"strings"

	"github.com/iwvelando/eurolens/internal/dataset"
)

// Query parameter names carrying page state.
const (
	ParamRange   = "range"
	ParamView    = "view"
	ParamMetric  = "metric"
	ParamCountry = "country"
)

// InterestRates is the state of the interest rates page.
type InterestRates struct {
	Range TimeRange `json:"range"`
}

// DefaultInterestRates is the state the interest rates page starts in.
func DefaultInterestRates() InterestRates {
	return InterestRates{Range: RangeThreeYears}
}

// SelectRange is the event of picking a time range tab.
type SelectRange struct{ Range TimeRange }

// Apply returns the state after e.
func (s InterestRates) Apply(e SelectRange) InterestRates {
	s.Range = e.Range
	return s
}

// Query encodes the state.
func (s InterestRates) Query() url.Values {
	return url.Values{ParamRange: {string(s.Range)}}
}

// ParseInterestRates decodes the state, defaulting unknown values.
func ParseInterestRates(q url.Values) InterestRates {
	s := DefaultInterestRates()
	if r, ok := ParseTimeRange(q.Get(ParamRange)); ok {
		s.Range = r
	}
	return s
}

// Inflation is the state of the inflation page.
type Inflation struct {
	View InflationView `json:"view"`
}

// DefaultInflation is the state the inflation page starts in.
func DefaultInflation() Inflation {
	return Inflation{View: ViewTimeSeries}
}

// SelectView is the event of picking an inflation tab.
type SelectView struct{ View InflationView }

// Apply returns the state after e.
func (s Inflation) Apply(e SelectView) Inflation {
	s.View = e.View
	return s
}

// Query encodes the state.
func (s Inflation) Query() url.Values {
	return url.Values{ParamView: {string(s.View)}}
}

// ParseInflation decodes the state, defaulting unknown values.
func ParseInflation(q url.Values) Inflation {
	s := DefaultInflation()
	if v, ok := ParseInflationView(q.Get(ParamView)); ok {
		s.View = v
	}
	return s
}

// Comparison is the state of the country comparison page.
type Comparison struct {
	Selection Selection `json:"countries"`
	Metric    Metric    `json:"metric"`
}

// DefaultComparison is the state the comparison page starts in.
func DefaultComparison() Comparison {
	return Comparison{Selection: DefaultSelection(), Metric: MetricGDP}
}

// ComparisonEvent is a user action on the comparison page.
type ComparisonEvent interface {
	applyTo(Comparison) Comparison
}

// ToggleCountry adds or removes a country from the selection.
type ToggleCountry struct{ Country dataset.CountryCode }

func (e ToggleCountry) applyTo(s Comparison) Comparison {
	s.Selection = s.Selection.Toggle(e.Country)
	return s
}

// SelectMetric replaces the compared metric.
type SelectMetric struct{ Metric Metric }

func (e SelectMetric) applyTo(s Comparison) Comparison {
	s.Metric = e.Metric
	return s
}

// Apply returns the state after e.
func (s Comparison) Apply(e ComparisonEvent) Comparison {
	return e.applyTo(s)
}

// Query encodes the state. An empty selection is written as a single empty
// country value so it decodes as empty rather than as the default.
func (s Comparison) Query() url.Values {
	q := url.Values{ParamMetric: {string(s.Metric)}}
	codes := s.Selection.Codes()
	if len(codes) == 0 {
		q[ParamCountry] = []string{""}
		return q
	}
	for _, code := range codes {
		q.Add(ParamCountry, string(code))
	}
	return q
}

// ParseComparison decodes the state. Unknown metrics fall back to the
// default; unknown countries and duplicates are ignored and the selection is
// capped at its limit.
func ParseComparison(q url.Values) Comparison {
	s := DefaultComparison()
	if m, ok := ParseMetric(q.Get(ParamMetric)); ok {
		s.Metric = m
	}
	values, present := q[ParamCountry]
	if !present {
		return s
	}
	var codes []dataset.CountryCode
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			code, err := dataset.ParseCountry(part)
			if err != nil {
				continue
			}
			codes = append(codes, code)
		}
	}
	s.Selection = NewSelection(codes...)
	return s
}
