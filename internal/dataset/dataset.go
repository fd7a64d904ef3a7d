// Package dataset holds the compiled-in economic datasets rendered by
// eurolens. All collections are read-only; accessors hand out copies so no
// caller can change what another request sees.
package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Collections groups every dataset so they can be validated or exported
// together.
type Collections struct {
	InterestRates      []InterestRateRecord
	Inflation          []InflationPoint
	InflationByCountry []CountryAnnualSeries
	GDPByCountry       []CountryAnnualSeries
	Unemployment       []CountryRate
	Countries          []CountryMeta
}

// Default returns a copy of the compiled-in datasets.
func Default() Collections {
	return Collections{
		InterestRates:      InterestRates(),
		Inflation:          InflationSeries(),
		InflationByCountry: InflationByCountry(),
		GDPByCountry:       GDPByCountry(),
		Unemployment:       UnemploymentByCountry(),
		Countries:          Countries(),
	}
}

// InterestRates returns the ECB key interest rate history, oldest first.
func InterestRates() []InterestRateRecord {
	return append([]InterestRateRecord(nil), interestRates...)
}

// InflationSeries returns the Eurozone inflation history, oldest first.
func InflationSeries() []InflationPoint {
	return append([]InflationPoint(nil), inflationSeries...)
}

// InflationByCountry returns annual inflation per country.
func InflationByCountry() []CountryAnnualSeries {
	return copyAnnual(inflationByCountry)
}

// GDPByCountry returns annual GDP growth per country.
func GDPByCountry() []CountryAnnualSeries {
	return copyAnnual(gdpByCountry)
}

// UnemploymentByCountry returns the current unemployment rate per country.
func UnemploymentByCountry() []CountryRate {
	return append([]CountryRate(nil), unemploymentByCountry...)
}

// Countries returns the countries offered for selection.
func Countries() []CountryMeta {
	return append([]CountryMeta(nil), countries...)
}

// Years returns the year columns of the annual series, oldest first.
func Years() []Year {
	return append([]Year(nil), years...)
}

func copyAnnual(series []CountryAnnualSeries) []CountryAnnualSeries {
	out := make([]CountryAnnualSeries, len(series))
	for i, s := range series {
		values := make(map[Year]decimal.Decimal, len(s.Values))
		for year, v := range s.Values {
			values[year] = v
		}
		out[i] = CountryAnnualSeries{Country: s.Country, Values: values}
	}
	return out
}

// Validate checks the compiled-in datasets.
func Validate() error {
	return Default().Validate()
}

// Validate checks the ordering and join invariants the derived views rely on.
// Time series must ascend strictly by date. By-country series must name only
// registered countries, each once, with every year column present.
func (c Collections) Validate() error {
	var errs []error

	known := make(map[CountryCode]struct{}, len(c.Countries))
	for _, meta := range c.Countries {
		if _, dup := known[meta.Code]; dup {
			errs = append(errs, fmt.Errorf("countries: duplicate code %s", meta.Code))
		}
		if strings.TrimSpace(meta.Name) == "" {
			errs = append(errs, fmt.Errorf("countries: %s has no name", meta.Code))
		}
		known[meta.Code] = struct{}{}
	}

	for i := 1; i < len(c.InterestRates); i++ {
		prev, cur := c.InterestRates[i-1].Date, c.InterestRates[i].Date
		if !prev.Before(cur) {
			errs = append(errs, fmt.Errorf("interest rates: %s does not follow %s", cur, prev))
		}
	}
	for i := 1; i < len(c.Inflation); i++ {
		prev, cur := c.Inflation[i-1].Date, c.Inflation[i].Date
		if !prev.Before(cur) {
			errs = append(errs, fmt.Errorf("inflation: %s does not follow %s", cur, prev))
		}
	}

	errs = append(errs, validateAnnual("inflation by country", c.InflationByCountry, known)...)
	errs = append(errs, validateAnnual("gdp by country", c.GDPByCountry, known)...)

	seen := make(map[CountryCode]struct{}, len(c.Unemployment))
	for _, r := range c.Unemployment {
		errs = append(errs, checkCountry("unemployment by country", r.Country, known, seen)...)
	}

	return errors.Join(errs...)
}

func validateAnnual(name string, series []CountryAnnualSeries, known map[CountryCode]struct{}) []error {
	var errs []error
	seen := make(map[CountryCode]struct{}, len(series))
	for _, s := range series {
		errs = append(errs, checkCountry(name, s.Country, known, seen)...)
		for _, year := range years {
			if _, ok := s.Values[year]; !ok {
				errs = append(errs, fmt.Errorf("%s: %s is missing %d", name, s.Country, year))
			}
		}
		for year := range s.Values {
			if year < years[0] || year > LatestYear {
				errs = append(errs, fmt.Errorf("%s: %s has unexpected year %d", name, s.Country, year))
			}
		}
	}
	return errs
}

func checkCountry(name string, code CountryCode, known, seen map[CountryCode]struct{}) []error {
	var errs []error
	if _, ok := known[code]; !ok {
		errs = append(errs, fmt.Errorf("%s: %w %q", name, ErrUnknownCountry, code))
	}
	if _, dup := seen[code]; dup {
		errs = append(errs, fmt.Errorf("%s: duplicate country %s", name, code))
	}
	seen[code] = struct{}{}
	return errs
}
