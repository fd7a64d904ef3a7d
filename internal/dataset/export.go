package dataset

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iwvelando/eurolens/pkg/output"
)

// ErrUnknownDataset is returned by Export for a name not in DatasetNames.
var ErrUnknownDataset = errors.New("unknown dataset")

// Dataset names accepted by Export.
const (
	NameInterestRates         = "interest-rates"
	NameInflation             = "inflation"
	NameInflationByCountry    = "inflation-by-country"
	NameGDPByCountry          = "gdp-by-country"
	NameUnemploymentByCountry = "unemployment-by-country"
	NameCountries             = "countries"
)

// DatasetNames lists every exportable dataset.
func DatasetNames() []string {
	return []string{
		NameInterestRates,
		NameInflation,
		NameInflationByCountry,
		NameGDPByCountry,
		NameUnemploymentByCountry,
		NameCountries,
	}
}

type interestRateRow struct {
	Date        string  `json:"date" yaml:"date"`
	MainRate    float64 `json:"mainRate" yaml:"mainRate"`
	DepositRate float64 `json:"depositRate" yaml:"depositRate"`
	LendingRate float64 `json:"lendingRate" yaml:"lendingRate"`
}

type inflationRow struct {
	Date string  `json:"date" yaml:"date"`
	Rate float64 `json:"rate" yaml:"rate"`
}

type annualRow struct {
	Code    CountryCode        `json:"code" yaml:"code"`
	Country string             `json:"country" yaml:"country"`
	Values  map[string]float64 `json:"values" yaml:"values"`
}

type countryRateRow struct {
	Code    CountryCode `json:"code" yaml:"code"`
	Country string      `json:"country" yaml:"country"`
	Rate    float64     `json:"rate" yaml:"rate"`
}

// Export returns the named dataset as an output.Table.
func Export(name string) (output.Table, error) {
	switch name {
	case NameInterestRates:
		return exportInterestRates(InterestRates()), nil
	case NameInflation:
		return exportInflation(InflationSeries()), nil
	case NameInflationByCountry:
		return exportAnnual(name, InflationByCountry()), nil
	case NameGDPByCountry:
		return exportAnnual(name, GDPByCountry()), nil
	case NameUnemploymentByCountry:
		return exportCountryRates(name, UnemploymentByCountry()), nil
	case NameCountries:
		return exportCountries(Countries()), nil
	}
	return output.Table{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
}

func exportInterestRates(records []InterestRateRecord) output.Table {
	table := output.Table{
		Name:   NameInterestRates,
		Header: []string{"date", "mainRate", "depositRate", "lendingRate"},
	}
	rows := make([]interestRateRow, 0, len(records))
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Date.String(), r.MainRate.StringFixed(2), r.DepositRate.StringFixed(2), r.LendingRate.StringFixed(2),
		})
		rows = append(rows, interestRateRow{
			Date:        r.Date.String(),
			MainRate:    r.MainRate.InexactFloat64(),
			DepositRate: r.DepositRate.InexactFloat64(),
			LendingRate: r.LendingRate.InexactFloat64(),
		})
	}
	table.Records = rows
	return table
}

func exportInflation(points []InflationPoint) output.Table {
	table := output.Table{
		Name:   NameInflation,
		Header: []string{"date", "rate"},
	}
	rows := make([]inflationRow, 0, len(points))
	for _, p := range points {
		table.Rows = append(table.Rows, []string{p.Date.String(), p.Rate.StringFixed(1)})
		rows = append(rows, inflationRow{Date: p.Date.String(), Rate: p.Rate.InexactFloat64()})
	}
	table.Records = rows
	return table
}

func exportAnnual(name string, series []CountryAnnualSeries) output.Table {
	header := []string{"code", "country"}
	for _, year := range years {
		header = append(header, strconv.Itoa(int(year)))
	}
	table := output.Table{Name: name, Header: header}
	rows := make([]annualRow, 0, len(series))
	for _, s := range series {
		line := []string{string(s.Country), s.Country.Name()}
		values := make(map[string]float64, len(years))
		for _, year := range years {
			v, ok := s.Value(year)
			if !ok {
				line = append(line, "")
				continue
			}
			line = append(line, v.StringFixed(1))
			values[strconv.Itoa(int(year))] = v.InexactFloat64()
		}
		table.Rows = append(table.Rows, line)
		rows = append(rows, annualRow{Code: s.Country, Country: s.Country.Name(), Values: values})
	}
	table.Records = rows
	return table
}

func exportCountryRates(name string, rates []CountryRate) output.Table {
	table := output.Table{Name: name, Header: []string{"code", "country", "rate"}}
	rows := make([]countryRateRow, 0, len(rates))
	for _, r := range rates {
		table.Rows = append(table.Rows, []string{string(r.Country), r.Country.Name(), r.Rate.StringFixed(1)})
		rows = append(rows, countryRateRow{Code: r.Country, Country: r.Country.Name(), Rate: r.Rate.InexactFloat64()})
	}
	table.Records = rows
	return table
}

func exportCountries(metas []CountryMeta) output.Table {
	table := output.Table{Name: NameCountries, Header: []string{"code", "name"}, Records: metas}
	for _, m := range metas {
		table.Rows = append(table.Rows, []string{string(m.Code), m.Name})
	}
	return table
}
