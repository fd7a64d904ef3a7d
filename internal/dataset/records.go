package dataset

import (
	"cloud.google.com/go/civil"
	"github.com/iwvelando/eurolens/pkg/datetime"
	"github.com/shopspring/decimal"
)

// Month is a year-month observation date.
type Month struct {
	date civil.Date
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(value string) (Month, error) {
	d, err := datetime.ParseMonth(value)
	if err != nil {
		return Month{}, err
	}
	return Month{date: d}, nil
}

// MustMonth is like ParseMonth but panics on error.
func MustMonth(value string) Month {
	return Month{date: datetime.MustParseMonth(value)}
}

// Before reports whether m is strictly before other.
func (m Month) Before(other Month) bool {
	return m.date.Before(other.date)
}

// IsZero reports whether m was never set.
func (m Month) IsZero() bool {
	return m.date == civil.Date{}
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return datetime.FormatMonth(m.date)
}

// MarshalText renders the month as YYYY-MM.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a YYYY-MM value.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Year is a calendar year column of an annual series.
type Year int

// InterestRateRecord holds the three ECB key rates in effect at a date.
type InterestRateRecord struct {
	Date        Month
	MainRate    decimal.Decimal
	DepositRate decimal.Decimal
	LendingRate decimal.Decimal
}

// InflationPoint is one observation of the Eurozone annual inflation rate.
type InflationPoint struct {
	Date Month
	Rate decimal.Decimal
}

// CountryAnnualSeries holds one value per year for a country.
type CountryAnnualSeries struct {
	Country CountryCode
	Values  map[Year]decimal.Decimal
}

// Key returns the country the series belongs to.
func (s CountryAnnualSeries) Key() CountryCode {
	return s.Country
}

// Value returns the value for the year, if present.
func (s CountryAnnualSeries) Value(year Year) (decimal.Decimal, bool) {
	v, ok := s.Values[year]
	return v, ok
}

// Latest returns the value for LatestYear, if present.
func (s CountryAnnualSeries) Latest() (decimal.Decimal, bool) {
	return s.Value(LatestYear)
}

// CountryRate is a single current rate for a country.
type CountryRate struct {
	Country CountryCode
	Rate    decimal.Decimal
}

// Key returns the country the rate belongs to.
func (r CountryRate) Key() CountryCode {
	return r.Country
}
