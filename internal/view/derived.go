package view

import (
	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/shopspring/decimal"
)

// Trend classifies the sign of a change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// TrendOf returns the direction of delta.
func TrendOf(delta decimal.Decimal) Trend {
	switch delta.Sign() {
	case 1:
		return TrendUp
	case -1:
		return TrendDown
	}
	return TrendFlat
}

// MultiMetric merges the latest value of each by-country metric for one
// country.
type MultiMetric struct {
	Country      dataset.CountryCode `json:"code"`
	Name         string              `json:"country"`
	Inflation    decimal.Decimal     `json:"inflation"`
	GDPGrowth    decimal.Decimal     `json:"gdpGrowth"`
	Unemployment decimal.Decimal     `json:"unemployment"`
}

// Pivot produces one MultiMetric per selected country, in selection order.
// A country missing from a series gets zero for that metric.
func Pivot(selected []dataset.CountryCode, inflation, gdp []dataset.CountryAnnualSeries, unemployment []dataset.CountryRate) []MultiMetric {
	out := make([]MultiMetric, 0, len(selected))
	for _, code := range selected {
		m := MultiMetric{Country: code, Name: code.Name()}
		if s, ok := Find(inflation, code); ok {
			m.Inflation, _ = s.Latest()
		}
		if s, ok := Find(gdp, code); ok {
			m.GDPGrowth, _ = s.Latest()
		}
		if r, ok := Find(unemployment, code); ok {
			m.Unemployment = r.Rate
		}
		out = append(out, m)
	}
	return out
}

// InflationStatus says whether a rate sits above the ECB target.
type InflationStatus string

const (
	StatusAboveTarget InflationStatus = "above-target"
	StatusNearTarget  InflationStatus = "near-target"
)

// StatusOf compares rate against target.
func StatusOf(rate, target decimal.Decimal) InflationStatus {
	if rate.GreaterThan(target) {
		return StatusAboveTarget
	}
	return StatusNearTarget
}

// ChangeRow is one line of the recent inflation table.
type ChangeRow struct {
	Date   dataset.Month
	Rate   decimal.Decimal
	Change decimal.Decimal
	Status InflationStatus
}

// ChangeRows returns the last n points newest first, each with its change
// against the next older point in the window. The oldest row has no older
// neighbour and reports a zero change.
func ChangeRows(series []dataset.InflationPoint, n int, target decimal.Decimal) []ChangeRow {
	recent := Reverse(Window(series, n))
	rows := make([]ChangeRow, 0, len(recent))
	for i, p := range recent {
		var older decimal.Decimal
		hasOlder := i+1 < len(recent)
		if hasOlder {
			older = recent[i+1].Rate
		}
		rows = append(rows, ChangeRow{
			Date:   p.Date,
			Rate:   p.Rate,
			Change: Delta(p.Rate, older, hasOlder),
			Status: StatusOf(p.Rate, target),
		})
	}
	return rows
}

// YearValues returns the values of the series for the given years; a missing
// year is reported with ok=false in the matching position.
func YearValues(series dataset.CountryAnnualSeries, years []dataset.Year) ([]decimal.Decimal, []bool) {
	values := make([]decimal.Decimal, len(years))
	present := make([]bool, len(years))
	for i, year := range years {
		values[i], present[i] = series.Value(year)
	}
	return values, present
}
