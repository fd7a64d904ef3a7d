package page

import (
	"net/http"
	"strconv"

	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/iwvelando/eurolens/internal/state"
	"github.com/iwvelando/eurolens/internal/view"
	"github.com/iwvelando/eurolens/pkg/constants"
	"github.com/iwvelando/eurolens/pkg/format"
	"github.com/shopspring/decimal"
)

var inflationTarget = decimal.RequireFromString(constants.InflationTargetRate)

// historyYears are the year columns shown in historical tables.
var historyYears = []dataset.Year{2022, 2023, 2024, 2025}

// Inflation is the inflation tracker page. Exactly one of TimeSeries and
// ByCountry is set, matching State.View.
type Inflation struct {
	State       state.Inflation      `json:"state"`
	Current     Card                 `json:"current"`
	Target      Card                 `json:"target"`
	Change      Card                 `json:"change"`
	AboveTarget bool                 `json:"aboveTarget"`
	Views       []Tab                `json:"views"`
	TimeSeries  *InflationTimeSeries `json:"timeSeries,omitempty"`
	ByCountry   *InflationByCountry  `json:"byCountry,omitempty"`
}

// InflationTimeSeries is the "Time Series" tab.
type InflationTimeSeries struct {
	Timeline Chart `json:"timeline"`
	Recent   Table `json:"recent"`
}

// InflationByCountry is the "By Country" tab.
type InflationByCountry struct {
	Bars    Chart `json:"bars"`
	History Table `json:"history"`
}

func (Inflation) Name() string  { return "inflation" }
func (Inflation) Title() string { return "Inflation Tracker" }
func (Inflation) Status() int   { return http.StatusOK }

func (p Inflation) Charts() []Chart {
	switch {
	case p.TimeSeries != nil:
		return []Chart{p.TimeSeries.Timeline}
	case p.ByCountry != nil:
		return []Chart{p.ByCountry.Bars}
	}
	return nil
}

// BuildInflation builds the inflation page for s.
func BuildInflation(s state.Inflation, data dataset.Collections) Inflation {
	p := Inflation{
		State:   s,
		Current: Card{Label: "Current Eurozone Inflation", Value: format.Placeholder, Tone: "purple"},
		Target:  Card{Label: "ECB Target Rate", Value: format.Percent(inflationTarget, 1), Detail: "Medium-term inflation target", Tone: "blue"},
		Change:  Card{Label: "6-Month Change", Value: format.Placeholder},
	}

	if current, ok := view.Latest(data.Inflation); ok {
		change := view.Change(data.Inflation, constants.InflationChangeOffset, func(pt dataset.InflationPoint) decimal.Decimal {
			return pt.Rate
		})
		p.AboveTarget = view.StatusOf(current.Rate, inflationTarget) == view.StatusAboveTarget

		p.Current.Value = format.Percent(current.Rate, 1)
		p.Current.Detail = "as of " + current.Date.String()
		// Rising inflation is bad news, so the arrow only points up on a rise.
		p.Current.Trend = view.TrendDown
		if change.Sign() > 0 {
			p.Current.Trend = view.TrendUp
		}

		p.Change.Value = format.PercentagePoints(change, 1)
		p.Change.Tone = "green"
		if change.Sign() > 0 {
			p.Change.Tone = "red"
		}
		p.Change.Detail = "Near target"
		if p.AboveTarget {
			p.Change.Detail = "Above target"
		}
	}

	for _, v := range state.InflationViews() {
		p.Views = append(p.Views, Tab{
			Label:  v.Label(),
			Value:  string(v),
			Href:   Href(PathInflation, s.Apply(state.SelectView{View: v}).Query()),
			Active: v == s.View,
		})
	}

	switch s.View {
	case state.ViewCountries:
		p.ByCountry = buildInflationByCountry(data.InflationByCountry)
	default:
		p.TimeSeries = buildInflationTimeSeries(data.Inflation)
	}
	return p
}

func buildInflationTimeSeries(points []dataset.InflationPoint) *InflationTimeSeries {
	target := make([]float64, len(points))
	for i := range target {
		target[i] = inflationTarget.InexactFloat64()
	}
	lo, hi := bounds(0, 12)
	ts := &InflationTimeSeries{
		Timeline: Chart{
			ID:     "inflation-timeline",
			Kind:   ChartLine,
			Labels: inflationDates(points),
			Series: []Series{
				{Name: "Inflation Rate", Color: ColorPurple, Width: 3, Points: true, Values: floats(inflationRates(points))},
				{Name: "ECB Target", Color: ColorBlue, Width: 2, Dashed: true, Values: target},
			},
			Min:       lo,
			Max:       hi,
			AxisLabel: "Inflation Rate (%)",
			Height:    400,
			Legend:    true,
		},
		Recent: Table{Columns: []string{"Date", "Rate", "Change", "Status"}},
	}

	for _, row := range view.ChangeRows(points, constants.RecentInflationWindow, inflationTarget) {
		changeTone := "gray"
		switch view.TrendOf(row.Change.Round(1)) {
		case view.TrendUp:
			changeTone = "red"
		case view.TrendDown:
			changeTone = "green"
		}
		status, statusTone := "Near target", "green"
		if row.Status == view.StatusAboveTarget {
			status, statusTone = "Above target", "orange"
		}
		ts.Recent.Rows = append(ts.Recent.Rows, TableRow{
			Label: row.Date.String(),
			Cells: []string{format.Percent(row.Rate, 1), format.ChangeOrPlaceholder(row.Change, 1), status},
			Tones: []string{"", changeTone, statusTone},
		})
	}
	return ts
}

func buildInflationByCountry(series []dataset.CountryAnnualSeries) *InflationByCountry {
	labels := make([]string, 0, len(series))
	latest := make([]decimal.Decimal, 0, len(series))
	for _, s := range series {
		labels = append(labels, s.Country.Name())
		v, _ := s.Latest()
		latest = append(latest, v)
	}
	lo, hi := bounds(0, 5)
	return &InflationByCountry{
		Bars: Chart{
			ID:         "inflation-by-country",
			Kind:       ChartBar,
			Labels:     labels,
			Series:     []Series{{Name: strconv.Itoa(int(dataset.LatestYear)), Color: ColorPurple, Values: floats(latest)}},
			Horizontal: true,
			Min:        lo,
			Max:        hi,
			AxisLabel:  "Inflation Rate (%)",
			Height:     400,
		},
		History: annualTable(series, historyYears),
	}
}

// annualTable renders one row per series with a column per year. Missing
// years render as the placeholder.
func annualTable(series []dataset.CountryAnnualSeries, years []dataset.Year) Table {
	t := Table{Columns: []string{"Country"}}
	for _, year := range years {
		t.Columns = append(t.Columns, strconv.Itoa(int(year)))
	}
	for _, s := range series {
		values, present := view.YearValues(s, years)
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = format.Placeholder
			if present[i] {
				cells[i] = format.Percent(v, 1)
			}
		}
		t.Rows = append(t.Rows, TableRow{Label: s.Country.Name(), Cells: cells})
	}
	return t
}
