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

// CountryButton is one selection toggle. Href carries the state after the
// toggle; Disabled is set when the toggle would be a no-op.
type CountryButton struct {
	Code     dataset.CountryCode `json:"code"`
	Name     string              `json:"name"`
	Selected bool                `json:"selected"`
	Disabled bool                `json:"disabled"`
	Href     string              `json:"href"`
}

// ComparisonRow is one filtered entry of the compared metric.
type ComparisonRow struct {
	Country dataset.CountryCode              `json:"code"`
	Name    string                           `json:"country"`
	Latest  decimal.Decimal                  `json:"latest"`
	Years   map[dataset.Year]decimal.Decimal `json:"years,omitempty"`
}

// Comparison is the country comparison page.
type Comparison struct {
	State         state.Comparison   `json:"state"`
	Countries     []CountryButton    `json:"countries"`
	SelectedCount int                `json:"selectedCount"`
	MaxSelected   int                `json:"maxSelected"`
	Metrics       []Tab              `json:"metrics"`
	MetricTitle   string             `json:"metricTitle"`
	Description   string             `json:"description"`
	Rows          []ComparisonRow    `json:"rows"`
	Bars          Chart              `json:"bars"`
	Radar         Chart              `json:"radar"`
	Pivot         []view.MultiMetric `json:"pivot"`
	History       *Chart             `json:"history,omitempty"`
	HistoryTitle  string             `json:"historyTitle,omitempty"`
	Table         Table              `json:"table"`
}

func (Comparison) Name() string  { return "comparison" }
func (Comparison) Title() string { return "Country Comparison" }
func (Comparison) Status() int   { return http.StatusOK }

func (p Comparison) Charts() []Chart {
	charts := []Chart{p.Bars, p.Radar}
	if p.History != nil {
		charts = append(charts, *p.History)
	}
	return charts
}

// BuildComparison builds the comparison page for s.
func BuildComparison(s state.Comparison, data dataset.Collections) Comparison {
	metric := metricViewFor(s.Metric, data)
	selected := s.Selection.Codes()

	p := Comparison{
		State:         s,
		SelectedCount: s.Selection.Len(),
		MaxSelected:   constants.MaxSelectedCountries,
		MetricTitle:   metric.Title(),
		Description:   metric.Description(),
		Rows:          metric.Rows(selected),
	}

	for _, meta := range data.Countries {
		p.Countries = append(p.Countries, CountryButton{
			Code:     meta.Code,
			Name:     meta.Name,
			Selected: s.Selection.Contains(meta.Code),
			Disabled: !s.Selection.CanToggle(meta.Code),
			Href:     Href(PathComparison, s.Apply(state.ToggleCountry{Country: meta.Code}).Query()),
		})
	}
	for _, m := range state.Metrics() {
		p.Metrics = append(p.Metrics, Tab{
			Label:  m.Label(),
			Value:  string(m),
			Href:   Href(PathComparison, s.Apply(state.SelectMetric{Metric: m}).Query()),
			Active: m == s.Metric,
		})
	}

	labels := make([]string, len(p.Rows))
	latest := make([]decimal.Decimal, len(p.Rows))
	for i, row := range p.Rows {
		labels[i] = row.Name
		latest[i] = row.Latest
	}
	p.Bars = Chart{
		ID:         "comparison-bars",
		Kind:       ChartBar,
		Labels:     labels,
		Series:     []Series{{Name: metric.SeriesName(), Color: metric.Color(), Values: floats(latest)}},
		Horizontal: true,
		Height:     300,
	}

	p.Pivot = view.Pivot(selected, data.InflationByCountry, data.GDPByCountry, data.Unemployment)
	p.Radar = radarChart(p.Pivot)
	p.History, p.HistoryTitle = metric.History(p.Rows)
	p.Table = metric.Table(p.Rows)
	return p
}

func radarChart(pivot []view.MultiMetric) Chart {
	labels := make([]string, len(pivot))
	inflation := make([]decimal.Decimal, len(pivot))
	gdp := make([]decimal.Decimal, len(pivot))
	unemployment := make([]decimal.Decimal, len(pivot))
	for i, m := range pivot {
		labels[i] = m.Name
		inflation[i], gdp[i], unemployment[i] = m.Inflation, m.GDPGrowth, m.Unemployment
	}
	return Chart{
		ID:     "comparison-radar",
		Kind:   ChartRadar,
		Labels: labels,
		Series: []Series{
			{Name: "Inflation", Color: ColorPurple, Values: floats(inflation)},
			{Name: "GDP Growth", Color: ColorGreen, Values: floats(gdp)},
			{Name: "Unemployment", Color: ColorOrange, Values: floats(unemployment)},
		},
		Height: 300,
		Legend: true,
	}
}

// MetricView renders one comparable metric. Each state.Metric maps to exactly
// one implementation.
type MetricView interface {
	Metric() state.Metric
	Title() string
	Description() string
	SeriesName() string
	Color() string
	Rows(selected []dataset.CountryCode) []ComparisonRow
	History(rows []ComparisonRow) (*Chart, string)
	Table(rows []ComparisonRow) Table
}

func metricViewFor(m state.Metric, data dataset.Collections) MetricView {
	switch m {
	case state.MetricInflation:
		return annualMetric{
			metric:       m,
			title:        "Inflation Rate",
			description:  "Inflation rates by country and year",
			historyTitle: "Inflation Historical Trends",
			axisLabel:    "Inflation Rate (%)",
			color:        ColorPurple,
			hue:          func(i int) int { return 280 + i*15 },
			series:       data.InflationByCountry,
		}
	case state.MetricUnemployment:
		return rateMetric{
			metric:      m,
			title:       "Unemployment Rate",
			description: "Current unemployment rates by country",
			color:       ColorOrange,
			series:      data.Unemployment,
		}
	default:
		return annualMetric{
			metric:       state.MetricGDP,
			title:        "GDP Growth Rate",
			description:  "GDP growth rates by country and year",
			historyTitle: "GDP Growth Historical Trends",
			axisLabel:    "GDP Growth (%)",
			color:        ColorGreen,
			hue:          func(i int) int { return i * 60 },
			series:       data.GDPByCountry,
		}
	}
}

// annualMetric compares a by-country series with one value per year.
type annualMetric struct {
	metric       state.Metric
	title        string
	description  string
	historyTitle string
	axisLabel    string
	color        string
	hue          func(i int) int
	series       []dataset.CountryAnnualSeries
}

func (a annualMetric) Metric() state.Metric { return a.metric }
func (a annualMetric) Title() string        { return a.title }
func (a annualMetric) Description() string  { return a.description }
func (a annualMetric) Color() string        { return a.color }

func (a annualMetric) SeriesName() string {
	return strconv.Itoa(int(dataset.LatestYear))
}

func (a annualMetric) Rows(selected []dataset.CountryCode) []ComparisonRow {
	filtered := view.FilterBySelection(a.series, selected)
	rows := make([]ComparisonRow, 0, len(filtered))
	for _, s := range filtered {
		latest, _ := s.Latest()
		rows = append(rows, ComparisonRow{Country: s.Country, Name: s.Country.Name(), Latest: latest, Years: s.Values})
	}
	return rows
}

// History plots one line per year across the selected countries.
func (a annualMetric) History(rows []ComparisonRow) (*Chart, string) {
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Name
	}
	chart := &Chart{
		ID:        "comparison-history",
		Kind:      ChartLine,
		Labels:    labels,
		AxisLabel: a.axisLabel,
		Height:    350,
		Legend:    true,
	}
	for i, year := range dataset.Years() {
		values := make([]decimal.Decimal, len(rows))
		for j, row := range rows {
			values[j] = row.Years[year]
		}
		chart.Series = append(chart.Series, Series{
			Name:   strconv.Itoa(int(year)),
			Color:  hsl(a.hue(i)),
			Width:  2,
			Values: floats(values),
		})
	}
	return chart, a.historyTitle
}

func (a annualMetric) Table(rows []ComparisonRow) Table {
	series := make([]dataset.CountryAnnualSeries, len(rows))
	for i, row := range rows {
		series[i] = dataset.CountryAnnualSeries{Country: row.Country, Values: row.Years}
	}
	return annualTable(series, historyYears)
}

// rateMetric compares a by-country series with a single current value.
type rateMetric struct {
	metric      state.Metric
	title       string
	description string
	color       string
	series      []dataset.CountryRate
}

func (r rateMetric) Metric() state.Metric { return r.metric }
func (r rateMetric) Title() string        { return r.title }
func (r rateMetric) Description() string  { return r.description }
func (r rateMetric) Color() string        { return r.color }
func (r rateMetric) SeriesName() string   { return "Rate" }

func (r rateMetric) Rows(selected []dataset.CountryCode) []ComparisonRow {
	filtered := view.FilterBySelection(r.series, selected)
	rows := make([]ComparisonRow, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, ComparisonRow{Country: c.Country, Name: c.Country.Name(), Latest: c.Rate})
	}
	return rows
}

func (r rateMetric) History([]ComparisonRow) (*Chart, string) {
	return nil, ""
}

func (r rateMetric) Table(rows []ComparisonRow) Table {
	t := Table{Columns: []string{"Country", "Current Rate"}}
	for _, row := range rows {
		t.Rows = append(t.Rows, TableRow{Label: row.Name, Cells: []string{format.Percent(row.Latest, 1)}})
	}
	return t
}
