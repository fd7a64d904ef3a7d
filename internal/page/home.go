package page

import (
	"net/http"

	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/iwvelando/eurolens/internal/view"
	"github.com/iwvelando/eurolens/pkg/constants"
	"github.com/iwvelando/eurolens/pkg/format"
	"github.com/shopspring/decimal"
)

// Feature is an overview card linking to a detail page.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Accent      string `json:"accent"`
}

// Home is the overview page.
type Home struct {
	DepositRate      Card      `json:"depositRate"`
	Inflation        Card      `json:"inflation"`
	CountriesTracked Card      `json:"countriesTracked"`
	RatePreview      Chart     `json:"ratePreview"`
	InflationPreview Chart     `json:"inflationPreview"`
	Features         []Feature `json:"features"`
}

func (Home) Name() string  { return "home" }
func (Home) Title() string { return "Overview" }
func (Home) Status() int   { return http.StatusOK }

func (h Home) Charts() []Chart {
	return []Chart{h.RatePreview, h.InflationPreview}
}

// BuildHome builds the overview page.
func BuildHome(data dataset.Collections) Home {
	h := Home{
		DepositRate:      Card{Label: "ECB Deposit Rate", Value: format.Placeholder, Tone: "blue"},
		Inflation:        Card{Label: "Eurozone Inflation", Value: format.Placeholder, Tone: "purple"},
		CountriesTracked: Card{Label: "Countries Tracked", Value: format.Count(countriesWithData(data)) + "+", Detail: "EU member states", Tone: "green"},
		Features: []Feature{
			{Title: "ECB Interest Rates", Description: "Track European Central Bank key interest rates over time", Path: PathInterestRates, Accent: "blue"},
			{Title: "Inflation Tracker", Description: "Monitor inflation rates across the Eurozone", Path: PathInflation, Accent: "purple"},
			{Title: "Country Comparison", Description: "Compare economic indicators across EU countries", Path: PathComparison, Accent: "orange"},
		},
	}

	if rate, ok := view.Latest(data.InterestRates); ok {
		h.DepositRate.Value = format.Percent(rate.DepositRate, 2)
		h.DepositRate.Detail = "as of " + rate.Date.String()
	}
	if point, ok := view.Latest(data.Inflation); ok {
		h.Inflation.Value = format.Percent(point.Rate, 1)
		h.Inflation.Detail = "as of " + point.Date.String()
	}

	rates := view.Window(data.InterestRates, constants.PreviewWindow)
	h.RatePreview = Chart{
		ID:     "rate-preview",
		Kind:   ChartLine,
		Labels: rateDates(rates),
		Series: []Series{{Name: "Main Refinancing", Color: ColorBlue, Width: 2, Values: floats(mainRates(rates))}},
		Height: 200,
	}

	points := view.Window(data.Inflation, constants.PreviewWindow)
	h.InflationPreview = Chart{
		ID:     "inflation-preview",
		Kind:   ChartLine,
		Labels: inflationDates(points),
		Series: []Series{{Name: "Inflation Rate", Color: ColorPurple, Width: 2, Values: floats(inflationRates(points))}},
		Height: 200,
	}
	return h
}

// countriesWithData counts the countries present in at least one by-country
// series.
func countriesWithData(data dataset.Collections) int {
	seen := make(map[dataset.CountryCode]struct{})
	for _, s := range data.InflationByCountry {
		seen[s.Country] = struct{}{}
	}
	for _, s := range data.GDPByCountry {
		seen[s.Country] = struct{}{}
	}
	for _, r := range data.Unemployment {
		seen[r.Country] = struct{}{}
	}
	return len(seen)
}

func rateDates(records []dataset.InterestRateRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Date.String()
	}
	return out
}

func mainRates(records []dataset.InterestRateRecord) []decimal.Decimal {
	out := make([]decimal.Decimal, len(records))
	for i, r := range records {
		out[i] = r.MainRate
	}
	return out
}

func inflationDates(points []dataset.InflationPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Date.String()
	}
	return out
}

func inflationRates(points []dataset.InflationPoint) []decimal.Decimal {
	out := make([]decimal.Decimal, len(points))
	for i, p := range points {
		out[i] = p.Rate
	}
	return out
}
