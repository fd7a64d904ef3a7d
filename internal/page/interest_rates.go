package page

import (
	"net/http"

	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/iwvelando/eurolens/internal/state"
	"github.com/iwvelando/eurolens/internal/view"
	"github.com/iwvelando/eurolens/pkg/constants"
	"github.com/iwvelando/eurolens/pkg/format"
	"github.com/shopspring/decimal"
)

// InterestRates is the ECB key interest rates page.
type InterestRates struct {
	State         state.InterestRates `json:"state"`
	Main          Card                `json:"main"`
	Deposit       Card                `json:"deposit"`
	Lending       Card                `json:"lending"`
	DepositChange string              `json:"depositChange"`
	Ranges        []Tab               `json:"ranges"`
	Timeline      Chart               `json:"timeline"`
	Recent        Table               `json:"recent"`
}

func (InterestRates) Name() string  { return "interest_rates" }
func (InterestRates) Title() string { return "ECB Interest Rates" }
func (InterestRates) Status() int   { return http.StatusOK }

func (p InterestRates) Charts() []Chart {
	return []Chart{p.Timeline}
}

// BuildInterestRates builds the interest rates page for s.
func BuildInterestRates(s state.InterestRates, data dataset.Collections) InterestRates {
	p := InterestRates{
		State:   s,
		Main:    Card{Label: "Main Refinancing Rate", Value: format.Placeholder, Detail: "Primary rate for lending to banks", Tone: "blue"},
		Deposit: Card{Label: "Deposit Facility Rate", Value: format.Placeholder, Detail: "Rate for overnight deposits", Tone: "purple"},
		Lending: Card{Label: "Marginal Lending Rate", Value: format.Placeholder, Detail: "Rate for overnight lending", Tone: "orange"},
	}

	if current, ok := view.Latest(data.InterestRates); ok {
		change := view.Change(data.InterestRates, constants.RateChangeOffset, func(r dataset.InterestRateRecord) decimal.Decimal {
			return r.DepositRate
		})
		p.Main.Value = format.Percent(current.MainRate, 2)
		p.Main.Trend = view.TrendOf(change)
		p.Deposit.Value = format.Percent(current.DepositRate, 2)
		p.Lending.Value = format.Percent(current.LendingRate, 2)
		p.DepositChange = format.PercentagePoints(change, 2)
	}

	for _, r := range state.TimeRanges() {
		p.Ranges = append(p.Ranges, Tab{
			Label:  r.Label(),
			Value:  string(r),
			Href:   Href(PathInterestRates, s.Apply(state.SelectRange{Range: r}).Query()),
			Active: r == s.Range,
		})
	}

	windowed := view.Window(data.InterestRates, s.Range.Window())
	refi := make([]decimal.Decimal, len(windowed))
	deposit := make([]decimal.Decimal, len(windowed))
	lending := make([]decimal.Decimal, len(windowed))
	for i, r := range windowed {
		refi[i], deposit[i], lending[i] = r.MainRate, r.DepositRate, r.LendingRate
	}
	minRate, maxRate := bounds(-1, 5)
	p.Timeline = Chart{
		ID:     "rates-timeline",
		Kind:   ChartLine,
		Labels: rateDates(windowed),
		Series: []Series{
			{Name: "Main Refinancing", Color: ColorBlue, Width: 2, Points: true, Values: floats(refi)},
			{Name: "Deposit Facility", Color: ColorPurple, Width: 2, Points: true, Values: floats(deposit)},
			{Name: "Marginal Lending", Color: ColorOrange, Width: 2, Points: true, Values: floats(lending)},
		},
		Min:       minRate,
		Max:       maxRate,
		AxisLabel: "Rate (%)",
		Height:    400,
		Legend:    true,
	}

	p.Recent = Table{Columns: []string{"Date", "Main Rate", "Deposit Rate", "Lending Rate"}}
	for _, r := range view.Reverse(view.Window(data.InterestRates, constants.RecentRatesWindow)) {
		p.Recent.Rows = append(p.Recent.Rows, TableRow{
			Label: r.Date.String(),
			Cells: []string{format.Percent(r.MainRate, 2), format.Percent(r.DepositRate, 2), format.Percent(r.LendingRate, 2)},
		})
	}
	return p
}
