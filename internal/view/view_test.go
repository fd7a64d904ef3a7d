package view

import (
	"testing"

	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestWindow(t *testing.T) {
	series := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "last two", n: 2, want: []int{4, 5}},
		{name: "exact length", n: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "longer than series", n: 36, want: []int{1, 2, 3, 4, 5}},
		{name: "zero means all", n: 0, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(series, tt.n))
		})
	}

	assert.Empty(t, Window([]int(nil), 8))
}

func TestWindowDoesNotAlias(t *testing.T) {
	series := []int{1, 2, 3}
	w := Window(series, 2)
	w[0] = 99
	assert.Equal(t, []int{1, 2, 3}, series)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []string{"c", "b", "a"}, Reverse([]string{"a", "b", "c"}))
	assert.Empty(t, Reverse([]string{}))
}

func TestPrevious(t *testing.T) {
	series := []int{10, 20, 30}

	v, ok := Latest(series)
	require.True(t, ok)
	assert.Equal(t, 30, v)

	v, ok = Previous(series, 2)
	require.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = Previous(series, 3)
	assert.False(t, ok)

	_, ok = Latest([]int{})
	assert.False(t, ok)
}

func TestDelta(t *testing.T) {
	assert.True(t, Delta(d("2.1"), d("2.2"), true).Equal(d("-0.1")))
	assert.True(t, Delta(d("2.1"), decimal.Zero, false).IsZero())
}

func TestChange(t *testing.T) {
	rate := func(p dataset.InflationPoint) decimal.Decimal { return p.Rate }
	points := []dataset.InflationPoint{
		{Date: dataset.MustMonth("2024-01"), Rate: d("2.8")},
		{Date: dataset.MustMonth("2024-02"), Rate: d("2.6")},
		{Date: dataset.MustMonth("2024-03"), Rate: d("2.4")},
	}

	assert.True(t, Change(points, 1, rate).Equal(d("-0.2")))
	assert.True(t, Change(points, 2, rate).Equal(d("-0.4")))
	assert.True(t, Change(points, 6, rate).IsZero(), "offset past the start has no previous observation")
	assert.True(t, Change([]dataset.InflationPoint{}, 1, rate).IsZero())
}

func TestChangeOnCompiledInflation(t *testing.T) {
	change := Change(dataset.InflationSeries(), 6, func(p dataset.InflationPoint) decimal.Decimal { return p.Rate })
	// 2026-02 at 2.1 against 2023-12 at 2.9.
	assert.True(t, change.Equal(d("-0.8")), "got %s", change)
}

func TestFilterBySelection(t *testing.T) {
	gdp := dataset.GDPByCountry()

	filtered := FilterBySelection(gdp, []dataset.CountryCode{dataset.Spain, dataset.Germany})
	require.Len(t, filtered, 2)
	// Dataset order, not selection order.
	assert.Equal(t, dataset.Germany, filtered[0].Country)
	assert.Equal(t, dataset.Spain, filtered[1].Country)

	again := FilterBySelection(filtered, []dataset.CountryCode{dataset.Spain, dataset.Germany})
	assert.Equal(t, filtered, again)

	assert.Empty(t, FilterBySelection(gdp, nil))
	assert.Empty(t, FilterBySelection(gdp, []dataset.CountryCode{dataset.Sweden}))
}

func TestFind(t *testing.T) {
	rate, ok := Find(dataset.UnemploymentByCountry(), dataset.Spain)
	require.True(t, ok)
	assert.True(t, rate.Rate.Equal(d("11.6")))

	_, ok = Find(dataset.UnemploymentByCountry(), dataset.Denmark)
	assert.False(t, ok)
}
