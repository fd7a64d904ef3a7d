package dataset

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCompiledIn(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(c *Collections)
		want    string
	}{
		{
			name: "interest rates out of order",
			corrupt: func(c *Collections) {
				c.InterestRates[1], c.InterestRates[2] = c.InterestRates[2], c.InterestRates[1]
			},
			want: "interest rates:",
		},
		{
			name: "duplicate inflation date",
			corrupt: func(c *Collections) {
				c.Inflation[1].Date = c.Inflation[0].Date
			},
			want: "inflation:",
		},
		{
			name: "unknown country",
			corrupt: func(c *Collections) {
				c.GDPByCountry[0].Country = "XX"
			},
			want: "gdp by country: unknown country",
		},
		{
			name: "duplicate country",
			corrupt: func(c *Collections) {
				c.Unemployment[1].Country = c.Unemployment[0].Country
			},
			want: "unemployment by country: duplicate country DE",
		},
		{
			name: "missing year",
			corrupt: func(c *Collections) {
				delete(c.InflationByCountry[0].Values, 2023)
			},
			want: "inflation by country: DE is missing 2023",
		},
		{
			name: "unexpected year",
			corrupt: func(c *Collections) {
				c.InflationByCountry[0].Values[2019] = decimal.NewFromInt(1)
			},
			want: "inflation by country: DE has unexpected year 2019",
		},
		{
			name: "unnamed country",
			corrupt: func(c *Collections) {
				c.Countries[0].Name = " "
			},
			want: "countries: DE has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.corrupt(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateUnknownCountryIsWrapped(t *testing.T) {
	c := Default()
	c.Unemployment[0].Country = "ZZ"
	assert.True(t, errors.Is(c.Validate(), ErrUnknownCountry))
}

func TestAccessorsReturnCopies(t *testing.T) {
	gdp := GDPByCountry()
	gdp[0].Values[LatestYear] = decimal.NewFromInt(99)
	rates := InterestRates()
	rates[0].MainRate = decimal.NewFromInt(99)

	latest, ok := GDPByCountry()[0].Latest()
	require.True(t, ok)
	assert.True(t, latest.Equal(decimal.RequireFromString("1.3")))
	assert.True(t, InterestRates()[0].MainRate.IsZero())
}

func TestParseCountry(t *testing.T) {
	tests := []struct {
		input   string
		want    CountryCode
		wantErr bool
	}{
		{input: "DE", want: Germany},
		{input: "fr", want: France},
		{input: "Czech Republic", want: CzechRepublic},
		{input: " spain ", want: Spain},
		{input: "Atlantis", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCountry(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCountry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Germany", Germany.Name())
	assert.True(t, Germany.Known())
	assert.Equal(t, "XX", CountryCode("XX").Name())
	assert.False(t, CountryCode("XX").Known())
}

func TestMonth(t *testing.T) {
	m, err := ParseMonth("2024-06")
	require.NoError(t, err)
	assert.Equal(t, "2024-06", m.String())
	assert.True(t, MustMonth("2024-05").Before(m))
	assert.False(t, m.Before(m))

	var zero Month
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())

	var decoded Month
	require.NoError(t, decoded.UnmarshalText([]byte("2025-12")))
	text, err := decoded.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-12", string(text))

	assert.Error(t, decoded.UnmarshalText([]byte("December")))
}
