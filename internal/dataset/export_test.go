package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportEveryDataset(t *testing.T) {
	for _, name := range DatasetNames() {
		t.Run(name, func(t *testing.T) {
			table, err := Export(name)
			require.NoError(t, err)
			assert.Equal(t, name, table.Name)
			assert.NotEmpty(t, table.Rows)
			assert.NotNil(t, table.Records)
			for _, row := range table.Rows {
				assert.Len(t, row, len(table.Header))
			}
		})
	}
}

func TestExportUnknown(t *testing.T) {
	_, err := Export("exchange-rates")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}

func TestExportInterestRatesCells(t *testing.T) {
	table, err := Export(NameInterestRates)
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "mainRate", "depositRate", "lendingRate"}, table.Header)
	assert.Equal(t, []string{"2020-01", "0.00", "-0.50", "0.25"}, table.Rows[0])
	assert.Equal(t, []string{"2026-02", "2.65", "2.50", "2.90"}, table.Rows[len(table.Rows)-1])
}

func TestExportAnnualCells(t *testing.T) {
	table, err := Export(NameGDPByCountry)
	require.NoError(t, err)

	assert.Equal(t, []string{"code", "country", "2020", "2021", "2022", "2023", "2024", "2025"}, table.Header)
	assert.Equal(t, []string{"DE", "Germany", "-3.7", "3.2", "1.8", "-0.3", "0.2", "1.3"}, table.Rows[0])

	records, ok := table.Records.([]annualRow)
	require.True(t, ok)
	assert.InDelta(t, 1.3, records[0].Values["2025"], 1e-9)
}
