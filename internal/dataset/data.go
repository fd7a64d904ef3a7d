package dataset

import "github.com/shopspring/decimal"

// years is the closed set of year columns carried by every annual series.
var years = []Year{2020, 2021, 2022, 2023, 2024, 2025}

// LatestYear is the most recent year column of the annual series.
const LatestYear Year = 2025

func pct(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func annual(v2020, v2021, v2022, v2023, v2024, v2025 float64) map[Year]decimal.Decimal {
	return map[Year]decimal.Decimal{
		2020: pct(v2020),
		2021: pct(v2021),
		2022: pct(v2022),
		2023: pct(v2023),
		2024: pct(v2024),
		2025: pct(v2025),
	}
}

var countries = []CountryMeta{
	{Code: Germany, Name: "Germany"},
	{Code: France, Name: "France"},
	{Code: Italy, Name: "Italy"},
	{Code: Spain, Name: "Spain"},
	{Code: Netherlands, Name: "Netherlands"},
	{Code: Belgium, Name: "Belgium"},
	{Code: Austria, Name: "Austria"},
	{Code: Ireland, Name: "Ireland"},
	{Code: Portugal, Name: "Portugal"},
	{Code: Finland, Name: "Finland"},
	{Code: Greece, Name: "Greece"},
	{Code: Poland, Name: "Poland"},
	{Code: Sweden, Name: "Sweden"},
	{Code: Denmark, Name: "Denmark"},
	{Code: CzechRepublic, Name: "Czech Republic"},
}

// ECB key interest rates, ascending by date.
var interestRates = []InterestRateRecord{
	{Date: MustMonth("2020-01"), MainRate: pct(0.00), DepositRate: pct(-0.50), LendingRate: pct(0.25)},
	{Date: MustMonth("2020-06"), MainRate: pct(0.00), DepositRate: pct(-0.50), LendingRate: pct(0.25)},
	{Date: MustMonth("2021-01"), MainRate: pct(0.00), DepositRate: pct(-0.50), LendingRate: pct(0.25)},
	{Date: MustMonth("2021-06"), MainRate: pct(0.00), DepositRate: pct(-0.50), LendingRate: pct(0.25)},
	{Date: MustMonth("2022-01"), MainRate: pct(0.00), DepositRate: pct(-0.50), LendingRate: pct(0.25)},
	{Date: MustMonth("2022-06"), MainRate: pct(0.50), DepositRate: pct(0.00), LendingRate: pct(0.75)},
	{Date: MustMonth("2022-09"), MainRate: pct(1.25), DepositRate: pct(0.75), LendingRate: pct(1.50)},
	{Date: MustMonth("2022-12"), MainRate: pct(2.50), DepositRate: pct(2.00), LendingRate: pct(2.75)},
	{Date: MustMonth("2023-03"), MainRate: pct(3.50), DepositRate: pct(3.00), LendingRate: pct(3.75)},
	{Date: MustMonth("2023-06"), MainRate: pct(4.00), DepositRate: pct(3.50), LendingRate: pct(4.25)},
	{Date: MustMonth("2023-09"), MainRate: pct(4.50), DepositRate: pct(4.00), LendingRate: pct(4.75)},
	{Date: MustMonth("2023-12"), MainRate: pct(4.50), DepositRate: pct(4.00), LendingRate: pct(4.75)},
	{Date: MustMonth("2024-01"), MainRate: pct(4.50), DepositRate: pct(4.00), LendingRate: pct(4.75)},
	{Date: MustMonth("2024-06"), MainRate: pct(4.25), DepositRate: pct(3.75), LendingRate: pct(4.50)},
	{Date: MustMonth("2024-12"), MainRate: pct(3.15), DepositRate: pct(3.00), LendingRate: pct(3.40)},
	{Date: MustMonth("2025-06"), MainRate: pct(2.90), DepositRate: pct(2.75), LendingRate: pct(3.15)},
	{Date: MustMonth("2026-02"), MainRate: pct(2.65), DepositRate: pct(2.50), LendingRate: pct(2.90)},
}

// Eurozone annual inflation rate, ascending by date.
var inflationSeries = []InflationPoint{
	{Date: MustMonth("2020-01"), Rate: pct(1.4)},
	{Date: MustMonth("2020-06"), Rate: pct(0.3)},
	{Date: MustMonth("2021-01"), Rate: pct(0.9)},
	{Date: MustMonth("2021-06"), Rate: pct(1.9)},
	{Date: MustMonth("2021-12"), Rate: pct(5.0)},
	{Date: MustMonth("2022-01"), Rate: pct(5.1)},
	{Date: MustMonth("2022-06"), Rate: pct(8.6)},
	{Date: MustMonth("2022-09"), Rate: pct(9.9)},
	{Date: MustMonth("2022-12"), Rate: pct(9.2)},
	{Date: MustMonth("2023-03"), Rate: pct(6.9)},
	{Date: MustMonth("2023-06"), Rate: pct(5.5)},
	{Date: MustMonth("2023-09"), Rate: pct(4.3)},
	{Date: MustMonth("2023-12"), Rate: pct(2.9)},
	{Date: MustMonth("2024-03"), Rate: pct(2.4)},
	{Date: MustMonth("2024-06"), Rate: pct(2.5)},
	{Date: MustMonth("2024-09"), Rate: pct(1.7)},
	{Date: MustMonth("2024-12"), Rate: pct(2.4)},
	{Date: MustMonth("2025-06"), Rate: pct(2.2)},
	{Date: MustMonth("2026-02"), Rate: pct(2.1)},
}

// Annual inflation rate by country.
var inflationByCountry = []CountryAnnualSeries{
	{Country: Germany, Values: annual(0.5, 3.2, 8.7, 5.9, 2.2, 2.1)},
	{Country: France, Values: annual(0.5, 2.1, 5.9, 4.9, 1.8, 1.6)},
	{Country: Italy, Values: annual(-0.1, 1.9, 8.7, 5.9, 1.7, 1.5)},
	{Country: Spain, Values: annual(-0.3, 3.0, 8.4, 3.4, 2.4, 2.2)},
	{Country: Netherlands, Values: annual(1.1, 2.8, 11.6, 3.8, 2.7, 2.3)},
	{Country: Belgium, Values: annual(0.4, 3.2, 10.3, 2.3, 3.3, 2.8)},
	{Country: Austria, Values: annual(1.4, 2.8, 8.6, 7.7, 3.4, 2.9)},
	{Country: Ireland, Values: annual(-0.3, 2.4, 7.8, 5.2, 2.0, 1.8)},
	{Country: Portugal, Values: annual(-0.1, 1.3, 8.1, 5.3, 2.3, 2.0)},
	{Country: Finland, Values: annual(0.4, 2.2, 7.2, 4.3, 1.2, 1.1)},
	{Country: Greece, Values: annual(-1.3, 0.6, 9.3, 4.2, 2.4, 2.1)},
	{Country: Poland, Values: annual(3.7, 5.2, 13.8, 10.9, 4.6, 3.9)},
}

// Annual real GDP growth by country.
var gdpByCountry = []CountryAnnualSeries{
	{Country: Germany, Values: annual(-3.7, 3.2, 1.8, -0.3, 0.2, 1.3)},
	{Country: France, Values: annual(-7.8, 6.8, 2.5, 0.9, 1.1, 1.2)},
	{Country: Italy, Values: annual(-9.0, 8.3, 3.7, 0.9, 0.7, 1.0)},
	{Country: Spain, Values: annual(-11.3, 6.4, 5.8, 2.5, 2.4, 2.2)},
	{Country: Netherlands, Values: annual(-3.9, 6.2, 4.3, 0.1, 0.9, 1.4)},
	{Country: Belgium, Values: annual(-5.3, 6.9, 3.0, 1.4, 1.3, 1.5)},
	{Country: Austria, Values: annual(-6.5, 4.6, 4.9, -0.8, 0.5, 1.6)},
	{Country: Ireland, Values: annual(6.2, 15.0, 9.4, 3.2, 2.0, 3.5)},
	{Country: Portugal, Values: annual(-8.3, 5.7, 6.8, 2.3, 1.6, 2.0)},
	{Country: Finland, Values: annual(-2.3, 3.0, 1.3, -0.5, 0.2, 1.3)},
	{Country: Greece, Values: annual(-9.0, 8.4, 5.6, 2.0, 2.1, 2.3)},
	{Country: Poland, Values: annual(-2.0, 6.9, 5.3, 0.2, 2.9, 3.5)},
}

// Current unemployment rate by country.
var unemploymentByCountry = []CountryRate{
	{Country: Germany, Rate: pct(3.2)},
	{Country: France, Rate: pct(7.3)},
	{Country: Italy, Rate: pct(7.6)},
	{Country: Spain, Rate: pct(11.6)},
	{Country: Netherlands, Rate: pct(3.6)},
	{Country: Belgium, Rate: pct(5.9)},
	{Country: Austria, Rate: pct(5.1)},
	{Country: Ireland, Rate: pct(4.3)},
	{Country: Portugal, Rate: pct(6.6)},
	{Country: Finland, Rate: pct(7.4)},
	{Country: Greece, Rate: pct(10.5)},
	{Country: Poland, Rate: pct(3.1)},
}
