// Package format renders rates for display.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown in place of a value that is not available.
const Placeholder = "—"

var printer = message.NewPrinter(language.English)

// Number renders value with the given number of decimal places (e.g., "-0.50").
func Number(value decimal.Decimal, places int32) string {
	rounded := value.Round(places)
	return printer.Sprintf(fmt.Sprintf("%%.%df", places), rounded.InexactFloat64())
}

// Percent returns a rate with a percent sign (e.g., "2.65%").
func Percent(value decimal.Decimal, places int32) string {
	return Number(value, places) + "%"
}

// PercentagePoints returns a signed percentage-point change (e.g., "+0.3pp",
// "-0.1pp", "0.0pp").
func PercentagePoints(delta decimal.Decimal, places int32) string {
	sign := ""
	if delta.Round(places).Sign() > 0 {
		sign = "+"
	}
	return sign + Number(delta, places) + "pp"
}

// ChangeOrPlaceholder is like PercentagePoints but renders an unchanged value
// as the placeholder.
func ChangeOrPlaceholder(delta decimal.Decimal, places int32) string {
	if delta.Round(places).IsZero() {
		return Placeholder
	}
	return PercentagePoints(delta, places)
}

// Count renders an integer with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}
