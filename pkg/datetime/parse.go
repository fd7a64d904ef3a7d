// Package datetime provides helpers for the year-month dates used by the
// datasets.
package datetime

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/iwvelando/eurolens/pkg/constants"
)

const (
	// DateTimeLayout is the year-month format used throughout eurolens.
	DateTimeLayout = constants.DateTimeLayout
)

// ParseMonth parses a YYYY-MM string into a civil.Date pinned to the first
// day of that month.
func ParseMonth(value string) (civil.Date, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid month %q: %w", value, err)
	}
	return civil.DateOf(t), nil
}

// MustParseMonth is like ParseMonth but panics on error. It is intended for
// compiled-in data and tests where the value is known to be valid.
func MustParseMonth(value string) civil.Date {
	d, err := ParseMonth(value)
	if err != nil {
		panic(err)
	}
	return d
}

// FormatMonth renders a civil.Date as YYYY-MM.
func FormatMonth(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}
