// Package view holds the pure transformations that turn the static datasets
// into the shapes rendered by charts and tables. Nothing here fails: missing
// data degrades to zero values or empty results.
package view

import (
	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/shopspring/decimal"
)

// Keyed is implemented by by-country series entries.
type Keyed interface {
	Key() dataset.CountryCode
}

// Window returns the last n entries of series. n <= 0 means the whole series,
// as does any n at least as long as the series.
func Window[T any](series []T, n int) []T {
	if n <= 0 || n >= len(series) {
		return append([]T(nil), series...)
	}
	return append([]T(nil), series[len(series)-n:]...)
}

// Reverse returns the entries newest first.
func Reverse[T any](series []T) []T {
	out := make([]T, len(series))
	for i, v := range series {
		out[len(series)-1-i] = v
	}
	return out
}

// Latest returns the final entry of series.
func Latest[T any](series []T) (T, bool) {
	return Previous(series, 0)
}

// Previous returns the entry offset places before the final one.
func Previous[T any](series []T, offset int) (T, bool) {
	var zero T
	idx := len(series) - 1 - offset
	if offset < 0 || idx < 0 {
		return zero, false
	}
	return series[idx], true
}

// Delta returns current - previous. When there is no previous observation the
// current value stands in for it and the delta is zero.
func Delta(current, previous decimal.Decimal, hasPrevious bool) decimal.Decimal {
	if !hasPrevious {
		previous = current
	}
	return current.Sub(previous)
}

// Change compares the latest entry of series with the one offset places back,
// using value to read the compared field. An empty series yields zero.
func Change[T any](series []T, offset int, value func(T) decimal.Decimal) decimal.Decimal {
	current, ok := Latest(series)
	if !ok {
		return decimal.Zero
	}
	previous, ok := Previous(series, offset)
	if !ok {
		return Delta(value(current), decimal.Zero, false)
	}
	return Delta(value(current), value(previous), true)
}

// FilterBySelection returns the entries whose country is selected, keeping
// their original relative order.
func FilterBySelection[T Keyed](entries []T, selected []dataset.CountryCode) []T {
	set := make(map[dataset.CountryCode]struct{}, len(selected))
	for _, code := range selected {
		set[code] = struct{}{}
	}
	out := make([]T, 0, len(selected))
	for _, entry := range entries {
		if _, ok := set[entry.Key()]; ok {
			out = append(out, entry)
		}
	}
	return out
}

// Find returns the entry for the country.
func Find[T Keyed](entries []T, code dataset.CountryCode) (T, bool) {
	for _, entry := range entries {
		if entry.Key() == code {
			return entry, true
		}
	}
	var zero T
	return zero, false
}
