package state

import (
	"encoding/json"

	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/iwvelando/eurolens/pkg/constants"
)

// Selection is an ordered set of at most MaxSelectedCountries countries.
// The zero value is an empty selection.
type Selection struct {
	codes []dataset.CountryCode
}

// DefaultSelection is the selection a comparison page starts with.
func DefaultSelection() Selection {
	return NewSelection(dataset.Germany, dataset.France, dataset.Italy, dataset.Spain)
}

// NewSelection builds a selection by toggling each code in turn, so
// duplicates collapse and anything past the limit is dropped.
func NewSelection(codes ...dataset.CountryCode) Selection {
	var s Selection
	for _, code := range codes {
		if s.Contains(code) {
			continue
		}
		s = s.Toggle(code)
	}
	return s
}

// Codes returns the selected countries in selection order.
func (s Selection) Codes() []dataset.CountryCode {
	return append([]dataset.CountryCode(nil), s.codes...)
}

// Len returns the number of selected countries.
func (s Selection) Len() int {
	return len(s.codes)
}

// Full reports whether no further country can be added.
func (s Selection) Full() bool {
	return len(s.codes) >= constants.MaxSelectedCountries
}

// Contains reports whether code is selected.
func (s Selection) Contains(code dataset.CountryCode) bool {
	for _, c := range s.codes {
		if c == code {
			return true
		}
	}
	return false
}

// CanToggle reports whether toggling code would change the selection; the
// control for code is disabled otherwise.
func (s Selection) CanToggle(code dataset.CountryCode) bool {
	return s.Contains(code) || !s.Full()
}

// Toggle removes code when selected, appends it when there is room, and
// otherwise returns the selection unchanged.
func (s Selection) Toggle(code dataset.CountryCode) Selection {
	if s.Contains(code) {
		next := make([]dataset.CountryCode, 0, len(s.codes)-1)
		for _, c := range s.codes {
			if c != code {
				next = append(next, c)
			}
		}
		return Selection{codes: next}
	}
	if s.Full() {
		return s
	}
	next := make([]dataset.CountryCode, len(s.codes), len(s.codes)+1)
	copy(next, s.codes)
	return Selection{codes: append(next, code)}
}

// Equal reports whether both selections hold the same countries in the same
// order.
func (s Selection) Equal(other Selection) bool {
	if len(s.codes) != len(other.codes) {
		return false
	}
	for i := range s.codes {
		if s.codes[i] != other.codes[i] {
			return false
		}
	}
	return true
}

// MarshalJSON renders the selection as an array of country codes.
func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(append([]dataset.CountryCode{}, s.codes...))
}
