package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCountry is returned when a country code or name is not in the
// registry.
var ErrUnknownCountry = errors.New("unknown country")

// CountryCode is an ISO 3166-1 alpha-2 country code. All by-country series are
// keyed by it rather than by display name.
type CountryCode string

const (
	Germany       CountryCode = "DE"
	France        CountryCode = "FR"
	Italy         CountryCode = "IT"
	Spain         CountryCode = "ES"
	Netherlands   CountryCode = "NL"
	Belgium       CountryCode = "BE"
	Austria       CountryCode = "AT"
	Ireland       CountryCode = "IE"
	Portugal      CountryCode = "PT"
	Finland       CountryCode = "FI"
	Greece        CountryCode = "GR"
	Poland        CountryCode = "PL"
	Sweden        CountryCode = "SE"
	Denmark       CountryCode = "DK"
	CzechRepublic CountryCode = "CZ"
)

// CountryMeta describes a country offered in selection controls.
type CountryMeta struct {
	Code CountryCode `json:"code" yaml:"code"`
	Name string      `json:"name" yaml:"name"`
}

// Name returns the display name for the code, or the code itself when it is
// not registered.
func (c CountryCode) Name() string {
	for _, meta := range countries {
		if meta.Code == c {
			return meta.Name
		}
	}
	return string(c)
}

// Known reports whether the code is in the registry.
func (c CountryCode) Known() bool {
	for _, meta := range countries {
		if meta.Code == c {
			return true
		}
	}
	return false
}

// ParseCountry resolves a country code or registered name, case-insensitively.
func ParseCountry(value string) (CountryCode, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty value", ErrUnknownCountry)
	}
	for _, meta := range countries {
		if strings.EqualFold(string(meta.Code), trimmed) || strings.EqualFold(meta.Name, trimmed) {
			return meta.Code, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCountry, value)
}
