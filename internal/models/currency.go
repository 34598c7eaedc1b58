package models

import "strings"

// CurrencyCode is a 3-letter currency identifier such as "USD".
type CurrencyCode string

// Default currencies of the converter and the favorites list.
const (
	PLN CurrencyCode = "PLN"
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
)

// ParseCurrencyCode upper-cases and validates a raw code.
func ParseCurrencyCode(raw string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	if !code.IsWellFormed() {
		return "", InvalidInputf("malformed currency code %q", raw)
	}
	return code, nil
}

// IsWellFormed reports whether the code has the shape of a currency code.
// Membership in the upstream currency list is checked elsewhere.
func (c CurrencyCode) IsWellFormed() bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (c CurrencyCode) String() string {
	return string(c)
}

// ParseCurrencyList splits a comma separated list of codes, keeping order.
func ParseCurrencyList(raw string) ([]CurrencyCode, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]CurrencyCode, 0, len(parts))
	for _, p := range parts {
		code, err := ParseCurrencyCode(p)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// CurrencyOption is one entry of a currency picker.
// swagger:model CurrencyOption
type CurrencyOption struct {
	// example: USD
	Value CurrencyCode `json:"value"`
	// example: USD
	Label string `json:"label"`
	// example: true
	IsFavorite bool `json:"is_favorite"`
}

// CurrenciesResponse lists the currencies known to the rate service.
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Currency code to display name
	Currencies map[CurrencyCode]string `json:"currencies"`
}

// CurrencyOptionsResponse is the favorites-first option list.
// swagger:model CurrencyOptionsResponse
type CurrencyOptionsResponse struct {
	Options []CurrencyOption `json:"options"`
}

// FavoritesResponse lists the favorite currencies.
// swagger:model FavoritesResponse
type FavoritesResponse struct {
	// example: ["PLN","USD"]
	Favorites []CurrencyCode `json:"favorites"`
}

// CurrencyDescriptionResponse carries the encyclopedia extract for a currency.
// swagger:model CurrencyDescriptionResponse
type CurrencyDescriptionResponse struct {
	// example: PLN
	Currency CurrencyCode `json:"currency"`
	// example: Polish_złoty
	Title string `json:"title"`
	// HTML extract
	Extract string `json:"extract"`
}

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Failed to retrieve exchange rates
	Error string `json:"error"`
}
