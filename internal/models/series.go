package models

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used by the rate service.
const DateLayout = "2006-01-02"

// NormalizedDisclaimer accompanies every normalized chart.
const NormalizedDisclaimer = "Charts are normalized, the values may not be representative"

// DatedRate is one point of a historical range. A nil Rate marks a date
// the service returned without a value for the requested currency.
type DatedRate struct {
	Date time.Time
	Rate *float64
}

// Color is an RGB display color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String renders the color the way chart libraries accept it.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HistoricalSeries is the chart-ready series of one comparison currency.
// swagger:model HistoricalSeries
type HistoricalSeries struct {
	// example: USD
	Currency CurrencyCode `json:"currency"`
	// example: Historical PLN Exchange Rate for USD
	Label string `json:"label"`
	// example: ["2024-01-02","2024-01-03"]
	Dates []string `json:"dates"`
	// null marks a date without a value
	Values []*float64 `json:"values"`
	// example: rgb(12, 200, 77)
	Color string `json:"color"`
}

// Chart is the output of one series build.
// swagger:model Chart
type Chart struct {
	// example: PLN
	Base CurrencyCode `json:"base"`
	// Ascending union of every series' dates
	Labels     []string           `json:"labels"`
	Series     []HistoricalSeries `json:"series"`
	Normalized bool               `json:"normalized"`
	Disclaimer string             `json:"disclaimer,omitempty"`
}
