package models

// LatestRate is the rate service answer for one currency pair.
type LatestRate struct {
	Rate            float64
	ConvertedAmount float64
}

// ConversionResult is one converted amount of the current result set.
// swagger:model ConversionResult
type ConversionResult struct {
	// example: EUR
	TargetCurrency CurrencyCode `json:"target_currency"`
	// Price of one unit of the base currency in the target currency
	// example: 0.23
	Rate float64 `json:"rate"`
	// example: 23
	ConvertedAmount float64 `json:"converted_amount"`
	// example: 100
	BaseAmount float64 `json:"base_amount"`
	// example: PLN
	BaseCurrency CurrencyCode `json:"base_currency"`
}

// ConversionRequest is the JSON body of a conversion.
// swagger:model ConversionRequest
type ConversionRequest struct {
	// example: 100
	Amount *float64 `json:"amount" validate:"required"`
	// example: PLN
	From string `json:"from" validate:"required,len=3,alpha"`
	// example: ["USD","EUR"]
	Targets []string `json:"targets" validate:"dive,len=3,alpha"`
}

// ConversionResponse holds the whole current result set.
// swagger:model ConversionResponse
type ConversionResponse struct {
	Results map[CurrencyCode]ConversionResult `json:"results"`
}

// SwapRequest is the current currency selection.
// swagger:model SwapRequest
type SwapRequest struct {
	// example: PLN
	From string `json:"from" validate:"required,len=3,alpha"`
	// example: ["USD"]
	Targets []string `json:"targets" validate:"dive,len=3,alpha"`
}

// SwapResponse is the selection after swapping.
// swagger:model SwapResponse
type SwapResponse struct {
	// example: USD
	From CurrencyCode `json:"from"`
	// example: ["PLN"]
	Targets []CurrencyCode `json:"targets"`
}
