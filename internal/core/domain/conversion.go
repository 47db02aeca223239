package domain

import "time"

// DefaultCurrencies is the fallback currency set used when the rate service
// cannot be reached for the live list.
var DefaultCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY"}

// Conversion is the result of a single convert call. It is ephemeral:
// recomputed per conversion, never persisted.
type Conversion struct {
	FromCurrency    string  `json:"fromCurrency"`
	ToCurrency      string  `json:"toCurrency"`
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"convertedAmount"`
	ExchangeRate    float64 `json:"exchangeRate"`

	// Timestamp is captured client-side when the response arrives.
	Timestamp time.Time `json:"-"`
}
