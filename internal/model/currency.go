package model

import (
	"strings"
	"time"
)

type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	GHS CurrencyCode = "GHS"
	GBP CurrencyCode = "GBP"
	EUR CurrencyCode = "EUR"
)

// SupportedCurrencies lists the codes the site can display prices in.
var SupportedCurrencies = []CurrencyCode{USD, GHS, GBP, EUR}

// FallbackRate marks a rate that could not be resolved. Conversion treats it as 1:1.
const FallbackRate = 0.0

func ParseCurrencyCode(s string) (CurrencyCode, bool) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	for _, c := range SupportedCurrencies {
		if c == code {
			return code, true
		}
	}
	return code, false
}

// RateTable maps a currency code to its multiplier relative to USD.
type RateTable map[CurrencyCode]float64

// NewFallbackRateTable returns a table with USD at 1 and every other code unresolved.
func NewFallbackRateTable() RateTable {
	table := make(RateTable, len(SupportedCurrencies))
	for _, c := range SupportedCurrencies {
		table[c] = FallbackRate
	}
	table[USD] = 1
	return table
}

func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// ExchangeRates is the payload returned by the USD-anchored exchange-rate API.
// Rates are kept undecoded so that a single malformed entry does not fail the whole table.
type ExchangeRates struct {
	Result    string                 `json:"result"`
	Base      string                 `json:"base_code"`
	Timestamp int64                  `json:"time_last_update_unix"`
	Rates     map[string]interface{} `json:"rates"`
}

// RatesSnapshot is the read-only view of the rate table handed to consumers.
type RatesSnapshot struct {
	Base      CurrencyCode `json:"base"`
	Rates     RateTable    `json:"rates"`
	UpdatedAt time.Time    `json:"updated_at,omitempty"`
	Advisory  string       `json:"advisory,omitempty"`
}
