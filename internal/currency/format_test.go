package currency_test

import (
	"testing"

	"github.com/Lutefd/estate-site/internal/currency"
	"github.com/Lutefd/estate-site/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     model.CurrencyCode
		expected string
	}{
		{"USD", 1550, model.USD, "$1,550.00"},
		{"GHS", 1550, model.GHS, "GH₵1,550.00"},
		{"GBP", 79.5, model.GBP, "£79.50"},
		{"EUR uses german separators", 1234567.891, model.EUR, "1.234.567,89\u00a0€"},
		{"small amount", 0.5, model.USD, "$0.50"},
		{"rounds half away from zero", 10.125, model.USD, "$10.13"},
		{"negative", -5, model.USD, "-$5.00"},
		{"negative EUR", -1500, model.EUR, "-1.500,00\u00a0€"},
		{"unknown code", 1200, model.CurrencyCode("jpy"), "JPY 1,200.00"},
		{"zero", 0, model.GHS, "GH₵0.00"},
		{"beyond integer cents", 1e17, model.USD, "$100,000,000,000,000,000.00"},
		{"huge", 1e20, model.USD, "$100,000,000,000,000,000,000.00"},
		{"huge EUR", 2.5e18, model.EUR, "2.500.000.000.000.000.000,00\u00a0€"},
		{"huge negative", -1e17, model.GBP, "-£100,000,000,000,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, currency.FormatAmount(tt.amount, tt.code))
		})
	}
}

func TestLocale(t *testing.T) {
	assert.Equal(t, "en-US", currency.Locale(model.USD))
	assert.Equal(t, "en-GH", currency.Locale(model.GHS))
	assert.Equal(t, "en-GB", currency.Locale(model.GBP))
	assert.Equal(t, "de-DE", currency.Locale(model.EUR))
	assert.Equal(t, "en-US", currency.Locale(model.CurrencyCode("XYZ")))
}

func TestParseUSD(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"$250,000", 250000, true},
		{"USD 1,200.50", 1200.5, true},
		{" 99 ", 99, true},
		{"Price on request", 0, false},
		{"", 0, false},
		{"1.2.3", 0, false},
		{"US$5,000", 5000, true},
		{"1,200 usd", 1200, true},
		{"1.5M", 0, false},
		{"$90k", 0, false},
		{"From $120,000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, ok := currency.ParseUSD(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, amount)
		})
	}
}
