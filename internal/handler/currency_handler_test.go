package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/handler"
	"github.com/Lutefd/estate-site/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetRates(t *testing.T) {
	rates := new(MockRatesService)
	h := handler.NewCurrencyHandler(rates, new(MockPropertyService))

	rates.On("EnsureLoaded", mock.Anything).Return(errors.New("unavailable")).Once()
	rates.On("Snapshot").Return(model.RatesSnapshot{
		Base:     model.USD,
		Rates:    model.NewFallbackRateTable(),
		Advisory: commons.RatesAdvisory,
	}).Once()

	req := httptest.NewRequest("GET", "/api/currency/rates", nil)
	rr := httptest.NewRecorder()
	h.GetRates(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"base":"USD","rates":{"USD":1,"GHS":0,"GBP":0,"EUR":0},"updated_at":"0001-01-01T00:00:00Z","advisory":"Unable to fetch latest rates. Showing USD values."}`, rr.Body.String())
	rates.AssertExpectations(t)
}

func TestConvertCurrency(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedBody   string
		mockBehavior   func(rates *MockRatesService)
	}{
		{
			name:           "Valid conversion",
			query:          "amount=100&to=ghs",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"amount":100,"to":"GHS","result":1550,"formatted":"GH₵1,550.00","locale":"en-GH"}`,
			mockBehavior: func(rates *MockRatesService) {
				rates.On("EnsureLoaded", mock.Anything).Return(nil).Once()
				rates.On("Convert", 100.0, model.GHS).Return(1550.0).Once()
				rates.On("Format", 100.0, model.GHS).Return("GH₵1,550.00").Once()
				rates.On("Snapshot").Return(model.RatesSnapshot{Base: model.USD}).Once()
			},
		},
		{
			name:           "Degraded conversion carries advisory",
			query:          "amount=100&to=GHS",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"amount":100,"to":"GHS","result":100,"formatted":"GH₵100.00","locale":"en-GH","advisory":"Unable to fetch latest rates. Showing USD values."}`,
			mockBehavior: func(rates *MockRatesService) {
				rates.On("EnsureLoaded", mock.Anything).Return(model.ErrRatesUnavailable).Once()
				rates.On("Convert", 100.0, model.GHS).Return(100.0).Once()
				rates.On("Format", 100.0, model.GHS).Return("GH₵100.00").Once()
				rates.On("Snapshot").Return(model.RatesSnapshot{Base: model.USD, Advisory: commons.RatesAdvisory}).Once()
			},
		},
		{
			name:           "Missing parameters",
			query:          "to=EUR",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required parameters"}`,
			mockBehavior:   func(rates *MockRatesService) {},
		},
		{
			name:           "Unsupported currency",
			query:          "amount=100&to=jpy",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"unsupported currency: JPY"}`,
			mockBehavior:   func(rates *MockRatesService) {},
		},
		{
			name:           "Invalid amount",
			query:          "amount=lots&to=EUR",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid amount"}`,
			mockBehavior:   func(rates *MockRatesService) {},
		},
		{
			name:           "Negative amount",
			query:          "amount=-1&to=EUR",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"amount must be non-negative"}`,
			mockBehavior:   func(rates *MockRatesService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := new(MockRatesService)
			tt.mockBehavior(rates)
			h := handler.NewCurrencyHandler(rates, new(MockPropertyService))

			req := httptest.NewRequest("GET", "/api/currency/convert?"+tt.query, nil)
			rr := httptest.NewRecorder()
			h.ConvertCurrency(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			rates.AssertExpectations(t)
		})
	}
}

func TestRefreshRates(t *testing.T) {
	t.Run("Successful refresh", func(t *testing.T) {
		rates := new(MockRatesService)
		props := new(MockPropertyService)
		h := handler.NewCurrencyHandler(rates, props)

		rates.On("Refresh", mock.Anything).Return(nil).Once()
		props.On("Invalidate", mock.Anything).Return(nil).Once()
		rates.On("Snapshot").Return(model.RatesSnapshot{Base: model.USD, Rates: model.RateTable{model.USD: 1, model.GHS: 15.5}}).Once()

		rr := httptest.NewRecorder()
		h.RefreshRates(rr, httptest.NewRequest("POST", "/api/admin/rates/refresh", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"GHS":15.5`)
		rates.AssertExpectations(t)
		props.AssertExpectations(t)
	})

	t.Run("Failed refresh still invalidates", func(t *testing.T) {
		rates := new(MockRatesService)
		props := new(MockPropertyService)
		h := handler.NewCurrencyHandler(rates, props)

		rates.On("Refresh", mock.Anything).Return(model.ErrRatesUnavailable).Once()
		props.On("Invalidate", mock.Anything).Return(errors.New("redis down")).Once()

		rr := httptest.NewRecorder()
		h.RefreshRates(rr, httptest.NewRequest("POST", "/api/admin/rates/refresh", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.JSONEq(t, `{"error":"failed to refresh exchange rates"}`, rr.Body.String())
		props.AssertExpectations(t)
	})
}
