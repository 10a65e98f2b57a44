package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/currency"
	"github.com/Lutefd/estate-site/internal/logger"
	"github.com/Lutefd/estate-site/internal/model"
	"github.com/Lutefd/estate-site/internal/service"
)

type CurrencyHandler struct {
	rates      service.RatesServiceInterface
	properties service.PropertyServiceInterface
}

func NewCurrencyHandler(rates service.RatesServiceInterface, properties service.PropertyServiceInterface) *CurrencyHandler {
	return &CurrencyHandler{
		rates:      rates,
		properties: properties,
	}
}

type convertResponse struct {
	Amount    float64            `json:"amount"`
	To        model.CurrencyCode `json:"to"`
	Result    float64            `json:"result"`
	Formatted string             `json:"formatted"`
	Locale    string             `json:"locale"`
	Advisory  string             `json:"advisory,omitempty"`
}

func (h *CurrencyHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	_ = h.rates.EnsureLoaded(r.Context())
	commons.RespondWithJSON(w, http.StatusOK, h.rates.Snapshot())
}

func (h *CurrencyHandler) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	amountStr := strings.TrimSpace(r.URL.Query().Get("amount"))
	to := r.URL.Query().Get("to")

	if amountStr == "" || to == "" {
		commons.RespondWithError(w, http.StatusBadRequest, "missing required parameters")
		return
	}
	code, ok := model.ParseCurrencyCode(to)
	if !ok {
		commons.RespondWithError(w, http.StatusBadRequest, "unsupported currency: "+string(code))
		return
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		commons.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	if amount < 0 {
		commons.RespondWithError(w, http.StatusBadRequest, "amount must be non-negative")
		return
	}

	_ = h.rates.EnsureLoaded(r.Context())
	commons.RespondWithJSON(w, http.StatusOK, convertResponse{
		Amount:    amount,
		To:        code,
		Result:    h.rates.Convert(amount, code),
		Formatted: h.rates.Format(amount, code),
		Locale:    currency.Locale(code),
		Advisory:  h.rates.Snapshot().Advisory,
	})
}

func (h *CurrencyHandler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	refreshErr := h.rates.Refresh(r.Context())

	if err := h.properties.Invalidate(r.Context()); err != nil {
		logger.Errorf("failed to invalidate cached properties: %v", err)
	}

	if refreshErr != nil {
		commons.RespondWithError(w, http.StatusBadGateway, "failed to refresh exchange rates")
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, h.rates.Snapshot())
}
