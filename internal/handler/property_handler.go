package handler

import (
	"errors"
	"net/http"

	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/logger"
	"github.com/Lutefd/estate-site/internal/model"
	"github.com/Lutefd/estate-site/internal/service"
	"github.com/go-chi/chi/v5"
)

type PropertyHandler struct {
	properties service.PropertyServiceInterface
	rates      service.RatesServiceInterface
}

func NewPropertyHandler(properties service.PropertyServiceInterface, rates service.RatesServiceInterface) *PropertyHandler {
	return &PropertyHandler{
		properties: properties,
		rates:      rates,
	}
}

type listResponse struct {
	Currency   model.CurrencyCode   `json:"currency"`
	Advisory   string               `json:"advisory,omitempty"`
	Properties []model.PropertyView `json:"properties"`
}

func requestedCurrency(r *http.Request) (model.CurrencyCode, bool) {
	raw := r.URL.Query().Get("currency")
	if raw == "" {
		return model.USD, true
	}
	return model.ParseCurrencyCode(raw)
}

func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	code, ok := requestedCurrency(r)
	if !ok {
		commons.RespondWithError(w, http.StatusBadRequest, "unsupported currency: "+string(code))
		return
	}

	views, err := h.properties.List(r.Context(), code)
	if err != nil {
		logger.Errorf("failed to list properties: %v", err)
		views = []model.PropertyView{}
	}

	commons.RespondWithJSON(w, http.StatusOK, listResponse{
		Currency:   code,
		Advisory:   h.rates.Snapshot().Advisory,
		Properties: views,
	})
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	code, ok := requestedCurrency(r)
	if !ok {
		commons.RespondWithError(w, http.StatusBadRequest, "unsupported currency: "+string(code))
		return
	}

	view, err := h.properties.Get(r.Context(), chi.URLParam(r, "id"), code)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPropertyNotFound):
			commons.RespondWithError(w, http.StatusNotFound, "property not found")
		case errors.Is(err, model.ErrUnsupportedCurrency):
			commons.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			commons.RespondWithError(w, http.StatusInternalServerError, "failed to load property")
		}
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, view)
}
