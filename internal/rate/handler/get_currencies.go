package handler

import (
	"fxwidget/internal/domain"
	httpserver "fxwidget/internal/platform/http"
	"net/http"
)

type GetCurrenciesResponse struct {
	Codes []string `json:"codes" example:"EUR,JPY,USD"`
}

// GetCurrencies godoc
// @Summary List selectable currencies
// @Description Currency codes of the current rate snapshot, sorted ascending
// @Tags Rates
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Failure 503 {object} httpserver.ErrorResponse "rates unavailable"
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	if !h.store.Status().Available {
		httpserver.WriteError(w, http.StatusServiceUnavailable, domain.RatesUnavailableNotice)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, GetCurrenciesResponse{Codes: h.store.Codes()})
}
