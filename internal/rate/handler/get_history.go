package handler

import (
	httpserver "fxwidget/internal/platform/http"
	"fxwidget/internal/rate"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

type GetHistoryResponse struct {
	Base    string  `json:"base" example:"EUR"`
	Target  string  `json:"target" example:"JPY"`
	Date    string  `json:"date" example:"2024-04-30"`
	Rate    float64 `json:"rate" example:"168.456"`
	Message string  `json:"message" example:"Historical exchange rate on 2024-04-30: 1 EUR = 168.46 JPY"`
}

// GetHistory godoc
// @Summary Get historical rate
// @Description Rate of target in a snapshot anchored at base, with its snapshot date
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency"
// @Param target path string true "Target currency"
// @Success 200 {object} GetHistoryResponse
// @Failure 502 {object} httpserver.ErrorResponse "quotation service failed"
// @Router /history/{base}/{target} [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	base := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "base")))
	target := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "target")))

	// the fetcher logs the cause
	hr, err := h.historical.Fetch(r.Context(), base, target)
	if err != nil {
		httpserver.WriteError(w, http.StatusBadGateway, rate.HistoricalErrorMessage)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, GetHistoryResponse{
		Base:    hr.Base,
		Target:  hr.Target,
		Date:    hr.Date.Format(time.DateOnly),
		Rate:    hr.Rate,
		Message: hr.Message(),
	})
}
