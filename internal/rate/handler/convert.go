package handler

import (
	"errors"
	"fxwidget/internal/domain"
	httpserver "fxwidget/internal/platform/http"
	"fxwidget/internal/rate"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type ConvertResponse struct {
	Result string `json:"result" example:"90.00 EUR"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Convert amount of base into target using the current snapshot
// @Tags Rates
// @Produce json
// @Param amount query string true "Amount" example(100)
// @Param base query string true "Base currency" example(USD)
// @Param target query string true "Target currency" example(EUR)
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse "currency not available"
// @Failure 503 {object} httpserver.ErrorResponse "rates unavailable"
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	base := strings.ToUpper(strings.TrimSpace(q.Get("base")))
	target := strings.ToUpper(strings.TrimSpace(q.Get("target")))

	if base == "" {
		httpserver.WriteError(w, http.StatusBadRequest, rate.ErrBaseRequired.Error())
		return
	}
	if target == "" {
		httpserver.WriteError(w, http.StatusBadRequest, rate.ErrTargetRequired.Error())
		return
	}

	result, err := h.store.Convert(q.Get("amount"), base, target)
	if err != nil {
		switch {
		case errors.Is(err, rate.ErrInvalidAmount):
			httpserver.WriteError(w, http.StatusBadRequest, rate.DisplayMessage(err))
		case errors.Is(err, domain.ErrCurrencyNotAvailable):
			httpserver.WriteError(w, http.StatusNotFound, rate.DisplayMessage(err))
		case errors.Is(err, domain.ErrRatesUnavailable):
			httpserver.WriteError(w, http.StatusServiceUnavailable, rate.DisplayMessage(err))
		default:
			msg := "ups, couldn't convert amount this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Convert", "base": base, "target": target}).Error(msg)
			httpserver.WriteError(w, http.StatusInternalServerError, msg)
		}
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, ConvertResponse{Result: result})
}
