package handler

import (
	"errors"
	"fxwidget/internal/domain"
	httpserver "fxwidget/internal/platform/http"
	"fxwidget/internal/rate"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// SaveFavorite godoc
// @Summary Save the selected pair as a favorite
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} domain.Favorite
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 409 {object} httpserver.ErrorResponse "pair is already in favorites"
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /sessions/{id}/favorites [post]
func (h *Handler) SaveFavorite(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	fav, err := s.SaveFavorite(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateFavorite):
			httpserver.WriteError(w, http.StatusConflict, domain.DuplicateFavoriteNotice)
		case errors.Is(err, rate.ErrBaseRequired), errors.Is(err, rate.ErrTargetRequired),
			errors.Is(err, rate.ErrBaseUnsupported), errors.Is(err, rate.ErrTargetUnsupported):
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			msg := "ups, couldn't save favorite this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "SaveFavorite", "session": s.ID()}).Error(msg)
			httpserver.WriteError(w, http.StatusInternalServerError, msg)
		}
		return
	}
	httpserver.WriteJSON(w, http.StatusCreated, fav)
}

// ActivateFavorite godoc
// @Summary Select a favorite pair
// @Description Sets both selections to the pair and converts the current amount
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param pair path string true "Pair key" example(USD_EUR)
// @Success 200 {object} widget.View
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /sessions/{id}/favorites/{pair}/activate [post]
func (h *Handler) ActivateFavorite(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	rawKey := chi.URLParam(r, "pair")
	if _, err := domain.ParsePairKey(rawKey); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.ActivateFavorite(r.Context(), domain.PairKey(rawKey)); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		msg := "ups, couldn't activate favorite this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ActivateFavorite", "pair": rawKey}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	h.writeView(w, r, http.StatusOK, s)
}
