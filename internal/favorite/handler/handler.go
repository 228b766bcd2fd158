package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fxwidget/internal/domain"
	httpserver "fxwidget/internal/platform/http"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type FavoriteService interface {
	Add(ctx context.Context, base, target string) (domain.Favorite, error)
	Render(ctx context.Context) ([]domain.Favorite, error)
}

type Validator interface {
	ValidateCodes(base, target string) error
}

type Handler struct {
	service   FavoriteService
	validator Validator
}

func NewFavoriteHandler(service FavoriteService, validator Validator) *Handler {
	return &Handler{service: service, validator: validator}
}

type ListFavoritesResponse struct {
	Favorites []domain.Favorite `json:"favorites"`
}

// ListFavorites godoc
// @Summary List favorite pairs
// @Description Saved currency pairs in the order they were added
// @Tags Favorites
// @Produce json
// @Success 200 {object} ListFavoritesResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /favorites [get]
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.service.Render(r.Context())
	if err != nil {
		msg := "ups, couldn't load favorites this time"
		logrus.WithError(err).WithField("handler", "ListFavorites").Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, ListFavoritesResponse{Favorites: favorites})
}

type AddFavoriteRequest struct {
	Base   string `json:"base" example:"USD"`
	Target string `json:"target" example:"EUR"`
}

// AddFavorite godoc
// @Summary Save a favorite pair
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body AddFavoriteRequest true "Pair"
// @Success 201 {object} domain.Favorite
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 409 {object} httpserver.ErrorResponse "pair is already in favorites"
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /favorites [post]
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req AddFavoriteRequest
	if err := dec.Decode(&req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	base := strings.ToUpper(strings.TrimSpace(req.Base))
	target := strings.ToUpper(strings.TrimSpace(req.Target))

	if err := h.validator.ValidateCodes(base, target); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	fav, err := h.service.Add(r.Context(), base, target)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateFavorite) {
			httpserver.WriteError(w, http.StatusConflict, domain.DuplicateFavoriteNotice)
			return
		}
		msg := "ups, couldn't save favorite this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "AddFavorite", "base": base, "target": target}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusCreated, fav)
}
