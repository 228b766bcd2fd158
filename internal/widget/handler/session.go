package handler

import (
	"encoding/json"
	httpserver "fxwidget/internal/platform/http"
	"net/http"
	"strings"
)

// CreateSession godoc
// @Summary Open a converter widget
// @Description Both selections default to the anchor currency
// @Tags Sessions
// @Produce json
// @Success 201 {object} widget.View
// @Failure 503 {object} httpserver.ErrorResponse
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.newSession()
	if !h.sessions.Put(s) {
		httpserver.WriteError(w, http.StatusServiceUnavailable, "too many sessions, try again later")
		return
	}
	h.writeView(w, r, http.StatusCreated, s)
}

// GetSession godoc
// @Summary Get widget state
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} widget.View
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	h.writeView(w, r, http.StatusOK, s)
}

// UpdateSessionRequest carries change events; absent fields are left alone.
type UpdateSessionRequest struct {
	Base   *string `json:"base,omitempty" example:"EUR"`
	Target *string `json:"target,omitempty" example:"JPY"`
	Amount *string `json:"amount,omitempty" example:"100"`
}

// UpdateSession godoc
// @Summary Change selections or amount
// @Description Applies base, target and amount in that order; each change re-runs the conversion
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body UpdateSessionRequest true "Changes"
// @Success 200 {object} widget.View
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /sessions/{id} [patch]
func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req UpdateSessionRequest
	if err := dec.Decode(&req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Base != nil {
		if err := s.SetBase(strings.ToUpper(strings.TrimSpace(*req.Base))); err != nil {
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Target != nil {
		if err := s.SetTarget(strings.ToUpper(strings.TrimSpace(*req.Target))); err != nil {
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Amount != nil {
		s.SetAmount(*req.Amount)
	}
	h.writeView(w, r, http.StatusOK, s)
}

// RequestHistorical godoc
// @Summary Fetch the historical rate of the selected pair
// @Description Starts the fetch and answers 202; with wait=true answers once the request has settled.
// @Description A newer request supersedes an older one.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Wait for the result"
// @Success 200 {object} widget.View
// @Success 202 {object} widget.View
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /sessions/{id}/historical [post]
func (h *Handler) RequestHistorical(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	done := s.RequestHistorical(r.Context())
	if r.URL.Query().Get("wait") != "true" {
		h.writeView(w, r, http.StatusAccepted, s)
		return
	}

	select {
	case <-done:
		h.writeView(w, r, http.StatusOK, s)
	case <-r.Context().Done():
	}
}
