package handler

import (
	httpserver "fxwidget/internal/platform/http"
	"fxwidget/internal/widget"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SessionStore interface {
	Get(id uuid.UUID) (*widget.Session, bool)
	Put(s *widget.Session) bool
}

type Handler struct {
	sessions   SessionStore
	newSession func() *widget.Session
}

func NewSessionHandler(sessions SessionStore, newSession func() *widget.Session) *Handler {
	return &Handler{sessions: sessions, newSession: newSession}
}

// session resolves the {id} URL param, writing the error response on failure.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*widget.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid session ID format")
		return nil, false
	}
	s, ok := h.sessions.Get(id)
	if !ok {
		httpserver.WriteError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return s, true
}

func (h *Handler) writeView(w http.ResponseWriter, r *http.Request, statusCode int, s *widget.Session) {
	view, err := s.View(r.Context())
	if err != nil {
		msg := "ups, couldn't render session this time"
		logrus.WithError(err).WithField("session", s.ID()).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, statusCode, view)
}
