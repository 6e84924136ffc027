package handler

import (
	"errors"
	"net/http"

	"github.com/campuspulse/survey-gateway/internal/auth"
	"github.com/campuspulse/survey-gateway/internal/service"
)

type SurveyHandler struct {
	sessions *service.SessionService
	surveys  *service.SurveyService
}

func NewSurveyHandler(sessions *service.SessionService, surveys *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{sessions: sessions, surveys: surveys}
}

func (h *SurveyHandler) Responses(w http.ResponseWriter, r *http.Request) {
	id, err := h.sessions.Resolve(auth.GetEmail(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrNoLecturerRecord) {
			writeError(w, http.StatusForbidden, "No lecturer record found for your account.")
			return
		}
		internalError(w, err)
		return
	}

	q := r.URL.Query()
	responses, err := h.surveys.Responses(id, q.Get("survey"), q.Get("teacherId"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidSurveyKey) {
			writeError(w, http.StatusBadRequest, "Invalid survey key.")
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"responses": responses})
}
